package core

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"resiosctl/logger"
	"resiosctl/models"
)

// Console paths the login-status check redirects to.
const (
	PathNewInstall = "/resios-ui/newInstall"
	PathLogin      = "/resios-ui/login"
	PathLoginMFA   = "/resios-ui/loginmfa"
	PathNewMFA     = "/resios-ui/newmfa"
)

// LoginOK is returned when no redirect is needed.
const LoginOK = models.AuthStatusOK

// SessionChecker asks the auth server about the current session.
type SessionChecker interface {
	Me(ctx context.Context) (models.AuthResponse, error)
}

// Location is the browser location the check runs from. Search keeps its
// leading "?", as window.location.search does.
type Location struct {
	Path   string
	Search string
}

// redirectValue is the path followed by the percent-encoded search string.
func (l Location) redirectValue() string {
	return l.Path + encodeURIComponent(l.Search)
}

func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// LoginRedirect maps a session response to the path the console should go to,
// or LoginOK. Statuses without a handler are let through with a warning.
func LoginRedirect(resp models.AuthResponse, loc Location) string {
	switch {
	case resp.Status == models.AuthStatusNewInstall:
		return PathNewInstall
	case resp.Status == models.AuthStatusError && resp.Code == models.AuthCodeNotLoggedIn:
		return PathLogin + "?redirect=" + loc.redirectValue()
	case resp.Status == models.AuthStatusError && resp.Code == models.AuthCodeMFARequired:
		return PathLoginMFA + "?redirect=" + loc.redirectValue()
	case resp.Status == models.AuthStatusError && resp.Code == models.AuthCodeMFASetup:
		return PathNewMFA + "?redirect=" + loc.redirectValue()
	case resp.Status == models.AuthStatusOK:
		return LoginOK
	default:
		logger.Warn("Status %q (code %q) does not have a navigation handler, will be interpreted as OK!", resp.Status, resp.Code)
		return LoginOK
	}
}

// ResolveLoginStatus queries the session endpoint and resolves the redirect.
func ResolveLoginStatus(ctx context.Context, checker SessionChecker, loc Location) (string, error) {
	resp, err := checker.Me(ctx)
	if err != nil {
		return "", fmt.Errorf("checking session: %w", err)
	}
	return LoginRedirect(resp, loc), nil
}
