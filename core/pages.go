package core

import (
	"strings"

	"resiosctl/models"
)

// LogoAsset is where /resios-ui/logo redirects to.
const LogoAsset = "/assets/images/icons/cosmos.png"

// LoginPageRoutes are the pages reachable without a session.
func LoginPageRoutes() []models.PageRoute {
	return []models.PageRoute{
		{Path: "/resios-ui/login", Page: "AuthLogin"},
		{Path: "/resios-ui/register", Page: "AuthRegister"},
		{Path: "/resios-ui/logout", Page: "Logout"},
		{Path: "/resios-ui/newInstall", Page: "NewInstall"},
		{Path: "/resios-ui/newmfa", Page: "NewMFA"},
		{Path: "/resios-ui/openid", Page: "OpenID"},
		{Path: "/resios-ui/loginmfa", Page: "MFALogin"},
		{Path: "/resios-ui/forgot-password", Page: "ForgotPassword"},
	}
}

// MainPageRoutes are the console pages; all but the two redirects sit behind
// the login-status guard.
func MainPageRoutes() []models.PageRoute {
	private := []models.PageRoute{
		{Path: "/resios-ui", Page: "HomePage"},
		{Path: "/resios-ui/monitoring", Page: "DashboardDefault"},
		{Path: "/resios-ui/storage", Page: "StorageIndex"},
		{Path: "/resios-ui/constellation", Page: "ConstellationIndex"},
		{Path: "/resios-ui/servapps", Page: "ServAppsIndex"},
		{Path: "/resios-ui/servapps/stack/:stack", Page: "ServAppsIndex"},
		{Path: "/resios-ui/config-users", Page: "UserManagement"},
		{Path: "/resios-ui/config-general", Page: "ConfigManagement"},
		{Path: "/resios-ui/servapps/new-service", Page: "NewDockerServiceForm"},
		{Path: "/resios-ui/config-url", Page: "ProxyManagement"},
		{Path: "/resios-ui/config-url/:routeName", Page: "RouteConfigPage"},
		{Path: "/resios-ui/servapps/containers/:containerName", Page: "ContainerIndex"},
		{Path: "/resios-ui/openid-manage", Page: "OpenIdList"},
		{Path: "/resios-ui/market-listing/", Page: "MarketPage"},
		{Path: "/resios-ui/market-listing/:appStore/:appName", Page: "MarketPage"},
		{Path: "/resios-ui/cron", Page: "CronManager"},
	}
	for i := range private {
		private[i].Private = true
	}
	return append([]models.PageRoute{
		{Path: "/", Redirect: "/resios-ui/"},
		{Path: "/resios-ui/logo", Redirect: LogoAsset},
	}, private...)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// MatchPageRoute finds the page for a browser path. Static segments win over
// ":param" segments; the extracted params are returned alongside.
func MatchPageRoute(path string) (models.PageRoute, map[string]string, bool) {
	segs := splitPath(path)

	var (
		best       models.PageRoute
		bestParams map[string]string
		bestScore  = -1
	)
	candidates := append(LoginPageRoutes(), MainPageRoutes()...)
	for _, pr := range candidates {
		pattern := splitPath(pr.Path)
		if len(pattern) != len(segs) {
			continue
		}
		params := map[string]string{}
		score := 0
		matched := true
		for i, part := range pattern {
			if strings.HasPrefix(part, ":") {
				params[part[1:]] = segs[i]
				continue
			}
			if part != segs[i] {
				matched = false
				break
			}
			score++
		}
		if matched && score > bestScore {
			best, bestParams, bestScore = pr, params, score
		}
	}
	return best, bestParams, bestScore >= 0
}
