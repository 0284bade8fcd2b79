// Package remote talks to the Cosmos server's HTTP API.
package remote

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"resiosctl/logger"
	"resiosctl/models"

	"github.com/andybalholm/brotli"
	"github.com/tidwall/gjson"
)

// Endpoints of the Cosmos server used by the console.
const (
	MePath     = "/cosmos/api/me"
	DNSPath    = "/cosmos/api/dns"
	ConfigPath = "/cosmos/api/config"
)

// TokenCookie is the session cookie the Cosmos server authenticates with.
const TokenCookie = "jwttoken"

const statusOK = "OK"

// ErrUnauthorized is matched (errors.Is) by APIErrors caused by a missing or
// expired session.
var ErrUnauthorized = errors.New("not authorized on the Cosmos server")

// APIError is a failed call, carrying the server's envelope when there was one.
type APIError struct {
	Path    string
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (%s, HTTP %d)", e.Path, msg, e.Code, e.Status)
	}
	return fmt.Sprintf("%s: %s (HTTP %d)", e.Path, msg, e.Status)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && (e.Status == http.StatusUnauthorized || e.Code == models.AuthCodeNotLoggedIn)
}

// Client is a Cosmos API client. The zero value is not usable; use New.
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
}

// New returns a client for the server at baseURL. token, when set, is sent as
// the jwttoken cookie.
func New(baseURL, token string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing remote url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("remote url %q must start with http:// or https://", baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: u,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

// BaseURL returns the server URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// get performs a GET and returns the status code and the decoded body.
func (c *Client) get(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br, gzip")
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: c.token})
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.RemoteError("GET %s failed: %v", u.Redacted(), err)
		return 0, nil, fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	logger.RemoteDebug("GET %s -> %d (%d bytes, %s, %s)", u.Redacted(), resp.StatusCode, len(body), resp.Header.Get("Content-Encoding"), time.Since(start))
	if err != nil {
		logger.RemoteError("Reading response of %s: %v", path, err)
		return resp.StatusCode, nil, fmt.Errorf("reading response of %s: %w", path, err)
	}
	return resp.StatusCode, body, nil
}

// readBody returns the response body, decompressed per Content-Encoding.
func readBody(resp *http.Response) ([]byte, error) {
	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "br":
		return io.ReadAll(brotli.NewReader(resp.Body))
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(gz)
	default:
		return io.ReadAll(resp.Body)
	}
}

// envelope checks the {status, code, message, data} wrapper and returns data.
func envelope(path string, status int, body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, &APIError{Path: path, Status: status, Message: "invalid JSON response"}
	}
	res := gjson.ParseBytes(body)
	st := res.Get("status").String()
	if status >= 300 || st != statusOK {
		apiErr := &APIError{
			Path:    path,
			Status:  status,
			Code:    res.Get("code").String(),
			Message: res.Get("message").String(),
		}
		if apiErr.Message == "" && st != "" && st != statusOK {
			apiErr.Message = "status " + st
		}
		return gjson.Result{}, apiErr
	}
	return res.Get("data"), nil
}

// Me queries the session endpoint. The server answers an anonymous session
// with an error envelope (and a 401), which is returned as a normal response.
func (c *Client) Me(ctx context.Context) (models.AuthResponse, error) {
	status, body, err := c.get(ctx, MePath, nil)
	if err != nil {
		return models.AuthResponse{}, err
	}
	if !gjson.ValidBytes(body) {
		return models.AuthResponse{}, &APIError{Path: MePath, Status: status, Message: "invalid JSON response"}
	}
	res := gjson.ParseBytes(body)
	if !res.Get("status").Exists() {
		return models.AuthResponse{}, &APIError{Path: MePath, Status: status, Message: "response has no status"}
	}
	return models.AuthResponse{
		Status:  res.Get("status").String(),
		Code:    res.Get("code").String(),
		Message: res.Get("message").String(),
	}, nil
}

// LookupDNS asks the server to resolve host and returns the first address.
func (c *Client) LookupDNS(ctx context.Context, host string) (string, error) {
	status, body, err := c.get(ctx, DNSPath, url.Values{"url": {host}})
	if err != nil {
		return "", err
	}
	data, err := envelope(DNSPath, status, body)
	if err != nil {
		return "", err
	}
	if data.IsArray() {
		arr := data.Array()
		if len(arr) == 0 {
			return "", &APIError{Path: DNSPath, Status: status, Message: "no address for " + host}
		}
		return arr[0].String(), nil
	}
	return data.String(), nil
}

// Config fetches the server configuration snapshot.
func (c *Client) Config(ctx context.Context) (*models.Config, error) {
	status, body, err := c.get(ctx, ConfigPath, nil)
	if err != nil {
		return nil, err
	}
	data, err := envelope(ConfigPath, status, body)
	if err != nil {
		return nil, err
	}
	if !data.IsObject() {
		return nil, &APIError{Path: ConfigPath, Status: status, Message: "config response has no data object"}
	}

	cfg := &models.Config{}
	if err := json.Unmarshal([]byte(data.Raw), cfg); err != nil {
		return nil, fmt.Errorf("decoding config snapshot: %w", err)
	}
	logger.RemoteInfo("Fetched config snapshot: %d routes, %d cron jobs", len(cfg.Routes()), len(cfg.CRON))
	return cfg, nil
}

// Routes fetches only the proxy routes.
func (c *Client) Routes(ctx context.Context) (models.RouteCollection, error) {
	cfg, err := c.Config(ctx)
	if err != nil {
		return nil, err
	}
	routes := cfg.Routes()
	if routes == nil {
		routes = models.RouteCollection{}
	}
	return routes, nil
}
