package core

import (
	"net/url"
	"strings"

	"resiosctl/models"
)

// FaviconEndpoint is the server endpoint that fetches and caches remote favicons.
const FaviconEndpoint = "/cosmos/api/favicon"

// Bundled console assets.
const (
	DefaultFolderIcon = "/assets/images/icons/folder(1).svg"
	DefaultGrayLogo   = "/assets/images/icons/cosmos_gray.png"
)

// FaviconOptions carries what the resolver would otherwise read from globals.
type FaviconOptions struct {
	// Demo serves bundled icons only, never remote favicons.
	Demo bool
	// DemoIcons maps route names to icon URLs in demo mode.
	DemoIcons  map[string]string
	FolderIcon string
	GrayLogo   string
	// Console is the origin the console is served from. Routes without a host
	// are reached through it.
	Console Origin
}

func (o FaviconOptions) folderIcon() string {
	if o.FolderIcon != "" {
		return o.FolderIcon
	}
	return DefaultFolderIcon
}

// demoIcon looks name up as is, then lowercased (config keys are folded).
func (o FaviconOptions) demoIcon(name string) string {
	if icon, ok := o.DemoIcons[name]; ok {
		return icon
	}
	return o.DemoIcons[strings.ToLower(name)]
}

func (o FaviconOptions) grayLogo() string {
	if o.GrayLogo != "" {
		return o.GrayLogo
	}
	return DefaultGrayLogo
}

// RouteOrigin is the host (or console origin) plus path prefix a route answers on.
func RouteOrigin(route models.Route, console Origin) string {
	origin := console.String()
	if route.UseHost {
		origin = route.Host
	}
	if route.UsePathPrefix {
		origin += route.PathPrefix
	}
	return origin
}

// FullOrigin is RouteOrigin with a protocol, taken from the console when missing.
func FullOrigin(route models.Route, console Origin) string {
	return addProtocol(RouteOrigin(route, console), console.Scheme)
}

func addProtocol(u, scheme string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	if scheme == "http" {
		return "http://" + u
	}
	return "https://" + u
}

func remoteFavicon(target string, servApp bool) string {
	q := url.Values{}
	q.Set("q", target)
	if servApp {
		q.Set("servapp", "true")
	}
	return FaviconEndpoint + "?" + q.Encode()
}

// FaviconURL returns the icon shown next to a route. route may be nil.
func FaviconURL(route *models.Route, opts FaviconOptions) string {
	if opts.Demo {
		if route == nil {
			return opts.grayLogo()
		}
		if route.Mode == models.ModeStatic {
			return opts.folderIcon()
		}
		if icon := opts.demoIcon(route.Name); icon != "" {
			return icon
		}
		return opts.grayLogo()
	}

	if route == nil {
		return opts.grayLogo()
	}

	switch route.Mode {
	case models.ModeServApp, models.ModeProxy:
		return remoteFavicon(route.Target, route.Mode == models.ModeServApp)
	case models.ModeStatic:
		return opts.folderIcon()
	default:
		return remoteFavicon(FullOrigin(*route, opts.Console), false)
	}
}
