package core

import (
	"testing"

	"resiosctl/models"
)

func TestFaviconURL(t *testing.T) {
	console := ParseOrigin("https://cosmos.example.com")

	tests := []struct {
		name  string
		route *models.Route
		opts  FaviconOptions
		want  string
	}{
		{
			name:  "nil route",
			route: nil,
			opts:  FaviconOptions{Console: console},
			want:  DefaultGrayLogo,
		},
		{
			name:  "servapp",
			route: &models.Route{Name: "jf", Mode: models.ModeServApp, Target: "http://jellyfin:8096"},
			opts:  FaviconOptions{Console: console},
			want:  "/cosmos/api/favicon?q=http%3A%2F%2Fjellyfin%3A8096&servapp=true",
		},
		{
			name:  "proxy",
			route: &models.Route{Name: "ext", Mode: models.ModeProxy, Target: "https://example.org"},
			opts:  FaviconOptions{Console: console},
			want:  "/cosmos/api/favicon?q=https%3A%2F%2Fexample.org",
		},
		{
			name:  "static",
			route: &models.Route{Name: "files", Mode: models.ModeStatic, Target: "/var/www"},
			opts:  FaviconOptions{Console: console},
			want:  DefaultFolderIcon,
		},
		{
			name:  "static with custom folder icon",
			route: &models.Route{Name: "files", Mode: models.ModeStatic},
			opts:  FaviconOptions{Console: console, FolderIcon: "/icons/dir.svg"},
			want:  "/icons/dir.svg",
		},
		{
			name:  "spa on its own host",
			route: &models.Route{Name: "spa", Mode: models.ModeSPA, UseHost: true, Host: "spa.example.com"},
			opts:  FaviconOptions{Console: console},
			want:  "/cosmos/api/favicon?q=https%3A%2F%2Fspa.example.com",
		},
		{
			name:  "redirect under console path prefix",
			route: &models.Route{Name: "docs", Mode: models.ModeRedirect, UsePathPrefix: true, PathPrefix: "/docs"},
			opts:  FaviconOptions{Console: console},
			want:  "/cosmos/api/favicon?q=https%3A%2F%2Fcosmos.example.com%2Fdocs",
		},
		{
			name:  "http console adds http",
			route: &models.Route{Name: "spa", Mode: models.ModeSPA, UseHost: true, Host: "192.168.1.5:7351"},
			opts:  FaviconOptions{Console: ParseOrigin("http://192.168.1.5")},
			want:  "/cosmos/api/favicon?q=http%3A%2F%2F192.168.1.5%3A7351",
		},
		{
			name:  "demo known icon",
			route: &models.Route{Name: "Plex", Mode: models.ModeServApp, Target: "plex:32400"},
			opts:  FaviconOptions{Demo: true, DemoIcons: map[string]string{"Plex": "/assets/images/icons/plex.png"}},
			want:  "/assets/images/icons/plex.png",
		},
		{
			name:  "demo unknown icon",
			route: &models.Route{Name: "Other", Mode: models.ModeServApp, Target: "other:80"},
			opts:  FaviconOptions{Demo: true},
			want:  DefaultGrayLogo,
		},
		{
			name:  "demo static",
			route: &models.Route{Name: "Plex", Mode: models.ModeStatic},
			opts:  FaviconOptions{Demo: true, DemoIcons: map[string]string{"Plex": "/p.png"}},
			want:  DefaultFolderIcon,
		},
		{
			name:  "demo nil route",
			route: nil,
			opts:  FaviconOptions{Demo: true, GrayLogo: "/gray.png"},
			want:  "/gray.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FaviconURL(tt.route, tt.opts); got != tt.want {
				t.Errorf("FaviconURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRouteOrigin(t *testing.T) {
	console := ParseOrigin("https://cosmos.example.com:8443")

	tests := []struct {
		route models.Route
		want  string
	}{
		{models.Route{UseHost: true, Host: "a.example.com"}, "a.example.com"},
		{models.Route{UseHost: true, Host: "a.example.com", UsePathPrefix: true, PathPrefix: "/x"}, "a.example.com/x"},
		{models.Route{UsePathPrefix: true, PathPrefix: "/x"}, "https://cosmos.example.com:8443/x"},
		{models.Route{}, "https://cosmos.example.com:8443"},
	}
	for _, tt := range tests {
		if got := RouteOrigin(tt.route, console); got != tt.want {
			t.Errorf("RouteOrigin(%+v) = %q, want %q", tt.route, got, tt.want)
		}
	}

	if got := FullOrigin(models.Route{UseHost: true, Host: "http://legacy.example.com"}, console); got != "http://legacy.example.com" {
		t.Errorf("FullOrigin kept protocol = %q", got)
	}
}

func TestFaviconURL_DemoIconsFromConfigKeys(t *testing.T) {
	opts := FaviconOptions{Demo: true, DemoIcons: map[string]string{"home assistant": "/ha.png"}}
	if got := FaviconURL(&models.Route{Name: "Home Assistant", Mode: models.ModeServApp}, opts); got != "/ha.png" {
		t.Errorf("FaviconURL() = %q, want lowercased lookup", got)
	}
}
