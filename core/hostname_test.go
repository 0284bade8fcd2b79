package core

import "testing"

// ============================================================================
// IsDomain
// ============================================================================

func TestIsDomain(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"example.com", true},
		{"my-app.local", true},
		{"cosmos.example.com", true},
		{"a.b.c.example.io", true},
		{"localhost", false},
		{"localhost.com", false},
		{"app.localhost.example.com", false},
		{"192.168.1.5", false},
		{"1.2.3.4.example.com", false},
		{"example", false},
		{"example.c", false},
		{"example.c0m", false},
		{"", false},
		{"exa_mple.com", false},
		{"example.com:8080", false},
	}
	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			if got := IsDomain(tt.host); got != tt.want {
				t.Errorf("IsDomain(%q) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}

// ============================================================================
// Slugify
// ============================================================================

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"My App!", "my-app"},
		{"jellyfin", "jellyfin"},
		{"/nextcloud_web", "nextcloud-web"},
		{"Home Assistant (beta)", "home-assistant-beta"},
		{"a/b/c", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.name); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// ============================================================================
// Origin
// ============================================================================

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		in       string
		scheme   string
		host     string
		hostname string
		port     string
	}{
		{"https://cosmos.example.com", "https", "cosmos.example.com", "cosmos.example.com", ""},
		{"http://192.168.1.5:8080", "http", "192.168.1.5:8080", "192.168.1.5", "8080"},
		{"HTTPS://Cosmos.example.com:8443/resios-ui/", "https", "Cosmos.example.com:8443", "Cosmos.example.com", "8443"},
		{"cosmos.example.com", "", "cosmos.example.com", "cosmos.example.com", ""},
	}
	for _, tt := range tests {
		o := ParseOrigin(tt.in)
		if o.Scheme != tt.scheme || o.Host != tt.host {
			t.Errorf("ParseOrigin(%q) = %+v, want scheme %q host %q", tt.in, o, tt.scheme, tt.host)
		}
		if o.Hostname() != tt.hostname || o.Port() != tt.port {
			t.Errorf("ParseOrigin(%q) hostname/port = %q/%q, want %q/%q", tt.in, o.Hostname(), o.Port(), tt.hostname, tt.port)
		}
	}
}

func TestOrigin_String(t *testing.T) {
	if got := (Origin{Scheme: "https", Host: "a.example.com"}).String(); got != "https://a.example.com" {
		t.Errorf("String() = %q", got)
	}
	if got := (Origin{Host: "a.example.com"}).String(); got != "a.example.com" {
		t.Errorf("String() without scheme = %q", got)
	}
}
