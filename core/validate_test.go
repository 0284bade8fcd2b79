package core

import (
	"reflect"
	"testing"

	"resiosctl/i18n"
	"resiosctl/models"
)

func validServApp() models.Route {
	return models.Route{
		Name:    "jellyfin",
		Mode:    models.ModeServApp,
		Target:  "http://jellyfin:8096",
		UseHost: true,
		Host:    "jellyfin.example.com",
	}
}

func TestValidateRoute(t *testing.T) {
	en := i18n.NewPrinter("en")

	tests := []struct {
		name   string
		mutate func(r *models.Route)
		want   []string
	}{
		{
			name:   "valid servapp",
			mutate: func(r *models.Route) {},
			want:   []string{},
		},
		{
			name:   "servapp target with port only",
			mutate: func(r *models.Route) { r.Target = "myapp:8080" },
			want:   []string{},
		},
		{
			name:   "servapp target without port",
			mutate: func(r *models.Route) { r.Target = "myapp" },
			want:   []string{"Invalid Target, must have a port"},
		},
		{
			name: "proxy target without protocol",
			mutate: func(r *models.Route) {
				r.Mode = models.ModeProxy
				r.Target = "example.org:80"
			},
			want: []string{"Invalid Target, must start with http:// or https://"},
		},
		{
			name: "proxy target with protocol",
			mutate: func(r *models.Route) {
				r.Mode = models.ModeProxy
				r.Target = "https://example.org"
			},
			want: []string{},
		},
		{
			name: "static target is not checked",
			mutate: func(r *models.Route) {
				r.Mode = models.ModeStatic
				r.Target = "/var/www"
			},
			want: []string{},
		},
		{
			name:   "host required",
			mutate: func(r *models.Route) { r.Host = "" },
			want:   []string{"Host is required"},
		},
		{
			name:   "host without dot or colon",
			mutate: func(r *models.Route) { r.Host = "jellyfin" },
			want:   []string{"Host must be a domain name (example.com) or an address with a port (1.2.3.4:8080)"},
		},
		{
			name:   "host with protocol",
			mutate: func(r *models.Route) { r.Host = "http://jellyfin.example.com" },
			want:   []string{"Host must not contain a protocol such as http://"},
		},
		{
			name:   "host as ip and port",
			mutate: func(r *models.Route) { r.Host = "192.168.1.5:7351" },
			want:   []string{},
		},
		{
			name: "path prefix required",
			mutate: func(r *models.Route) {
				r.UseHost = false
				r.UsePathPrefix = true
			},
			want: []string{"Path Prefix is required"},
		},
		{
			name: "path prefix without slash",
			mutate: func(r *models.Route) {
				r.UsePathPrefix = true
				r.PathPrefix = "jellyfin"
			},
			want: []string{"Path Prefix must start with /"},
		},
		{
			name: "path prefix only",
			mutate: func(r *models.Route) {
				r.UseHost = false
				r.Host = ""
				r.UsePathPrefix = true
				r.PathPrefix = "/jellyfin"
			},
			want: []string{},
		},
		{
			name: "no host and no path prefix",
			mutate: func(r *models.Route) {
				r.UseHost = false
				r.UsePathPrefix = false
			},
			want: []string{"Source must be at least a Host or a Path Prefix"},
		},
		{
			name: "empty route reports every field in order",
			mutate: func(r *models.Route) {
				*r = models.Route{}
			},
			want: []string{
				"Name is required",
				"Mode is required",
				"Target is required",
				"Source must be at least a Host or a Path Prefix",
			},
		},
		{
			name: "several fields at once",
			mutate: func(r *models.Route) {
				r.Target = "myapp"
				r.Host = "myhost"
			},
			want: []string{
				"Invalid Target, must have a port",
				"Host must be a domain name (example.com) or an address with a port (1.2.3.4:8080)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validServApp()
			tt.mutate(&r)
			got := ValidateRoute(r, nil, en)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateRoute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateRoute_NameCollision(t *testing.T) {
	existing := models.RouteCollection{
		{Name: "jellyfin", Mode: models.ModeServApp, Target: "jellyfin:8096"},
		{Name: "nextcloud", Mode: models.ModeServApp, Target: "nextcloud:80"},
	}

	t.Run("collision alone", func(t *testing.T) {
		got := ValidateRoute(validServApp(), existing, nil)
		want := []string{"Name already exists"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ValidateRoute() = %q, want %q", got, want)
		}
	})

	t.Run("collision reported after schema errors", func(t *testing.T) {
		r := validServApp()
		r.Target = "myapp"
		got := ValidateRoute(r, existing, nil)
		want := []string{"Invalid Target, must have a port", "Name already exists"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ValidateRoute() = %q, want %q", got, want)
		}
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		r := validServApp()
		r.Name = "Jellyfin"
		if got := ValidateRoute(r, existing, nil); len(got) != 0 {
			t.Errorf("ValidateRoute() = %q, want no errors", got)
		}
	})

	t.Run("translated", func(t *testing.T) {
		got := ValidateRoute(validServApp(), existing, i18n.NewPrinter("de"))
		want := []string{"Name existiert bereits"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ValidateRoute() = %q, want %q", got, want)
		}
	})
}

func TestValidateRouteSchema_ValidIsNil(t *testing.T) {
	if got := ValidateRouteSchema(validServApp(), nil); got != nil {
		t.Errorf("ValidateRouteSchema() = %q, want nil", got)
	}
}

func TestValidateRoute_AfterSanitize(t *testing.T) {
	// A form that switched off UseHost but left a stale host still validates
	// on its path prefix once sanitized.
	r := validServApp()
	r.UseHost = false
	r.Host = "not a host"
	r.UsePathPrefix = true
	r.PathPrefix = "/jf"

	if got := ValidateRoute(SanitizeRoute(r), nil, nil); len(got) != 0 {
		t.Errorf("ValidateRoute(SanitizeRoute()) = %q, want no errors", got)
	}
}
