package models

import "time"

// Route modes understood by the Cosmos reverse proxy.
const (
	ModeServApp  = "SERVAPP"
	ModeProxy    = "PROXY"
	ModeStatic   = "STATIC"
	ModeSPA      = "SPA"
	ModeRedirect = "REDIRECT"
)

// SmartShieldPolicy is the per-route protection toggle. Only Enabled is
// interpreted client-side; the rest is passed through to the server untouched.
type SmartShieldPolicy struct {
	Enabled               bool  `json:"Enabled" yaml:"Enabled"`
	PolicyStrictness      int   `json:"PolicyStrictness,omitempty" yaml:"PolicyStrictness,omitempty"`
	PerUserTimeBudget     int64 `json:"PerUserTimeBudget,omitempty" yaml:"PerUserTimeBudget,omitempty"`
	PerUserRequestLimit   int   `json:"PerUserRequestLimit,omitempty" yaml:"PerUserRequestLimit,omitempty"`
	PerUserByteLimit      int64 `json:"PerUserByteLimit,omitempty" yaml:"PerUserByteLimit,omitempty"`
	PerUserSimultaneous   int   `json:"PerUserSimultaneous,omitempty" yaml:"PerUserSimultaneous,omitempty"`
	MaxGlobalSimultaneous int   `json:"MaxGlobalSimultaneous,omitempty" yaml:"MaxGlobalSimultaneous,omitempty"`
	PrivilegedGroups      int   `json:"PrivilegedGroups,omitempty" yaml:"PrivilegedGroups,omitempty"`
}

// Route is a reverse-proxy rule as exchanged with the Cosmos configuration API.
// Field names follow the server's JSON keys.
type Route struct {
	Name            string             `json:"Name" yaml:"Name" validate:"required"`
	Description     string             `json:"Description,omitempty" yaml:"Description,omitempty"`
	Mode            string             `json:"Mode" yaml:"Mode" validate:"required"`
	Target          string             `json:"Target" yaml:"Target" validate:"required"`
	UseHost         bool               `json:"UseHost" yaml:"UseHost"`
	Host            string             `json:"Host" yaml:"Host"`
	UsePathPrefix   bool               `json:"UsePathPrefix" yaml:"UsePathPrefix"`
	PathPrefix      string             `json:"PathPrefix" yaml:"PathPrefix"`
	StripPathPrefix bool               `json:"StripPathPrefix,omitempty" yaml:"StripPathPrefix,omitempty"`
	Disabled        bool               `json:"Disabled,omitempty" yaml:"Disabled,omitempty"`
	AuthEnabled     bool               `json:"AuthEnabled,omitempty" yaml:"AuthEnabled,omitempty"`
	AdminOnly       bool               `json:"AdminOnly,omitempty" yaml:"AdminOnly,omitempty"`
	SmartShield     *SmartShieldPolicy `json:"SmartShield,omitempty" yaml:"SmartShield,omitempty"`

	// HostPrefix and HostSuffix decorate generated hostnames (set by app templates).
	HostPrefix string `json:"hostPrefix,omitempty" yaml:"hostPrefix,omitempty"`
	HostSuffix string `json:"hostSuffix,omitempty" yaml:"hostSuffix,omitempty"`

	// SmartShieldEnabled is the transient form toggle; SanitizeRoute folds it
	// into SmartShield.Enabled and clears it.
	SmartShieldEnabled *bool `json:"_SmartShield_Enabled,omitempty" yaml:"_SmartShield_Enabled,omitempty"`
}

// RouteCollection is the ordered route list owned by the server.
type RouteCollection []Route

// Names returns the route names in collection order.
func (rc RouteCollection) Names() []string {
	names := make([]string, 0, len(rc))
	for _, r := range rc {
		names = append(names, r.Name)
	}
	return names
}

// HasName reports whether a route with exactly this name exists.
func (rc RouteCollection) HasName(name string) bool {
	for _, r := range rc {
		if r.Name == name {
			return true
		}
	}
	return false
}

// HostInUse reports whether any route uses host as its Host value.
func (rc RouteCollection) HostInUse(host string) bool {
	for _, r := range rc {
		if r.Host == host {
			return true
		}
	}
	return false
}

// Find returns the route with the given name.
func (rc RouteCollection) Find(name string) (Route, bool) {
	for _, r := range rc {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// RouteDraft is a sanitized route kept locally until it is submitted.
type RouteDraft struct {
	ID        string    `json:"id" example:"4b3c1a9e-3f5e-4a43-9a8e-2c2f7d3b9e10" readOnly:"true"`
	Route     Route     `json:"route"`
	CreatedAt time.Time `json:"created_at" readOnly:"true"`
	UpdatedAt time.Time `json:"updated_at" readOnly:"true"`
}

// Without returns the collection minus the route called name. Used when an
// existing route is edited and must not collide with itself.
func (rc RouteCollection) Without(name string) RouteCollection {
	out := make(RouteCollection, 0, len(rc))
	for _, r := range rc {
		if r.Name != name {
			out = append(out, r)
		}
	}
	return out
}
