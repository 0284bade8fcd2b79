package core

import (
	"errors"
	"strconv"
	"strings"

	"resiosctl/models"
)

// ErrNoPortsAvailable is returned when every port of the auto-hostname range
// is already taken by a route.
var ErrNoPortsAvailable = errors.New("no more ports available, please clean up your URLs")

// PortRange is a half-open [Start, End) TCP port range.
type PortRange struct {
	Start int
	End   int
}

// Port ranges handed out to routes when the console is reached by IP.
var (
	HTTPSPortRange = PortRange{Start: 7200, End: 7350}
	HTTPPortRange  = PortRange{Start: 7351, End: 7500}
)

// HostnameFromName proposes a Host for a new route called name.
//
// When the console origin is a domain, the name is turned into a subdomain of
// it (or into <name>.local for .local origins) and the origin port is kept.
// Otherwise the first host:port in the scheme's port range that no route uses
// yet is returned, or ErrNoPortsAvailable.
func HostnameFromName(name string, route *models.Route, routes models.RouteCollection, origin Origin) (string, error) {
	host := origin.Hostname()
	port := origin.Port()

	if IsDomain(host) {
		res := Slugify(name)
		if route != nil {
			res = route.HostPrefix + res + route.HostSuffix
		}
		if strings.HasSuffix(host, ".local") {
			res += ".local"
		} else {
			res += "." + host
		}
		if port != "" {
			res += ":" + port
		}
		return res, nil
	}

	pr := HTTPPortRange
	if origin.IsHTTPS() {
		pr = HTTPSPortRange
	}
	return FreeHostPort(host, pr, routes)
}

// FreeHostPort returns the first host:port in pr not used as a route Host.
func FreeHostPort(host string, pr PortRange, routes models.RouteCollection) (string, error) {
	for p := pr.Start; p < pr.End; p++ {
		candidate := host + ":" + strconv.Itoa(p)
		if !routes.HostInUse(candidate) {
			return candidate, nil
		}
	}
	return "", ErrNoPortsAvailable
}
