package core

import (
	"regexp"
	"strings"
)

var (
	domainShapeRe = regexp.MustCompile(`^([a-zA-Z0-9-]{1,63}\.)+[a-zA-Z]{2,63}$`)
	dottedQuadRe  = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+`)

	slugWhitespaceRe = regexp.MustCompile(`\s`)
	slugInvalidRe    = regexp.MustCompile(`[^a-zA-Z0-9-]`)
)

// IsDomain reports whether host looks like a domain name: dot-terminated labels
// of [A-Za-z0-9-] followed by an alphabetic TLD of 2-63 characters. No label
// position may start a "localhost" name or a dotted-quad IPv4 literal.
func IsDomain(host string) bool {
	if !domainShapeRe.MatchString(host) {
		return false
	}
	labels := strings.Split(host, ".")
	for i := 0; i < len(labels)-1; i++ {
		rest := strings.Join(labels[i:], ".")
		if strings.HasPrefix(rest, "localhost") || dottedQuadRe.MatchString(rest) {
			return false
		}
	}
	return true
}

// Slugify turns a display name into a hostname label: slashes are dropped,
// underscores and whitespace become hyphens, anything else outside
// [A-Za-z0-9-] is removed and the result is lowercased.
func Slugify(name string) string {
	s := strings.ReplaceAll(name, "/", "")
	s = strings.ReplaceAll(s, "_", "-")
	s = slugWhitespaceRe.ReplaceAllString(s, "-")
	s = slugInvalidRe.ReplaceAllString(s, "")
	return strings.ToLower(s)
}

// Origin is the console origin a browser would report, e.g. https://cosmos.example.com:8443.
type Origin struct {
	Scheme string
	Host   string // host[:port]
}

// ParseOrigin splits "scheme://host[:port][/path]". A value without a scheme is
// taken as a bare host with an empty scheme.
func ParseOrigin(s string) Origin {
	s = strings.TrimSpace(s)
	var o Origin
	if scheme, rest, ok := strings.Cut(s, "://"); ok {
		o.Scheme = strings.ToLower(scheme)
		s = rest
	}
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	o.Host = s
	return o
}

// Hostname returns the host without its port.
func (o Origin) Hostname() string {
	h, _, _ := strings.Cut(o.Host, ":")
	return h
}

// Port returns the port part of the host, or "".
func (o Origin) Port() string {
	_, p, _ := strings.Cut(o.Host, ":")
	return p
}

// IsHTTPS reports whether the origin scheme is https.
func (o Origin) IsHTTPS() bool {
	return o.Scheme == "https"
}

func (o Origin) String() string {
	if o.Scheme == "" {
		return o.Host
	}
	return o.Scheme + "://" + o.Host
}
