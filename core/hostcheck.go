package core

import (
	"context"
	"sync"
	"time"
)

// DefaultDNSDebounce coalesces keystrokes before a DNS lookup is sent.
const DefaultDNSDebounce = 500 * time.Millisecond

// DNSResolver resolves a hostname through the server's DNS endpoint.
type DNSResolver interface {
	LookupDNS(ctx context.Context, host string) (string, error)
}

// HostCheckResult is the outcome of a hostname check. Both IP and Error are
// empty for hosts that are not domain names.
type HostCheckResult struct {
	Host  string `json:"host"`
	IP    string `json:"ip,omitempty"`
	Error string `json:"error,omitempty"`
}

// CheckHostname resolves host when it is a domain name.
func CheckHostname(ctx context.Context, resolver DNSResolver, host string) HostCheckResult {
	if !IsDomain(host) {
		return HostCheckResult{Host: host}
	}
	ip, err := resolver.LookupDNS(ctx, host)
	if err != nil {
		return HostCheckResult{Host: host, Error: err.Error()}
	}
	return HostCheckResult{Host: host, IP: ip}
}

// HostnameChecker debounces hostname checks. Only the latest Check produces a
// result: a newer call stops the pending timer, cancels the in-flight lookup
// and discards whatever the superseded lookup returns.
type HostnameChecker struct {
	resolver DNSResolver
	delay    time.Duration
	onResult func(HostCheckResult)

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
	gen    uint64
	closed bool
}

// NewHostnameChecker creates a checker. onResult runs on the checker's own
// goroutine; delay <= 0 means DefaultDNSDebounce.
func NewHostnameChecker(resolver DNSResolver, delay time.Duration, onResult func(HostCheckResult)) *HostnameChecker {
	if delay <= 0 {
		delay = DefaultDNSDebounce
	}
	return &HostnameChecker{resolver: resolver, delay: delay, onResult: onResult}
}

// Check schedules a check of host. An empty host only supersedes earlier calls.
func (c *HostnameChecker) Check(host string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.gen++
	c.stopLocked()
	if host == "" {
		return
	}
	gen := c.gen
	c.timer = time.AfterFunc(c.delay, func() { c.run(gen, host) })
}

// Stop cancels pending work; later Check calls are ignored.
func (c *HostnameChecker) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopLocked()
}

func (c *HostnameChecker) stopLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *HostnameChecker) run(gen uint64, host string) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	res := CheckHostname(ctx, c.resolver, host)
	cancel()

	c.mu.Lock()
	current := !c.closed && gen == c.gen
	if current {
		c.cancel = nil
	}
	c.mu.Unlock()
	if current && c.onResult != nil {
		c.onResult(res)
	}
}
