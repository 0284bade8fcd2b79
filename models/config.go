package models

import "time"

// ProxyConfig holds the server's proxy routes.
type ProxyConfig struct {
	Routes RouteCollection `json:"Routes"`
}

// HTTPConfig is the subset of the server's HTTP configuration the console reads.
type HTTPConfig struct {
	Hostname    string      `json:"Hostname,omitempty"`
	ProxyConfig ProxyConfig `json:"ProxyConfig"`
}

// CRONJob is a scheduled job, optionally bound to a container.
type CRONJob struct {
	Name      string `json:"Name" yaml:"Name"`
	Crontab   string `json:"Crontab" yaml:"Crontab"`
	Command   string `json:"Command,omitempty" yaml:"Command,omitempty"`
	Container string `json:"Container,omitempty" yaml:"Container,omitempty"`
	Enabled   bool   `json:"Enabled" yaml:"Enabled"`
	Scheduler string `json:"Scheduler,omitempty" yaml:"Scheduler,omitempty"`
}

// ScheduledJob is a CRONJob with its computed next run. NextRun is nil when the
// crontab cannot be parsed or the job is disabled.
type ScheduledJob struct {
	CRONJob
	NextRun *time.Time `json:"next_run,omitempty" swaggertype:"string" format:"date-time"`
}

// Config is the configuration snapshot read from the server.
type Config struct {
	HTTPConfig HTTPConfig         `json:"HTTPConfig"`
	CRON       map[string]CRONJob `json:"CRON,omitempty"`
}

// Routes returns the proxy routes, tolerating a nil config.
func (c *Config) Routes() RouteCollection {
	if c == nil {
		return nil
	}
	return c.HTTPConfig.ProxyConfig.Routes
}
