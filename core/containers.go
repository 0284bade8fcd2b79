package core

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"resiosctl/logger"
	"resiosctl/models"

	"github.com/robfig/cron/v3"
)

var crontabParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ContainerRoutes returns the SERVAPP routes targeting containerName, with or
// without a scheme and port.
func ContainerRoutes(cfg *models.Config, containerName string) models.RouteCollection {
	out := models.RouteCollection{}
	routes := cfg.Routes()
	if len(routes) == 0 {
		return out
	}
	re := regexp.MustCompile(`(?i)^(([a-z]+)://)?` + regexp.QuoteMeta(containerName) + `(:?[0-9]+)?$`)
	for _, r := range routes {
		if r.Mode == models.ModeServApp && re.MatchString(r.Target) {
			out = append(out, r)
		}
	}
	return out
}

// NextRun parses a 5 or 6 field crontab (or a @descriptor) and returns the
// next activation after now.
func NextRun(crontab string, now time.Time) (time.Time, error) {
	sched, err := crontabParser.Parse(crontab)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(now), nil
}

// ContainerJobs returns the cron jobs bound to containerName, sorted by name.
// Docker reports names with a leading slash, jobs may store either form.
func ContainerJobs(cfg *models.Config, containerName string, now time.Time) []models.ScheduledJob {
	out := []models.ScheduledJob{}
	want := strings.TrimLeft(containerName, "/")
	if cfg == nil || want == "" {
		return out
	}
	for _, job := range cfg.CRON {
		if strings.TrimLeft(job.Container, "/") != want {
			continue
		}
		sj := models.ScheduledJob{CRONJob: job}
		if job.Enabled {
			next, err := NextRun(job.Crontab, now)
			if err != nil {
				logger.Debug("ContainerJobs: job %q has an unparsable crontab %q: %v", job.Name, job.Crontab, err)
			} else {
				sj.NextRun = &next
			}
		}
		out = append(out, sj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
