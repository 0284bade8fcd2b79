package core

import (
	"testing"
	"time"

	"resiosctl/models"
)

func testConfig() *models.Config {
	return &models.Config{
		HTTPConfig: models.HTTPConfig{ProxyConfig: models.ProxyConfig{Routes: models.RouteCollection{
			{Name: "jf", Mode: models.ModeServApp, Target: "http://jellyfin:8096"},
			{Name: "jf-bare", Mode: models.ModeServApp, Target: "jellyfin:8096"},
			{Name: "jf-upper", Mode: models.ModeServApp, Target: "HTTP://JELLYFIN"},
			{Name: "jf-db", Mode: models.ModeServApp, Target: "http://jellyfin-db:5432"},
			{Name: "jf-proxy", Mode: models.ModeProxy, Target: "http://jellyfin:8096"},
			{Name: "jf-path", Mode: models.ModeServApp, Target: "http://jellyfin:8096/web"},
		}}},
		CRON: map[string]models.CRONJob{
			"backup":  {Name: "backup", Crontab: "0 0 3 * * *", Container: "/jellyfin", Enabled: true},
			"cleanup": {Name: "cleanup", Crontab: "@daily", Container: "jellyfin", Enabled: false},
			"broken":  {Name: "broken", Crontab: "not a cron", Container: "jellyfin", Enabled: true},
			"nginx":   {Name: "nginx", Crontab: "@hourly", Container: "nginx", Enabled: true},
			"global":  {Name: "global", Crontab: "@hourly", Enabled: true},
		},
	}
}

func TestContainerRoutes(t *testing.T) {
	got := ContainerRoutes(testConfig(), "jellyfin")
	names := got.Names()
	want := []string{"jf", "jf-bare", "jf-upper"}
	if len(names) != len(want) {
		t.Fatalf("ContainerRoutes() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ContainerRoutes()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestContainerRoutes_Empty(t *testing.T) {
	if got := ContainerRoutes(nil, "jellyfin"); got == nil || len(got) != 0 {
		t.Errorf("nil config = %#v, want empty collection", got)
	}
	if got := ContainerRoutes(testConfig(), "plex"); len(got) != 0 {
		t.Errorf("unknown container = %v", got.Names())
	}
	// Names are quoted, not treated as patterns.
	if got := ContainerRoutes(testConfig(), "jelly.*"); len(got) != 0 {
		t.Errorf("regexp name matched %v", got.Names())
	}
}

func TestContainerJobs(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, name := range []string{"jellyfin", "/jellyfin"} {
		t.Run(name, func(t *testing.T) {
			jobs := ContainerJobs(testConfig(), name, now)
			if len(jobs) != 3 {
				t.Fatalf("ContainerJobs() returned %d jobs, want 3", len(jobs))
			}
			if jobs[0].Name != "backup" || jobs[1].Name != "broken" || jobs[2].Name != "cleanup" {
				t.Errorf("jobs not sorted by name: %q %q %q", jobs[0].Name, jobs[1].Name, jobs[2].Name)
			}
			want := time.Date(2026, 1, 1, 3, 0, 0, 0, time.UTC)
			if jobs[0].NextRun == nil || !jobs[0].NextRun.Equal(want) {
				t.Errorf("backup next run = %v, want %v", jobs[0].NextRun, want)
			}
			if jobs[1].NextRun != nil {
				t.Error("unparsable crontab should have no next run")
			}
			if jobs[2].NextRun != nil {
				t.Error("disabled job should have no next run")
			}
		})
	}
}

func TestContainerJobs_Empty(t *testing.T) {
	now := time.Now()
	if got := ContainerJobs(nil, "jellyfin", now); got == nil || len(got) != 0 {
		t.Errorf("nil config = %#v", got)
	}
	if got := ContainerJobs(testConfig(), "", now); len(got) != 0 {
		t.Errorf("empty container name matched %d jobs", len(got))
	}
}

func TestNextRun(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 2, 30, 0, time.UTC)

	tests := []struct {
		crontab string
		want    time.Time
	}{
		{"*/5 * * * *", time.Date(2026, 3, 10, 12, 5, 0, 0, time.UTC)},
		{"30 * * * * *", time.Date(2026, 3, 10, 12, 3, 30, 0, time.UTC)},
		{"@daily", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := NextRun(tt.crontab, now)
		if err != nil {
			t.Errorf("NextRun(%q) error = %v", tt.crontab, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("NextRun(%q) = %v, want %v", tt.crontab, got, tt.want)
		}
	}

	if _, err := NextRun("61 * * * *", now); err == nil {
		t.Error("NextRun accepted an out-of-range minute")
	}
}
