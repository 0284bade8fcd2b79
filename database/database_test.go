package database

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"resiosctl/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "resiosctl.db")
	if err := InitDB(path); err != nil {
		t.Fatalf("InitDB() error = %v", err)
	}
	t.Cleanup(func() { CloseDB() })
}

func TestInitDB_IsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resiosctl.db")
	if err := InitDB(path); err != nil {
		t.Fatalf("first InitDB() error = %v", err)
	}
	CloseDB()
	if err := InitDB(path); err != nil {
		t.Fatalf("second InitDB() error = %v", err)
	}
	CloseDB()
}

func TestSettings(t *testing.T) {
	setupTestDB(t)

	v, err := GetSetting(models.LocaleKey)
	if err != nil || v != "" {
		t.Fatalf("GetSetting() on empty store = %q, %v", v, err)
	}
	if err := SetSetting(models.LocaleKey, "de"); err != nil {
		t.Fatalf("SetSetting() error = %v", err)
	}
	if err := SetSetting(models.LocaleKey, "en"); err != nil {
		t.Fatalf("SetSetting() overwrite error = %v", err)
	}
	if v, _ := GetSetting(models.LocaleKey); v != "en" {
		t.Errorf("GetSetting() = %q, want en", v)
	}
}

func TestConfigSnapshot(t *testing.T) {
	setupTestDB(t)

	snap, err := GetConfigSnapshot()
	if err != nil || snap != nil {
		t.Fatalf("GetConfigSnapshot() before save = %+v, %v", snap, err)
	}

	cfg := &models.Config{
		HTTPConfig: models.HTTPConfig{ProxyConfig: models.ProxyConfig{Routes: models.RouteCollection{
			{Name: "jellyfin", Mode: models.ModeServApp, Target: "jellyfin:8096"},
		}}},
		CRON: map[string]models.CRONJob{"backup": {Name: "backup", Crontab: "@daily", Enabled: true}},
	}
	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	if err := SaveConfigSnapshot(cfg, at); err != nil {
		t.Fatalf("SaveConfigSnapshot() error = %v", err)
	}

	snap, err = GetConfigSnapshot()
	if err != nil {
		t.Fatalf("GetConfigSnapshot() error = %v", err)
	}
	if !snap.FetchedAt.Equal(at) {
		t.Errorf("FetchedAt = %v, want %v", snap.FetchedAt, at)
	}
	if !snap.Config.Routes().HasName("jellyfin") || snap.Config.CRON["backup"].Crontab != "@daily" {
		t.Errorf("snapshot = %+v", snap.Config)
	}

	if err := SaveConfigSnapshot(nil, at); err == nil {
		t.Error("SaveConfigSnapshot(nil) succeeded")
	}
}

func TestDrafts_Lifecycle(t *testing.T) {
	setupTestDB(t)

	enabled := true
	route := models.Route{
		Name:        "jellyfin",
		Mode:        models.ModeServApp,
		Target:      "http://jellyfin:8096",
		UseHost:     true,
		Host:        "jf.example.com",
		SmartShield: &models.SmartShieldPolicy{Enabled: enabled, PolicyStrictness: 1},
	}

	created, err := CreateDraft(route)
	if err != nil {
		t.Fatalf("CreateDraft() error = %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("CreateDraft() = %+v", created)
	}

	got, err := GetDraft(created.ID)
	if err != nil {
		t.Fatalf("GetDraft() error = %v", err)
	}
	if got.Route.Host != "jf.example.com" || got.Route.SmartShield == nil || got.Route.SmartShield.PolicyStrictness != 1 {
		t.Errorf("GetDraft() route = %+v", got.Route)
	}

	second, err := CreateDraft(models.Route{Name: "docs", Mode: models.ModeStatic, Target: "/srv"})
	if err != nil {
		t.Fatalf("CreateDraft() second error = %v", err)
	}

	list, err := ListDrafts()
	if err != nil || len(list) != 2 {
		t.Fatalf("ListDrafts() = %d drafts, %v", len(list), err)
	}

	route.Host = "media.example.com"
	updated, err := UpdateDraft(created.ID, route)
	if err != nil {
		t.Fatalf("UpdateDraft() error = %v", err)
	}
	if updated.Route.Host != "media.example.com" {
		t.Errorf("UpdateDraft() host = %q", updated.Route.Host)
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Errorf("UpdatedAt %v before CreatedAt %v", updated.UpdatedAt, updated.CreatedAt)
	}

	if err := DeleteDraft(second.ID); err != nil {
		t.Fatalf("DeleteDraft() error = %v", err)
	}
	if _, err := GetDraft(second.ID); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("GetDraft() after delete error = %v, want ErrDraftNotFound", err)
	}
}

func TestDrafts_NotFound(t *testing.T) {
	setupTestDB(t)

	if _, err := GetDraft("missing"); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("GetDraft() error = %v", err)
	}
	if _, err := UpdateDraft("missing", models.Route{Name: "x"}); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("UpdateDraft() error = %v", err)
	}
	if err := DeleteDraft("missing"); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("DeleteDraft() error = %v", err)
	}

	list, err := ListDrafts()
	if err != nil || list == nil || len(list) != 0 {
		t.Errorf("ListDrafts() on empty store = %#v, %v", list, err)
	}
}
