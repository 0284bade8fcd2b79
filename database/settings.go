package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resiosctl/logger"
	"resiosctl/models"
)

// GetSetting retrieves a specific setting value from the app_settings table.
func GetSetting(key string) (string, error) {
	var value string
	err := DB.QueryRow("SELECT value FROM app_settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil // Return empty string if not found, not an error
		}
		return "", fmt.Errorf("failed to get setting '%s': %w", key, err)
	}
	return value, nil
}

// SetSetting saves or updates a specific setting value in the app_settings table.
func SetSetting(key, value string) error {
	stmt, err := DB.Prepare("INSERT OR REPLACE INTO app_settings (key, value) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare set setting statement for key '%s': %w", key, err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(key, value)
	if err != nil {
		return fmt.Errorf("failed to execute set setting for key '%s': %w", key, err)
	}
	return nil
}

// ConfigSnapshot is the last configuration fetched from the server.
type ConfigSnapshot struct {
	Config    models.Config `json:"config"`
	FetchedAt time.Time     `json:"fetched_at"`
}

// SaveConfigSnapshot stores cfg so route lookups keep working while the server
// is unreachable.
func SaveConfigSnapshot(cfg *models.Config, fetchedAt time.Time) error {
	if cfg == nil {
		return errors.New("nil config snapshot")
	}
	data, err := json.Marshal(ConfigSnapshot{Config: *cfg, FetchedAt: fetchedAt.UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal config snapshot: %w", err)
	}
	if err := SetSetting(models.LastConfigSnapshotKey, string(data)); err != nil {
		return fmt.Errorf("failed to save config snapshot: %w", err)
	}
	return nil
}

// GetConfigSnapshot returns the stored snapshot, or nil when none was saved.
func GetConfigSnapshot() (*ConfigSnapshot, error) {
	raw, err := GetSetting(models.LastConfigSnapshotKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var snap ConfigSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		logger.Error("GetConfigSnapshot: Error unmarshalling snapshot JSON: %v", err)
		return nil, fmt.Errorf("failed to unmarshal config snapshot: %w", err)
	}
	return &snap, nil
}
