package remote

import (
	"context"
	"errors"
	"time"

	"resiosctl/database"
	"resiosctl/logger"
	"resiosctl/models"
)

// Where a configuration returned by LoadConfig came from.
const (
	SourceRemote   = "remote"
	SourceSnapshot = "snapshot"
)

// ErrNoRemote is returned when no Cosmos server is configured.
var ErrNoRemote = errors.New("no Cosmos server configured (remote.url)")

// ConfigFetcher fetches the live server configuration.
type ConfigFetcher interface {
	Config(ctx context.Context) (*models.Config, error)
}

// LoadConfig fetches the configuration and refreshes the local snapshot. When
// the server cannot be reached the stored snapshot is returned instead.
// Authorization failures are never masked by the snapshot.
func LoadConfig(ctx context.Context, src ConfigFetcher) (*models.Config, string, error) {
	if src == nil {
		return nil, "", ErrNoRemote
	}
	cfg, err := src.Config(ctx)
	if err == nil {
		if database.DB != nil {
			if saveErr := database.SaveConfigSnapshot(cfg, time.Now()); saveErr != nil {
				logger.Error("LoadConfig: Could not store config snapshot: %v", saveErr)
			}
		}
		return cfg, SourceRemote, nil
	}
	if errors.Is(err, ErrUnauthorized) || database.DB == nil {
		return nil, "", err
	}

	snap, snapErr := database.GetConfigSnapshot()
	if snapErr != nil || snap == nil {
		return nil, "", err
	}
	logger.Warn("LoadConfig: Cosmos server unavailable (%v), using snapshot from %s", err, snap.FetchedAt.Format(time.RFC3339))
	return &snap.Config, SourceSnapshot, nil
}
