package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resiosctl/logger"
	"resiosctl/models"

	"github.com/google/uuid"
)

// ErrDraftNotFound is returned when no draft has the requested ID.
var ErrDraftNotFound = errors.New("route draft not found")

// CreateDraft stores route as a new draft and returns it with its ID and timestamps.
func CreateDraft(route models.Route) (models.RouteDraft, error) {
	now := time.Now().UTC()
	draft := models.RouteDraft{
		ID:        uuid.NewString(),
		Route:     route,
		CreatedAt: now,
		UpdatedAt: now,
	}

	payload, err := json.Marshal(route)
	if err != nil {
		return models.RouteDraft{}, fmt.Errorf("marshalling draft route: %w", err)
	}
	_, err = DB.Exec(`INSERT INTO route_drafts (id, name, payload, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		draft.ID, route.Name, string(payload), draft.CreatedAt, draft.UpdatedAt)
	if err != nil {
		return models.RouteDraft{}, fmt.Errorf("inserting draft %q: %w", route.Name, err)
	}
	logger.Debug("CreateDraft: stored draft %s for route %q", draft.ID, route.Name)
	return draft, nil
}

func scanDraft(scan func(dest ...any) error) (models.RouteDraft, error) {
	var d models.RouteDraft
	var payload string
	if err := scan(&d.ID, &payload, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return d, err
	}
	if err := json.Unmarshal([]byte(payload), &d.Route); err != nil {
		return d, fmt.Errorf("decoding draft %s payload: %w", d.ID, err)
	}
	return d, nil
}

// GetDraft returns the draft with the given ID or ErrDraftNotFound.
func GetDraft(id string) (models.RouteDraft, error) {
	row := DB.QueryRow(`SELECT id, payload, created_at, updated_at FROM route_drafts WHERE id = ?`, id)
	d, err := scanDraft(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RouteDraft{}, fmt.Errorf("draft %s: %w", id, ErrDraftNotFound)
		}
		return models.RouteDraft{}, fmt.Errorf("querying draft %s: %w", id, err)
	}
	return d, nil
}

// ListDrafts returns every draft, oldest first.
func ListDrafts() ([]models.RouteDraft, error) {
	rows, err := DB.Query(`SELECT id, payload, created_at, updated_at FROM route_drafts ORDER BY created_at ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying drafts: %w", err)
	}
	defer rows.Close()

	drafts := []models.RouteDraft{}
	for rows.Next() {
		d, err := scanDraft(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning draft row: %w", err)
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating draft rows: %w", err)
	}
	return drafts, nil
}

// UpdateDraft replaces the route of an existing draft.
func UpdateDraft(id string, route models.Route) (models.RouteDraft, error) {
	payload, err := json.Marshal(route)
	if err != nil {
		return models.RouteDraft{}, fmt.Errorf("marshalling draft route: %w", err)
	}
	res, err := DB.Exec(`UPDATE route_drafts SET name = ?, payload = ?, updated_at = ? WHERE id = ?`,
		route.Name, string(payload), time.Now().UTC(), id)
	if err != nil {
		return models.RouteDraft{}, fmt.Errorf("updating draft %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.RouteDraft{}, fmt.Errorf("draft %s: %w", id, ErrDraftNotFound)
	}
	return GetDraft(id)
}

// DeleteDraft removes a draft.
func DeleteDraft(id string) error {
	res, err := DB.Exec(`DELETE FROM route_drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting draft %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("draft %s: %w", id, ErrDraftNotFound)
	}
	return nil
}
