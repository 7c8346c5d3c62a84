// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// audit.go records admin content mutations in the database. Each entry
// captures the actor, the collection, the affected record, and the action
// (create/update/delete).
package store

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"vetlaunch/internal/models"
)

// AuditStore handles the admin audit trail.
type AuditStore struct {
	db *sql.DB
}

// NewAuditStore creates a new AuditStore.
func NewAuditStore(db *sql.DB) *AuditStore {
	return &AuditStore{db: db}
}

// Record writes one audit entry. Failures are logged but never surfaced —
// auditing is best-effort and must not block a save.
func (s *AuditStore) Record(actorID uuid.UUID, actorEmail, action, collection string, entityID uuid.UUID) {
	_, err := s.db.Exec(`
		INSERT INTO audit_log (actor_id, actor_email, action, collection, entity_id)
		VALUES ($1, $2, $3, $4, $5)
	`, actorID, actorEmail, action, collection, entityID)
	if err != nil {
		slog.Warn("failed to record audit entry",
			"action", action,
			"collection", collection,
			"entity_id", entityID,
			"error", err,
		)
		return
	}
	slog.Debug("audit entry recorded",
		"action", action,
		"collection", collection,
		"entity_id", entityID,
	)
}

// RecentEntries returns the most recent audit entries, newest first,
// limited to the specified count.
func (s *AuditStore) RecentEntries(limit int) ([]models.AuditEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, actor_id, actor_email, action, collection, entity_id, created_at
		FROM audit_log
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.ActorID, &e.ActorEmail, &e.Action, &e.Collection, &e.EntityID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
