package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry records one admin mutation against a content collection:
// who did what, to which record, and when.
type AuditEntry struct {
	ID         int64
	ActorID    uuid.UUID
	ActorEmail string
	Action     string // "create", "update", "delete"
	Collection string
	EntityID   uuid.UUID
	CreatedAt  time.Time
}
