// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures stored in the content
// collections and provides the core types used throughout the application.
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Record wraps a content payload with the base fields every document in a
// collection shares: identity, display ordering, visibility, and timestamps.
type Record[T any] struct {
	ID        uuid.UUID `json:"id"`
	SortOrder int       `json:"order"`
	IsVisible bool      `json:"is_visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Payload   T         `json:"payload"`
}

// Document is the untyped form of a record, used by the admin panel where
// collections are handled dynamically by name. Payload holds the raw JSON
// document body.
type Document struct {
	ID        uuid.UUID       `json:"id"`
	SortOrder int             `json:"order"`
	IsVisible bool            `json:"is_visible"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Payload   json.RawMessage `json:"payload"`
}

// Patch describes a partial update to a record. Fields holds payload keys to
// merge into the stored document; keys absent from Fields are preserved.
// SortOrder and IsVisible are applied only when non-nil.
type Patch struct {
	Fields    map[string]any
	SortOrder *int
	IsVisible *bool
}
