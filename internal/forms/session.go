// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// session.go keeps edit-modal histories in Valkey so undo/redo work across
// stateless HTTP requests. One admin session holds at most one history per
// collection; opening the modal for a different entity replaces it.
package forms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// keyPrefix namespaces edit-session keys in Valkey.
	keyPrefix = "editform:"

	// DefaultTTL is how long an abandoned edit session survives.
	DefaultTTL = 2 * time.Hour
)

// SessionStore persists modal edit histories in Valkey.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates an edit-session store backed by the given client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client, ttl: DefaultTTL}
}

// key scopes a history to one admin session and one collection.
func key(sessionID, collection string) string {
	return keyPrefix + sessionID + ":" + collection
}

// Open starts a fresh history for the given entity, replacing any history
// the session had for this collection. History always resets when the modal
// opens, even for the same entity — matching a closed-and-reopened modal.
func (s *SessionStore) Open(ctx context.Context, sessionID, collection, entityID string, seed Snapshot) (*History, error) {
	h := NewHistory(entityID, seed)
	if err := s.save(ctx, sessionID, collection, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Get loads the current history, or nil when the session has no open modal
// for this collection.
func (s *SessionStore) Get(ctx context.Context, sessionID, collection string) (*History, error) {
	payload, err := s.client.Get(ctx, key(sessionID, collection)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("edit session get: %w", err)
	}

	var h History
	if err := json.Unmarshal(payload, &h); err != nil {
		return nil, fmt.Errorf("edit session decode: %w", err)
	}
	return &h, nil
}

// Save persists a mutated history back to Valkey, resetting the TTL.
func (s *SessionStore) Save(ctx context.Context, sessionID, collection string, h *History) error {
	return s.save(ctx, sessionID, collection, h)
}

// Close discards the history after a successful save or an explicit cancel.
func (s *SessionStore) Close(ctx context.Context, sessionID, collection string) error {
	if err := s.client.Del(ctx, key(sessionID, collection)).Err(); err != nil {
		return fmt.Errorf("edit session close: %w", err)
	}
	return nil
}

func (s *SessionStore) save(ctx context.Context, sessionID, collection string, h *History) error {
	payload, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("edit session encode: %w", err)
	}
	if err := s.client.Set(ctx, key(sessionID, collection), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("edit session store: %w", err)
	}
	return nil
}
