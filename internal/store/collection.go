// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access for all VetLaunch content.
// Every content type is served by one generic Collection bound to a named
// collection in the documents table; the Registry hands out one memoized
// instance per type.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"vetlaunch/internal/models"
)

// Collection is a generic repository over one named collection of documents.
// T is the payload type stored in the jsonb document body.
type Collection[T any] struct {
	db   *sql.DB
	name string
}

// NewCollection creates a Collection bound to the given collection name.
func NewCollection[T any](db *sql.DB, name string) *Collection[T] {
	return &Collection[T]{db: db, name: name}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// GetAll returns every record in the collection regardless of visibility,
// in insertion order (created_at ascending). Admin listings rely on hidden
// records being included here.
func (c *Collection[T]) GetAll() ([]models.Record[T], error) {
	docs, err := c.AllDocs()
	if err != nil {
		return nil, err
	}
	return decodeDocs[T](docs)
}

// GetVisible returns only records with is_visible = true, sorted by
// sort_order ascending (ties broken by creation time). A limit > 0 caps the
// result; limit <= 0 returns all visible records.
func (c *Collection[T]) GetVisible(limit int) ([]models.Record[T], error) {
	docs, err := c.VisibleDocs(limit)
	if err != nil {
		return nil, err
	}
	return decodeDocs[T](docs)
}

// Create inserts a new record with the given payload. The store assigns the
// id and timestamps; sort order defaults to the current collection size plus
// one, and the record starts visible.
func (c *Collection[T]) Create(payload T) (*models.Record[T], error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", c.name, err)
	}
	doc, err := c.CreateDoc(raw)
	if err != nil {
		return nil, err
	}
	return decodeDoc[T](doc)
}

// Update merges the patch into an existing record and bumps updated_at.
// Payload keys absent from the patch are preserved. Returns the updated
// record, or nil if no record with that id exists. Callers re-fetch the
// collection afterwards rather than trusting the return value.
func (c *Collection[T]) Update(id uuid.UUID, patch models.Patch) (*models.Record[T], error) {
	doc, err := c.UpdateDoc(id, patch)
	if err != nil || doc == nil {
		return nil, err
	}
	return decodeDoc[T](doc)
}

// Delete removes a record by id. Deleting an id that does not exist is a
// no-op, not an error.
func (c *Collection[T]) Delete(id uuid.UUID) error {
	return c.DeleteDoc(id)
}

// Count returns the number of records in the collection.
func (c *Collection[T]) Count() (int, error) {
	var count int
	err := c.db.QueryRow(`SELECT COUNT(*) FROM documents WHERE collection = $1`, c.name).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.name, err)
	}
	return count, nil
}

// --- Untyped document access ---
//
// The admin panel handles collections dynamically by name, so Collection
// also satisfies the Resource interface with raw-JSON variants of the same
// operations.

// AllDocs is the untyped form of GetAll.
func (c *Collection[T]) AllDocs() ([]models.Document, error) {
	rows, err := c.db.Query(`
		SELECT id, sort_order, is_visible, payload, created_at, updated_at
		FROM documents
		WHERE collection = $1
		ORDER BY created_at ASC
	`, c.name)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}
	defer rows.Close()
	return scanDocs(rows)
}

// VisibleDocs is the untyped form of GetVisible.
func (c *Collection[T]) VisibleDocs(limit int) ([]models.Document, error) {
	query := `
		SELECT id, sort_order, is_visible, payload, created_at, updated_at
		FROM documents
		WHERE collection = $1 AND is_visible
		ORDER BY sort_order ASC, created_at ASC
	`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = c.db.Query(query+` LIMIT $2`, c.name, limit)
	} else {
		rows, err = c.db.Query(query, c.name)
	}
	if err != nil {
		return nil, fmt.Errorf("list visible %s: %w", c.name, err)
	}
	defer rows.Close()
	return scanDocs(rows)
}

// FindDoc returns one record by id, or nil if the id is not in this
// collection.
func (c *Collection[T]) FindDoc(id uuid.UUID) (*models.Document, error) {
	doc := &models.Document{}
	err := c.db.QueryRow(`
		SELECT id, sort_order, is_visible, payload, created_at, updated_at
		FROM documents
		WHERE id = $1 AND collection = $2
	`, id, c.name).Scan(
		&doc.ID, &doc.SortOrder, &doc.IsVisible, (*[]byte)(&doc.Payload),
		&doc.CreatedAt, &doc.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.name, err)
	}
	return doc, nil
}

// CreateDoc is the untyped form of Create. The payload must be a valid JSON
// object.
func (c *Collection[T]) CreateDoc(payload json.RawMessage) (*models.Document, error) {
	doc := &models.Document{}
	err := c.db.QueryRow(`
		INSERT INTO documents (collection, sort_order, is_visible, payload)
		VALUES ($1, (SELECT COUNT(*) + 1 FROM documents WHERE collection = $1), TRUE, $2)
		RETURNING id, sort_order, is_visible, payload, created_at, updated_at
	`, c.name, []byte(payload)).Scan(
		&doc.ID, &doc.SortOrder, &doc.IsVisible, (*[]byte)(&doc.Payload),
		&doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", c.name, err)
	}
	return doc, nil
}

// UpdateDoc is the untyped form of Update. Returns nil if the id is not in
// this collection.
func (c *Collection[T]) UpdateDoc(id uuid.UUID, patch models.Patch) (*models.Document, error) {
	fields := patch.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode %s patch: %w", c.name, err)
	}

	doc := &models.Document{}
	err = c.db.QueryRow(`
		UPDATE documents SET
			payload    = payload || $3::jsonb,
			sort_order = COALESCE($4, sort_order),
			is_visible = COALESCE($5, is_visible),
			updated_at = NOW()
		WHERE id = $1 AND collection = $2
		RETURNING id, sort_order, is_visible, payload, created_at, updated_at
	`, id, c.name, raw, patch.SortOrder, patch.IsVisible).Scan(
		&doc.ID, &doc.SortOrder, &doc.IsVisible, (*[]byte)(&doc.Payload),
		&doc.CreatedAt, &doc.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", c.name, err)
	}
	return doc, nil
}

// DeleteDoc is the untyped form of Delete.
func (c *Collection[T]) DeleteDoc(id uuid.UUID) error {
	_, err := c.db.Exec(`DELETE FROM documents WHERE id = $1 AND collection = $2`, id, c.name)
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.name, err)
	}
	return nil
}

// scanDocs reads all rows into documents.
func scanDocs(rows *sql.Rows) ([]models.Document, error) {
	var docs []models.Document
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(
			&d.ID, &d.SortOrder, &d.IsVisible, (*[]byte)(&d.Payload),
			&d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// decodeDoc unmarshals a document payload into a typed record.
func decodeDoc[T any](doc *models.Document) (*models.Record[T], error) {
	rec := &models.Record[T]{
		ID:        doc.ID,
		SortOrder: doc.SortOrder,
		IsVisible: doc.IsVisible,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
	if err := json.Unmarshal(doc.Payload, &rec.Payload); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", doc.ID, err)
	}
	return rec, nil
}

// decodeDocs unmarshals a slice of documents into typed records.
func decodeDocs[T any](docs []models.Document) ([]models.Record[T], error) {
	var recs []models.Record[T]
	for i := range docs {
		rec, err := decodeDoc[T](&docs[i])
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, nil
}
