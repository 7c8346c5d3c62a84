// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package forms models the admin edit modal: a dynamic form described by a
// field list, with an undo/redo history of every edit made while the modal
// is open. The modal itself is rendered by templates; this package owns the
// state.
package forms

// FieldKind selects the input widget and value coercion for a field.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindNumber   FieldKind = "number"
	KindBool     FieldKind = "bool"
	KindImageURL FieldKind = "image_url"
)

// Field describes one input in the edit modal.
type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	Default  string    `json:"default,omitempty"`
}

// Snapshot is one complete form state: field name → raw string value.
// Snapshots are immutable once pushed onto the history.
type Snapshot map[string]string

// clone returns an independent copy of the snapshot.
func (s Snapshot) clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Seed builds the initial snapshot for a modal: field defaults overlaid with
// any supplied initial data (the record being edited, or nothing for a new
// record). Keys in initial that have no matching field are ignored.
func Seed(fields []Field, initial map[string]string) Snapshot {
	snap := make(Snapshot, len(fields))
	for _, f := range fields {
		snap[f.Name] = f.Default
		if v, ok := initial[f.Name]; ok {
			snap[f.Name] = v
		}
	}
	return snap
}

// MissingRequired returns the names of required fields that are empty in
// the snapshot, in field order.
func MissingRequired(fields []Field, snap Snapshot) []string {
	var missing []string
	for _, f := range fields {
		if f.Required && snap[f.Name] == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}
