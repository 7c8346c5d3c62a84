// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package forms

// MaxDepth bounds the history stack. A long edit session drops its oldest
// snapshots instead of growing without limit.
const MaxDepth = 100

// History is a linear stack of form snapshots with a cursor. Edits push new
// snapshots (truncating any redo tail first); Undo and Redo move the cursor
// without mutating the stack. Snapshots before and after the cursor stay
// intact until an edit truncates them.
type History struct {
	EntityID  string     `json:"entity_id"` // which record the modal is editing; "" for a new record
	Snapshots []Snapshot `json:"snapshots"`
	Cursor    int        `json:"cursor"`
}

// NewHistory starts a history at the seeded snapshot for the given entity.
func NewHistory(entityID string, seed Snapshot) *History {
	return &History{
		EntityID:  entityID,
		Snapshots: []Snapshot{seed.clone()},
		Cursor:    0,
	}
}

// Current returns the snapshot at the cursor.
func (h *History) Current() Snapshot {
	return h.Snapshots[h.Cursor]
}

// Push records a new snapshot after a field change. Any snapshots past the
// cursor (the redo tail) are discarded first. When the stack is at MaxDepth
// the oldest snapshot is dropped.
func (h *History) Push(snap Snapshot) {
	h.Snapshots = append(h.Snapshots[:h.Cursor+1], snap.clone())
	if len(h.Snapshots) > MaxDepth {
		h.Snapshots = h.Snapshots[len(h.Snapshots)-MaxDepth:]
	}
	h.Cursor = len(h.Snapshots) - 1
}

// SetField pushes a new snapshot equal to the current one with a single
// field changed. A write that does not change the value is a no-op.
func (h *History) SetField(name, value string) {
	current := h.Current()
	if current[name] == value {
		return
	}
	next := current.clone()
	next[name] = value
	h.Push(next)
}

// Undo moves the cursor one snapshot back. Returns false at the start of
// history.
func (h *History) Undo() bool {
	if h.Cursor == 0 {
		return false
	}
	h.Cursor--
	return true
}

// Redo moves the cursor one snapshot forward. Returns false at the end of
// history.
func (h *History) Redo() bool {
	if h.Cursor >= len(h.Snapshots)-1 {
		return false
	}
	h.Cursor++
	return true
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return h.Cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return h.Cursor < len(h.Snapshots)-1 }
