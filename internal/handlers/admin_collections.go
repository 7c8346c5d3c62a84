// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// admin_collections.go implements the dynamic admin CRUD surface. Every
// collection goes through the same handlers; the schema table in
// admin_schema.go supplies the per-collection field descriptors.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vetlaunch/internal/forms"
	"vetlaunch/internal/middleware"
	"vetlaunch/internal/models"
	"vetlaunch/internal/render"
	"vetlaunch/internal/session"
	"vetlaunch/internal/store"
)

// modalView is the template data for the edit-modal fragment.
type modalView struct {
	Collection string
	EntityID   string
	Fields     []forms.Field
	Snapshot   forms.Snapshot
	CanUndo    bool
	CanRedo    bool
	Error      string
}

// resource resolves the {collection} URL parameter to its store resource
// and admin schema. Unknown collections 404.
func (a *Admin) resource(w http.ResponseWriter, r *http.Request) (store.Resource, collectionSchema, bool) {
	name := chi.URLParam(r, "collection")
	res := a.registry.Resource(name)
	schema, ok := schemas[name]
	if res == nil || !ok {
		http.NotFound(w, r)
		return nil, collectionSchema{}, false
	}
	return res, schema, true
}

// CollectionList renders the admin list page for one collection. Unlike the
// public queries, the listing includes hidden records.
func (a *Admin) CollectionList(w http.ResponseWriter, r *http.Request) {
	res, schema, ok := a.resource(w, r)
	if !ok {
		return
	}
	a.renderCollectionPage(w, r, res, schema)
}

func (a *Admin) renderCollectionPage(w http.ResponseWriter, r *http.Request, res store.Resource, schema collectionSchema) {
	docs, err := res.AllDocs()
	if err != nil {
		slog.Error("collection list failed", "collection", res.Name(), "error", err)
	}

	type row struct {
		ID        uuid.UUID
		SortOrder int
		IsVisible bool
		Cells     []string
	}

	columns := make([]string, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		columns = append(columns, fieldLabel(schema.Fields, col))
	}

	rows := make([]row, 0, len(docs))
	for _, doc := range docs {
		snap, err := snapshotFromPayload(schema.Fields, doc.Payload)
		if err != nil {
			slog.Warn("undecodable payload", "collection", res.Name(), "id", doc.ID, "error", err)
			continue
		}
		cells := make([]string, 0, len(schema.Columns))
		for _, col := range schema.Columns {
			cells = append(cells, snap[col])
		}
		rows = append(rows, row{ID: doc.ID, SortOrder: doc.SortOrder, IsVisible: doc.IsVisible, Cells: cells})
	}

	a.renderer.Page(w, r, "collection", &render.PageData{
		Title:   schema.Label,
		Section: res.Name(),
		Data: map[string]any{
			"Collection": res.Name(),
			"Label":      schema.Label,
			"Columns":    columns,
			"Rows":       rows,
		},
	})
}

// ToggleVisibility flips is_visible on one record and re-renders the list.
func (a *Admin) ToggleVisibility(w http.ResponseWriter, r *http.Request) {
	res, schema, ok := a.resource(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	doc, err := res.FindDoc(id)
	if err != nil {
		slog.Error("toggle lookup failed", "collection", res.Name(), "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if doc == nil {
		http.NotFound(w, r)
		return
	}

	visible := !doc.IsVisible
	if _, err := res.UpdateDoc(id, models.Patch{IsVisible: &visible}); err != nil {
		slog.Error("toggle failed", "collection", res.Name(), "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.recordChange(r, "toggle_visibility", res.Name(), id)
	a.pageCache.InvalidateCollection(r.Context(), res.Name())
	a.renderCollectionPage(w, r, res, schema)
}

// DeleteRecord removes one record and re-renders the list. Deleting an
// already-deleted record succeeds quietly.
func (a *Admin) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	res, schema, ok := a.resource(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	if err := res.DeleteDoc(id); err != nil {
		slog.Error("delete failed", "collection", res.Name(), "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.recordChange(r, "delete", res.Name(), id)
	a.pageCache.InvalidateCollection(r.Context(), res.Name())
	a.renderCollectionPage(w, r, res, schema)
}

// --- Edit modal ---
//
// The modal keeps its form state server-side in Valkey so undo/redo work
// across requests. Opening always starts a fresh history, even for the same
// record: a closed-and-reopened modal forgets its past edits.

// ModalOpen seeds a new edit history and renders the modal. With an ?id=
// query parameter it edits that record; without one it creates a new record.
func (a *Admin) ModalOpen(w http.ResponseWriter, r *http.Request) {
	res, schema, ok := a.resource(w, r)
	if !ok {
		return
	}

	entityID := ""
	var snap forms.Snapshot
	if idStr := r.URL.Query().Get("id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}
		doc, err := res.FindDoc(id)
		if err != nil {
			slog.Error("modal lookup failed", "collection", res.Name(), "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if doc == nil {
			http.NotFound(w, r)
			return
		}
		snap, err = snapshotFromPayload(schema.Fields, doc.Payload)
		if err != nil {
			slog.Error("modal decode failed", "collection", res.Name(), "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		entityID = id.String()
	} else {
		snap = forms.Seed(schema.Fields, nil)
	}

	h, err := a.editSessions.Open(r.Context(), session.ID(r), res.Name(), entityID, snap)
	if err != nil {
		slog.Error("edit session open failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderModal(w, res.Name(), schema, h, "")
}

// ModalChange records one field edit, pushing a snapshot onto the history.
func (a *Admin) ModalChange(w http.ResponseWriter, r *http.Request) {
	res, schema, ok := a.resource(w, r)
	if !ok {
		return
	}
	h, ok := a.openHistory(w, r, res.Name())
	if !ok {
		return
	}

	field := r.URL.Query().Get("field")
	if !hasField(schema.Fields, field) {
		http.Error(w, "Unknown field", http.StatusBadRequest)
		return
	}

	value := r.FormValue(field)
	if kindOf(schema.Fields, field) == forms.KindBool && value == "" {
		value = "false" // unchecked checkboxes post nothing
	}
	h.SetField(field, value)

	if err := a.editSessions.Save(r.Context(), session.ID(r), res.Name(), h); err != nil {
		slog.Error("edit session save failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderModal(w, res.Name(), schema, h, "")
}

// ModalUndo steps the history cursor back one snapshot.
func (a *Admin) ModalUndo(w http.ResponseWriter, r *http.Request) {
	a.modalStep(w, r, func(h *forms.History) { h.Undo() })
}

// ModalRedo steps the history cursor forward one snapshot.
func (a *Admin) ModalRedo(w http.ResponseWriter, r *http.Request) {
	a.modalStep(w, r, func(h *forms.History) { h.Redo() })
}

func (a *Admin) modalStep(w http.ResponseWriter, r *http.Request, step func(*forms.History)) {
	res, schema, ok := a.resource(w, r)
	if !ok {
		return
	}
	h, ok := a.openHistory(w, r, res.Name())
	if !ok {
		return
	}

	step(h)

	if err := a.editSessions.Save(r.Context(), session.ID(r), res.Name(), h); err != nil {
		slog.Error("edit session save failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderModal(w, res.Name(), schema, h, "")
}

// ModalCancel discards the edit session and clears the modal.
func (a *Admin) ModalCancel(w http.ResponseWriter, r *http.Request) {
	res, _, ok := a.resource(w, r)
	if !ok {
		return
	}
	if err := a.editSessions.Close(r.Context(), session.ID(r), res.Name()); err != nil {
		slog.Warn("edit session close failed", "error", err)
	}
	w.WriteHeader(http.StatusOK) // empty body swap removes the modal
}

// ModalSubmit validates the current snapshot and writes it through the
// collection. On success the edit session closes and the list re-renders;
// on failure the modal stays open with a visible error message.
func (a *Admin) ModalSubmit(w http.ResponseWriter, r *http.Request) {
	res, schema, ok := a.resource(w, r)
	if !ok {
		return
	}
	h, ok := a.openHistory(w, r, res.Name())
	if !ok {
		return
	}

	// The submitted form is the authoritative final state; fold any direct
	// edits into the history before saving.
	for _, f := range schema.Fields {
		value := r.FormValue(f.Name)
		if f.Kind == forms.KindBool && value == "" {
			value = "false"
		}
		h.SetField(f.Name, value)
	}
	snap := h.Current()

	if missing := forms.MissingRequired(schema.Fields, snap); len(missing) > 0 {
		labels := make([]string, 0, len(missing))
		for _, name := range missing {
			labels = append(labels, fieldLabel(schema.Fields, name))
		}
		a.renderModal(w, res.Name(), schema, h, "Required: "+strings.Join(labels, ", "))
		return
	}

	if h.EntityID == "" {
		payload, err := payloadFromSnapshot(schema.Fields, snap)
		if err != nil {
			a.renderModal(w, res.Name(), schema, h, err.Error())
			return
		}
		doc, err := res.CreateDoc(payload)
		if err != nil {
			slog.Error("create failed", "collection", res.Name(), "error", err)
			a.renderModal(w, res.Name(), schema, h, "Save failed. Please try again.")
			return
		}
		a.recordChange(r, "create", res.Name(), doc.ID)
	} else {
		id, err := uuid.Parse(h.EntityID)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}
		// The patch keeps cleared fields so the stored payload drops them.
		patch, err := patchFromSnapshot(schema.Fields, snap)
		if err != nil {
			a.renderModal(w, res.Name(), schema, h, err.Error())
			return
		}
		var fields map[string]any
		if err := json.Unmarshal(patch, &fields); err != nil {
			slog.Error("patch decode failed", "error", err)
			a.renderModal(w, res.Name(), schema, h, "Save failed. Please try again.")
			return
		}
		doc, err := res.UpdateDoc(id, models.Patch{Fields: fields})
		if err != nil || doc == nil {
			slog.Error("update failed", "collection", res.Name(), "id", h.EntityID, "error", err)
			a.renderModal(w, res.Name(), schema, h, "Save failed. Please try again.")
			return
		}
		a.recordChange(r, "update", res.Name(), doc.ID)
	}

	if err := a.editSessions.Close(r.Context(), session.ID(r), res.Name()); err != nil {
		slog.Warn("edit session close failed", "error", err)
	}
	a.pageCache.InvalidateCollection(r.Context(), res.Name())

	// Reload the full collection rather than patching the table in place.
	a.renderCollectionPage(w, r, res, schema)
}

// openHistory loads the edit history for this session and collection, or
// 409s when no modal is open (e.g. the edit session expired).
func (a *Admin) openHistory(w http.ResponseWriter, r *http.Request, collection string) (*forms.History, bool) {
	h, err := a.editSessions.Get(r.Context(), session.ID(r), collection)
	if err != nil {
		slog.Error("edit session get failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	if h == nil {
		http.Error(w, "No edit session. Reopen the form.", http.StatusConflict)
		return nil, false
	}
	return h, true
}

func (a *Admin) renderModal(w http.ResponseWriter, collection string, schema collectionSchema, h *forms.History, errMsg string) {
	view := modalView{
		Collection: collection,
		EntityID:   h.EntityID,
		Fields:     schema.Fields,
		Snapshot:   h.Current(),
		CanUndo:    h.CanUndo(),
		CanRedo:    h.CanRedo(),
		Error:      errMsg,
	}
	if err := a.renderer.Partial(w, "collection", "modal", view); err != nil {
		slog.Error("modal render failed", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// recordChange writes a best-effort audit entry for an admin mutation.
func (a *Admin) recordChange(r *http.Request, action, collection string, entityID uuid.UUID) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		return
	}
	a.auditStore.Record(sess.UserID, sess.Email, action, collection, entityID)
}

func fieldLabel(fields []forms.Field, name string) string {
	for _, f := range fields {
		if f.Name == name {
			return f.Label
		}
	}
	return name
}

func hasField(fields []forms.Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func kindOf(fields []forms.Field, name string) forms.FieldKind {
	for _, f := range fields {
		if f.Name == name {
			return f.Kind
		}
	}
	return forms.KindText
}
