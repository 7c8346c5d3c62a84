// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the VetLaunch site.
// Handlers are grouped by concern (public, admin, auth, API) and receive
// their dependencies through the handler struct.
package handlers

import (
	"log/slog"
	"net/http"

	"vetlaunch/internal/cache"
	"vetlaunch/internal/forms"
	"vetlaunch/internal/render"
	"vetlaunch/internal/session"
	"vetlaunch/internal/storage"
	"vetlaunch/internal/store"
)

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer      *render.Renderer
	sessions      *session.Store
	registry      *store.Registry
	userStore     *store.UserStore
	auditStore    *store.AuditStore
	editSessions  *forms.SessionStore
	storageClient *storage.Client
	pageCache     *cache.PageCache
}

// NewAdmin creates a new Admin handler group with the given dependencies.
// storageClient may be nil if S3 is not configured; the file manager then
// reports itself unavailable.
func NewAdmin(renderer *render.Renderer, sessions *session.Store, registry *store.Registry, userStore *store.UserStore, auditStore *store.AuditStore, editSessions *forms.SessionStore, storageClient *storage.Client, pageCache *cache.PageCache) *Admin {
	return &Admin{
		renderer:      renderer,
		sessions:      sessions,
		registry:      registry,
		userStore:     userStore,
		auditStore:    auditStore,
		editSessions:  editSessions,
		storageClient: storageClient,
		pageCache:     pageCache,
	}
}

// Dashboard renders the admin dashboard with per-collection record counts
// and the most recent audit entries.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	type countCard struct {
		Name  string
		Label string
		Count int
	}

	var counts []countCard
	for _, name := range a.registry.CollectionNames() {
		res := a.registry.Resource(name)
		n, err := res.Count()
		if err != nil {
			slog.Error("collection count failed", "collection", name, "error", err)
		}
		counts = append(counts, countCard{Name: name, Label: collectionLabel(name), Count: n})
	}

	recent, err := a.auditStore.RecentEntries(10)
	if err != nil {
		slog.Error("audit list failed", "error", err)
	}

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"Counts":      counts,
			"RecentAudit": recent,
		},
	})
}

// AuditLog renders the full audit log page.
func (a *Admin) AuditLog(w http.ResponseWriter, r *http.Request) {
	entries, err := a.auditStore.RecentEntries(200)
	if err != nil {
		slog.Error("audit list failed", "error", err)
	}

	a.renderer.Page(w, r, "audit", &render.PageData{
		Title:   "Audit Log",
		Section: "audit",
		Data:    map[string]any{"Entries": entries},
	})
}

// FilesPage renders the media file manager page. The page itself is static;
// the file grid loads through the JSON API.
func (a *Admin) FilesPage(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "files", &render.PageData{
		Title:   "Files",
		Section: "files",
		Data:    map[string]any{"StorageAvailable": a.storageClient != nil},
	})
}
