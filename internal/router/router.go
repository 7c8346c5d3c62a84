// Package router sets up all HTTP routes and middleware chains for the
// VetLaunch site. It organizes routes into public, API, and admin groups
// with appropriate middleware stacks.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vetlaunch/internal/handlers"
	"vetlaunch/internal/middleware"
	"vetlaunch/internal/session"
	"vetlaunch/web"
)

// notifyRateLimit bounds signup submissions per client IP. The form is
// public and unauthenticated, so this is the only brake on abuse.
const (
	notifyRateLimit  = 5
	notifyRateWindow = 1 * time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, api *handlers.API, secureCookies bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request. The session loads on
	// public routes too: admins browsing the site get uncached renders and
	// a paused splash countdown.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Embedded static assets (compiled CSS, vendored JS).
	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Public JSON API.
	r.Route("/api", func(r chi.Router) {
		notifyLimiter := middleware.NewRateLimiter(notifyRateLimit, notifyRateWindow)
		r.With(notifyLimiter.Middleware).Post("/notify-signup", api.NotifySignup)
		r.Get("/download", api.Download)
	})

	// Admin routes — require authentication and CSRF protection.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NewCSRF(secureCookies))

		// Auth pages — accessible without a session.
		r.Get("/login", auth.LoginPage)
		r.Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// 2FA — requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", auth.TwoFASetupPage)
			r.Post("/2fa/setup", auth.TwoFAVerifySubmit)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/", admin.Dashboard)

			// The audit log and media manager are admin-only; editors
			// keep the content collections.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/audit", admin.AuditLog)
				r.Get("/files", admin.FilesPage)

				// Media file manager JSON API.
				r.Route("/api/files", func(r chi.Router) {
					r.Get("/", admin.FilesList)
					r.Post("/", admin.FilesUpload)
					r.Delete("/", admin.FilesDelete)
					r.Put("/", admin.FilesRename)
					r.Post("/thumbnail", admin.FilesRegenerateThumb)
				})
			})

			// Dynamic per-collection CRUD and edit modal.
			r.Route("/collections/{collection}", func(r chi.Router) {
				r.Get("/", admin.CollectionList)
				r.Post("/{id}/toggle", admin.ToggleVisibility)
				r.Delete("/{id}", admin.DeleteRecord)

				r.Get("/modal", admin.ModalOpen)
				r.Post("/modal/change", admin.ModalChange)
				r.Post("/modal/undo", admin.ModalUndo)
				r.Post("/modal/redo", admin.ModalRedo)
				r.Post("/modal/cancel", admin.ModalCancel)
				r.Post("/modal/submit", admin.ModalSubmit)
			})
		})
	})

	// Public pages.
	r.Get("/", public.Splash)
	r.Get("/home", public.Home)
	r.Get("/team", public.Team)
	r.Get("/curriculum", public.Curriculum)
	r.Get("/qualifications", public.Qualifications)
	r.Get("/apply", public.Apply)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
