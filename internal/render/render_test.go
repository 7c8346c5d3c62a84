package render

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vetlaunch/internal/middleware"
	"vetlaunch/internal/models"
	"vetlaunch/internal/session"

	"github.com/google/uuid"
)

// helperSession returns a session.Data suitable for rendering admin templates.
func helperSession() *session.Data {
	return &session.Data{
		UserID:      uuid.New(),
		Email:       "test@vetlaunch.org",
		DisplayName: "Test User",
		Role:        "admin",
		TwoFADone:   true,
	}
}

// helperRequestWithContext builds an *http.Request whose context carries a
// session, which the embedded templates expect.
func helperRequestWithContext(method, target string, sess *session.Data) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if sess != nil {
		ctx := context.WithValue(req.Context(), middleware.SessionKey, sess)
		req = req.WithContext(ctx)
	}
	return req
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		devMode bool
	}{
		{"dev mode", true},
		{"prod mode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rn, err := New(tt.devMode)
			if err != nil {
				t.Fatalf("New(devMode=%v) returned error: %v", tt.devMode, err)
			}

			for _, name := range []string{"dashboard", "login", "2fa_setup", "2fa_verify", "collection", "files", "audit"} {
				if _, ok := rn.admin[name]; !ok {
					t.Errorf("expected admin template %q to be parsed", name)
				}
			}
			for _, name := range []string{"splash", "home", "team", "curriculum", "qualifications", "apply"} {
				if _, ok := rn.public[name]; !ok {
					t.Errorf("expected public template %q to be parsed", name)
				}
			}

			// base.html should NOT appear as a standalone template key.
			if _, ok := rn.admin["base"]; ok {
				t.Error("base.html should not be registered as a separate template")
			}
		})
	}
}

func TestNewDevMode(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New(true) error: %v", err)
	}

	w := httptest.NewRecorder()
	req := helperRequestWithContext(http.MethodGet, "/admin/login", nil)
	rn.Page(w, req, "login", &PageData{Title: "Login"})

	body := w.Body.String()
	if !strings.Contains(body, "cdn.tailwindcss.com") {
		t.Error("dev mode: expected CDN tailwindcss URL in rendered output")
	}
	if strings.Contains(body, "/static/css/admin.css") {
		t.Error("dev mode: should NOT contain local static asset path")
	}
}

func TestNewProdMode(t *testing.T) {
	rn, err := New(false)
	if err != nil {
		t.Fatalf("New(false) error: %v", err)
	}

	w := httptest.NewRecorder()
	req := helperRequestWithContext(http.MethodGet, "/admin/login", nil)
	rn.Page(w, req, "login", &PageData{Title: "Login"})

	body := w.Body.String()
	if strings.Contains(body, "cdn.tailwindcss.com") {
		t.Error("prod mode: should NOT contain CDN tailwindcss URL")
	}
	if !strings.Contains(body, "/static/css/admin.css") {
		t.Error("prod mode: expected local static asset path in rendered output")
	}
}

func TestPageRendering(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	sess := helperSession()
	req := helperRequestWithContext(http.MethodGet, "/admin", sess)
	w := httptest.NewRecorder()

	rn.Page(w, req, "dashboard", &PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Session: sess,
		Data:    map[string]any{"Counts": nil, "RecentAudit": nil},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()

	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("full page render should contain <!DOCTYPE html>")
	}
	if !strings.Contains(body, "VetLaunch") {
		t.Error("full page render should contain VetLaunch branding")
	}
	if !strings.Contains(body, "Welcome back") {
		t.Error("full page render should contain dashboard content")
	}
	ct := w.Header().Get("Content-Type")
	if ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "text/html; charset=utf-8")
	}
}

func TestHTMXPartialRendering(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	sess := helperSession()
	req := helperRequestWithContext(http.MethodGet, "/admin", sess)
	req.Header.Set("HX-Request", "true")

	w := httptest.NewRecorder()
	rn.Page(w, req, "dashboard", &PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Session: sess,
		Data:    map[string]any{"Counts": nil, "RecentAudit": nil},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()

	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("HTMX partial should NOT contain <!DOCTYPE html>")
	}
	if strings.Contains(body, "<head>") {
		t.Error("HTMX partial should NOT contain <head> tag")
	}
	if !strings.Contains(body, "Welcome back") {
		t.Error("HTMX partial should contain dashboard content block")
	}
}

func TestStandaloneTemplates(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	standaloneNames := []struct {
		name          string
		expectedTitle string
	}{
		{"login", "Sign In"},
		{"2fa_setup", "Two-Factor"},
		{"2fa_verify", "Two-Factor"},
	}

	for _, tt := range standaloneNames {
		t.Run(tt.name, func(t *testing.T) {
			req := helperRequestWithContext(http.MethodGet, "/admin/"+tt.name, nil)
			w := httptest.NewRecorder()

			rn.Page(w, req, tt.name, &PageData{
				Title: tt.name,
				Data:  map[string]any{},
			})

			if w.Code != http.StatusOK {
				t.Fatalf("template %q: expected 200, got %d", tt.name, w.Code)
			}

			body := w.Body.String()

			if !strings.Contains(body, "<!DOCTYPE html>") {
				t.Errorf("template %q: expected standalone HTML with <!DOCTYPE html>", tt.name)
			}
			if !strings.Contains(body, tt.expectedTitle) {
				t.Errorf("template %q: expected %q in output", tt.name, tt.expectedTitle)
			}
			// Standalone templates should NOT contain the base layout sidebar.
			if strings.Contains(body, "lg:flex-shrink-0") {
				t.Errorf("template %q: should NOT contain base layout sidebar", tt.name)
			}
		})
	}
}

func TestMissingTemplate(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	req := helperRequestWithContext(http.MethodGet, "/admin/nonexistent", nil)
	w := httptest.NewRecorder()

	rn.Page(w, req, "nonexistent_template", &PageData{Title: "Not Found"})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not found") {
		t.Error("error response should mention template not found")
	}
}

// CSRF tokens come from the cookie the CSRF middleware sets; Page injects
// them into the rendered output for hx-headers and hidden form fields.
func TestPageDataCSRFInjection(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	token := "0123456789abcdef0123456789abcdef"
	req := helperRequestWithContext(http.MethodGet, "/admin/login", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: token})

	w := httptest.NewRecorder()
	data := &PageData{Title: "Login"}
	rn.Page(w, req, "login", data)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), token) {
		t.Error("rendered output should contain the CSRF token from the cookie")
	}
	if data.CSRFToken != token {
		t.Errorf("PageData.CSRFToken: got %q, want %q", data.CSRFToken, token)
	}
}

func TestSessionInjectionFromContext(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	sess := helperSession()
	req := helperRequestWithContext(http.MethodGet, "/admin", sess)
	w := httptest.NewRecorder()

	// Pass PageData WITHOUT setting Session — it should be injected from context.
	data := &PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data:    map[string]any{"Counts": nil, "RecentAudit": nil},
	}
	rn.Page(w, req, "dashboard", data)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", w.Code, w.Body.String())
	}

	if data.Session == nil {
		t.Error("expected Session to be injected from context")
	}
	if !strings.Contains(w.Body.String(), "Test User") {
		t.Error("rendered output should contain session DisplayName")
	}
}

func TestPublicHTML(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	html, err := rn.PublicHTML("curriculum", map[string]any{
		"Title":  "Curriculum",
		"Active": "curriculum",
		"Weeks": []models.CurriculumItem{
			{WeekNumber: 1, Title: "Mission Brief", Description: "Orientation **week**."},
		},
	})
	if err != nil {
		t.Fatalf("PublicHTML: %v", err)
	}

	body := string(html)
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("public page should render the full layout")
	}
	if !strings.Contains(body, "Mission Brief") {
		t.Error("public page should contain the curriculum item")
	}
	// The markdown helper converts the description body.
	if !strings.Contains(body, "<strong>week</strong>") {
		t.Error("expected Markdown description rendered to HTML")
	}
}

func TestPublicHTMLSplashStandalone(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	html, err := rn.PublicHTML("splash", map[string]any{
		"Config": models.SplashConfig{
			Headline:         "Your Next Mission Starts Here",
			CountdownSeconds: 8,
			RedirectPath:     "/home",
			SkipLabel:        "Enter Site",
		},
		"Remaining": 8,
		"Paused":    false,
	})
	if err != nil {
		t.Fatalf("PublicHTML: %v", err)
	}

	body := string(html)
	if !strings.Contains(body, "Your Next Mission Starts Here") {
		t.Error("splash should contain the configured headline")
	}
	// Splash is a full-screen takeover without the site nav.
	if strings.Contains(body, "Curriculum</a>") {
		t.Error("splash should not render the public nav")
	}
}

func TestPublicHTMLMissingTemplate(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if _, err := rn.PublicHTML("nope", nil); err == nil {
		t.Error("expected error for unknown public template")
	}
}

func TestIsHTMXHelper(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected bool
	}{
		{"no header", "", false},
		{"header true", "true", true},
		{"header false", "false", false},
		{"header random", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("HX-Request", tt.header)
			}
			if got := isHTMX(req); got != tt.expected {
				t.Errorf("isHTMX: got %v, want %v", got, tt.expected)
			}
		})
	}
}
