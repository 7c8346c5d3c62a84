// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site and
// the admin interface. Admin pages support full-page and HTMX partial
// rendering, automatically detecting the request type via the HX-Request
// header. Public pages render to a byte slice so handlers can store the
// result in the page cache.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"vetlaunch/internal/markdown"
	"vetlaunch/internal/middleware"
	"vetlaunch/internal/session"
)

//go:embed templates/admin/*.html
var adminFS embed.FS

//go:embed templates/public/*.html
var publicFS embed.FS

// PageData holds all data passed to admin templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active sidebar section (e.g., "dashboard", "files")
	Session   *session.Data  // Current user session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms and HTMX headers
	Data      map[string]any // Page-specific data
	Flashes   []Flash        // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// Renderer handles template parsing and execution.
type Renderer struct {
	admin   map[string]*template.Template
	public  map[string]*template.Template
	funcMap template.FuncMap
}

// standaloneTemplates lists admin templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login":      true,
	"2fa_setup":  true,
	"2fa_verify": true,
}

// publicStandalone lists public templates rendered without the public base
// layout. The splash page is a full-screen takeover with its own chrome.
var publicStandalone = map[string]bool{
	"splash": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystems. Each page template is paired with its base layout.
// When devMode is true, templates use CDN-hosted assets (TailwindCSS, HTMX,
// AlpineJS); when false, they reference compiled local static files.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		admin:  make(map[string]*template.Template),
		public: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "bg-gray-900 text-white"
				}
				return "text-gray-300 hover:bg-gray-700 hover:text-white"
			},
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			// isDev returns true when the app runs in development mode.
			// Used by templates to conditionally load CDN vs local assets.
			"isDev": func() bool {
				return devMode
			},
			// markdown renders a Markdown body field as HTML. Conversion
			// errors fall back to the escaped source text.
			"markdown": func(source string) template.HTML {
				out, err := markdown.ToHTML(source)
				if err != nil {
					return template.HTML(template.HTMLEscapeString(source))
				}
				return template.HTML(out)
			},
			// seq generates 1..n for countdown markup.
			"seq": func(n int) []int {
				out := make([]int, n)
				for i := range out {
					out[i] = i + 1
				}
				return out
			},
		},
	}

	if err := parseSet(adminFS, "templates/admin", r.funcMap, standaloneTemplates, r.admin); err != nil {
		return nil, err
	}
	if err := parseSet(publicFS, "templates/public", r.funcMap, publicStandalone, r.public); err != nil {
		return nil, err
	}

	return r, nil
}

// parseSet parses every page template in dir, pairing non-standalone pages
// with the set's base.html.
func parseSet(fsys embed.FS, dir string, funcs template.FuncMap, standalone map[string]bool, out map[string]*template.Template) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read embedded templates %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := filepath.Base(e.Name())
		if name == "base.html" {
			continue
		}

		tmplName := strings.TrimSuffix(name, ".html")

		var tmpl *template.Template
		var parseErr error
		if standalone[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(funcs).ParseFS(
				fsys, dir+"/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(funcs).ParseFS(
				fsys, dir+"/base.html", dir+"/"+name,
			)
		}
		if parseErr != nil {
			return fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		out[tmplName] = tmpl
	}
	return nil
}

// Page renders a full admin page or an HTMX partial, depending on the
// request headers. For HTMX requests, only the "content" block is sent.
// For full page loads, the entire base layout is rendered.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.admin[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	// Inject CSRF token from the cookie (set by CSRF middleware).
	data.CSRFToken = middleware.GetCSRFToken(r)

	// Inject session from context.
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// HTMX request: render only the content fragment.
	if isHTMX(r) {
		if err := executeTemplate(w, tmpl, "content", data); err != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
		}
		return
	}

	// Full page request: render the complete layout.
	execName := "base.html"
	// Standalone pages use their own root template (not base.html).
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	if err := executeTemplate(w, tmpl, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Partial renders one named block of an admin template, regardless of the
// HX-Request header. Used by the modal endpoints, which always return
// fragments.
func (rn *Renderer) Partial(w http.ResponseWriter, name, block string, data any) error {
	tmpl, ok := rn.admin[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return executeTemplate(w, tmpl, block, data)
}

// PublicHTML renders a public page to bytes so the handler can both serve
// and cache the result.
func (rn *Renderer) PublicHTML(name string, data any) ([]byte, error) {
	tmpl, ok := rn.public[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	execName := "base.html"
	if publicStandalone[name] {
		execName = name + ".html"
	}

	var buf bytes.Buffer
	if err := executeTemplate(&buf, tmpl, execName, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
