// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// api.go holds the small public JSON API: the notify-signup proxy and the
// download proxy. Both sit in front of external services so the browser
// never talks to them (or carries their credentials) directly.

package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"vetlaunch/internal/notify"
)

// downloadTimeout bounds how long the download proxy waits on the upstream.
const downloadTimeout = 60 * time.Second

// API groups the public JSON endpoints.
type API struct {
	notifier *notify.Client
	client   *http.Client
}

// NewAPI creates the API handler group.
func NewAPI(notifier *notify.Client) *API {
	return &API{
		notifier: notifier,
		client:   &http.Client{Timeout: downloadTimeout},
	}
}

// NotifySignup accepts a signup from the apply page and forwards it to the
// work tracker. The submission is lost if the forward fails, so the handler
// fails closed: any upstream problem is a 500 and the browser shows an
// error instead of a false confirmation.
func (a *API) NotifySignup(w http.ResponseWriter, r *http.Request) {
	var signup notify.Signup
	if err := json.NewDecoder(io.LimitReader(r.Body, 64<<10)).Decode(&signup); err != nil {
		writeFileError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if msg := validateSignup(signup); msg != "" {
		writeFileError(w, msg, http.StatusBadRequest)
		return
	}

	if err := a.notifier.Submit(r.Context(), signup); err != nil {
		slog.Error("signup forward failed", "error", err)
		writeFileError(w, "We could not record your signup. Please try again later.", http.StatusInternalServerError)
		return
	}

	slog.Info("signup recorded", "email", signup.Email)
	writeFileJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Download streams a remote file to the browser as an attachment. It exists
// so media hosted on the CDN can offer a "download" link instead of opening
// inline.
func (a *API) Download(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	filename := r.URL.Query().Get("filename")
	if rawURL == "" {
		http.Error(w, "Missing url parameter", http.StatusBadRequest)
		return
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		http.Error(w, "Invalid url parameter", http.StatusBadRequest)
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, rawURL, nil)
	if err != nil {
		http.Error(w, "Invalid url parameter", http.StatusBadRequest)
		return
	}

	resp, err := a.client.Do(req)
	if err != nil {
		slog.Warn("download fetch failed", "url", rawURL, "error", err)
		http.Error(w, "Failed to fetch file", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		http.Error(w, "Upstream returned an error", http.StatusBadGateway)
		return
	}

	if filename == "" {
		filename = path.Base(parsed.Path)
	}
	if filename == "" || filename == "." || filename == "/" {
		filename = "download"
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	if cl := resp.Header.Get("Content-Length"); cl != "" {
		w.Header().Set("Content-Length", cl)
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+sanitizeFilename(filename)+`"`)

	if _, err := io.Copy(w, resp.Body); err != nil {
		slog.Debug("download stream interrupted", "url", rawURL, "error", err)
	}
}

// sanitizeFilename strips characters that would break the header quoting.
func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '"', '\\', '\r', '\n', ';':
			return '_'
		}
		return r
	}, name)
}
