// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vetlaunch/internal/notify"
)

func TestNotifySignupForwardsToTracker(t *testing.T) {
	var gotPath string
	var gotBody []byte
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"task-1"}`))
	}))
	defer upstream.Close()

	api := NewAPI(notify.NewClient(notify.Config{
		BaseURL:  upstream.URL,
		APIToken: "tok_test",
		ListID:   "list-1",
	}))

	body := `{"fullName":"Jordan Reyes","email":"jordan@example.com","countryOfService":"USA"}`
	req := httptest.NewRequest(http.MethodPost, "/api/notify-signup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	api.NotifySignup(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if gotPath != "/api/v2/list/list-1/task" {
		t.Errorf("upstream path = %q", gotPath)
	}
	if !strings.Contains(string(gotBody), "Jordan Reyes") {
		t.Errorf("upstream body missing name: %s", gotBody)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["success"] != true {
		t.Errorf("response = %v, want success", resp)
	}
}

func TestNotifySignupValidation(t *testing.T) {
	api := NewAPI(notify.NewClient(notify.Config{}))

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"missing name", `{"email":"a@example.com"}`},
		{"missing email", `{"fullName":"Jordan"}`},
		{"bad email", `{"fullName":"Jordan","email":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/notify-signup", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			api.NotifySignup(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp["error"] == "" {
				t.Error("expected an error message")
			}
		})
	}
}

// A signup that cannot reach the tracker must fail visibly, never report
// success while dropping the submission.
func TestNotifySignupFailsClosedWhenUnconfigured(t *testing.T) {
	api := NewAPI(notify.NewClient(notify.Config{}))

	body := `{"fullName":"Jordan Reyes","email":"jordan@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/notify-signup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	api.NotifySignup(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestNotifySignupFailsClosedOnUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer upstream.Close()

	api := NewAPI(notify.NewClient(notify.Config{
		BaseURL:  upstream.URL,
		APIToken: "tok_bad",
		ListID:   "list-1",
	}))

	body := `{"fullName":"Jordan Reyes","email":"jordan@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/notify-signup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	api.NotifySignup(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestDownloadStreamsAttachment(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer upstream.Close()

	api := NewAPI(notify.NewClient(notify.Config{}))

	req := httptest.NewRequest(http.MethodGet, "/api/download?url="+upstream.URL+"/program-guide.pdf&filename=guide.pdf", nil)
	rec := httptest.NewRecorder()
	api.Download(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="guide.pdf"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "%PDF") {
		t.Error("body was not streamed")
	}
}

func TestDownloadRejectsBadURLs(t *testing.T) {
	api := NewAPI(notify.NewClient(notify.Config{}))

	for _, raw := range []string{"", "ftp://example.com/x", "file:///etc/passwd", "::bad::"} {
		req := httptest.NewRequest(http.MethodGet, "/api/download?url="+raw, nil)
		rec := httptest.NewRecorder()
		api.Download(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("url %q: status = %d, want 400", raw, rec.Code)
		}
	}
}

func TestDownloadUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	api := NewAPI(notify.NewClient(notify.Config{}))

	req := httptest.NewRequest(http.MethodGet, "/api/download?url="+upstream.URL+"/missing.pdf", nil)
	rec := httptest.NewRecorder()
	api.Download(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}
