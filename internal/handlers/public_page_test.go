// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"vetlaunch/internal/models"
)

// With an empty database every page still renders from the default content.
func TestPublicPagesRenderFromDefaults(t *testing.T) {
	env := newTestEnv(t)
	for _, c := range []string{models.CollectionCurriculum, models.CollectionQualifications, models.CollectionFAQs} {
		cleanCollection(t, env.DB, c)
	}
	env.PageCache.InvalidateAll(context.Background())

	tests := []struct {
		name    string
		handler http.HandlerFunc
		path    string
		want    string
	}{
		{"curriculum", env.Public.Curriculum, "/curriculum", "Mission Brief"},
		{"qualifications", env.Public.Qualifications, "/qualifications", "Veteran or Transitioning Service Member"},
		{"home", env.Public.Home, "/home", "VetLaunch"},
		{"team", env.Public.Team, "/team", "VetLaunch"},
		{"apply", env.Public.Apply, "/apply", "fullName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("page missing %q", tt.want)
			}
		})
	}
}

// A CMS record with the same week number replaces the default outright.
func TestCurriculumOverridesDefaultWeek(t *testing.T) {
	env := newTestEnv(t)
	cleanCollection(t, env.DB, models.CollectionCurriculum)
	t.Cleanup(func() { cleanCollection(t, env.DB, models.CollectionCurriculum) })
	env.PageCache.InvalidateAll(context.Background())

	if _, err := env.Registry.Curriculum.Create(models.CurriculumItem{
		WeekNumber: 1, Title: "Revised Orientation Week",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec := httptest.NewRecorder()
	env.Public.Curriculum(rec, httptest.NewRequest(http.MethodGet, "/curriculum", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "Revised Orientation Week") {
		t.Error("override week missing")
	}
	if strings.Contains(body, "Mission Brief &amp; Mindset") || strings.Contains(body, "Mission Brief & Mindset") {
		t.Error("default week 1 should be replaced, not shown alongside")
	}
	// Untouched defaults survive.
	if !strings.Contains(body, "Pitch Week") {
		t.Error("default week 10 missing")
	}
}

func TestPublicPageCaching(t *testing.T) {
	env := newTestEnv(t)
	cleanCollection(t, env.DB, models.CollectionCurriculum)
	env.PageCache.InvalidateAll(context.Background())

	rec := httptest.NewRecorder()
	env.Public.Curriculum(rec, httptest.NewRequest(http.MethodGet, "/curriculum", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("first render: status = %d", rec.Code)
	}

	if _, ok := env.PageCache.Get(context.Background(), "/curriculum"); !ok {
		t.Fatal("page was not cached after render")
	}

	// Second request is served from cache and matches the first render.
	rec2 := httptest.NewRecorder()
	env.Public.Curriculum(rec2, httptest.NewRequest(http.MethodGet, "/curriculum", nil))
	if rec2.Body.String() != rec.Body.String() {
		t.Error("cached response differs from the original render")
	}
}

func TestSplashRendersCountdown(t *testing.T) {
	env := newTestEnv(t)
	cleanCollection(t, env.DB, models.CollectionSplash)
	env.PageCache.InvalidateAll(context.Background())

	rec := httptest.NewRecorder()
	env.Public.Splash(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Your Next Mission Starts Here") {
		t.Error("default splash headline missing")
	}
	if !strings.Contains(body, "Enter Site") {
		t.Error("default skip label missing")
	}
}

// Signed-in admins see the splash page with the countdown paused, so they
// can review it without being redirected.
func TestSplashPausedForAdmin(t *testing.T) {
	env := newTestEnv(t)
	cleanCollection(t, env.DB, models.CollectionSplash)
	env.PageCache.InvalidateAll(context.Background())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess := testSession(uuid.New(), "admin@vetlaunch.org", "admin", true)
	req = req.WithContext(ctxWithSession(req.Context(), sess))

	rec := httptest.NewRecorder()
	env.Public.Splash(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	// The admin render must not be cached for public visitors.
	if _, ok := env.PageCache.Get(context.Background(), "/"); ok {
		t.Error("admin view of the splash page was cached")
	}
}
