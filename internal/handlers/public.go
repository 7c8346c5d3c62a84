// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// public.go serves the visitor-facing pages. Pages render from CMS records
// merged over hardcoded defaults, so the site stays complete even with an
// empty database. Rendered HTML is cached per path in Valkey; admin
// mutations invalidate the affected paths.

package handlers

import (
	"log/slog"
	"net/http"

	"vetlaunch/internal/cache"
	"vetlaunch/internal/content"
	"vetlaunch/internal/middleware"
	"vetlaunch/internal/models"
	"vetlaunch/internal/render"
	"vetlaunch/internal/splash"
	"vetlaunch/internal/store"
)

// Public groups the visitor-facing HTTP handlers.
type Public struct {
	registry  *store.Registry
	renderer  *render.Renderer
	pageCache *cache.PageCache
}

// NewPublic creates the public handler group.
func NewPublic(registry *store.Registry, renderer *render.Renderer, pageCache *cache.PageCache) *Public {
	return &Public{registry: registry, renderer: renderer, pageCache: pageCache}
}

// Splash serves the landing splash page: headline, optional intro video,
// and a countdown that redirects into the site. A signed-in admin sees the
// countdown paused so they can review the page without being redirected.
func (p *Public) Splash(w http.ResponseWriter, r *http.Request) {
	isAdmin := middleware.SessionFromCtx(r.Context()) != nil
	if !isAdmin {
		if html, ok := p.pageCache.Get(r.Context(), "/"); ok {
			writeHTML(w, html)
			return
		}
	}

	cfg := content.DefaultSplash
	rec, err := p.registry.ActiveSplash()
	if err != nil {
		slog.Error("splash config load failed", "error", err)
	}
	if rec != nil {
		cfg = mergeSplash(rec.Payload)
	}

	m := splash.NewMachine(cfg.CountdownSeconds)
	if isAdmin {
		m.SetPause(splash.CauseAdminMode)
	}

	html, err := p.renderer.PublicHTML("splash", map[string]any{
		"Config":    cfg,
		"Remaining": m.Remaining(),
		"Paused":    m.Paused(),
	})
	if err != nil {
		slog.Error("splash render failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if !isAdmin {
		p.pageCache.Set(r.Context(), "/", html)
	}
	writeHTML(w, html)
}

// Home serves the main landing page: hero, content sections, testimonials,
// and the closing call to action.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "/home", "home", func() map[string]any {
		hero, err := p.registry.ActiveHero()
		if err != nil {
			slog.Error("hero load failed", "error", err)
		}
		sections, err := p.registry.Sections.GetVisible(0)
		if err != nil {
			slog.Error("sections load failed", "error", err)
		}
		testimonials, err := p.registry.Testimonials.GetVisible(0)
		if err != nil {
			slog.Error("testimonials load failed", "error", err)
		}
		cta := p.firstCTA()

		return map[string]any{
			"Hero":         hero,
			"Sections":     sections,
			"Testimonials": testimonials,
			"CTA":          cta,
		}
	})
}

// Team serves the team page with all visible team members.
func (p *Public) Team(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "/team", "team", func() map[string]any {
		members, err := p.registry.TeamMembers.GetVisible(0)
		if err != nil {
			slog.Error("team load failed", "error", err)
		}
		return map[string]any{"Members": members}
	})
}

// Curriculum serves the ten-week program outline. CMS records override the
// default week with the same number; extra weeks slot in by number.
func (p *Public) Curriculum(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "/curriculum", "curriculum", func() map[string]any {
		live, err := p.registry.Curriculum.GetVisible(0)
		if err != nil {
			slog.Error("curriculum load failed", "error", err)
		}
		weeks := content.MergeDefaults(content.DefaultCurriculum, payloads(live),
			func(c models.CurriculumItem) int { return c.WeekNumber })
		return map[string]any{"Weeks": weeks}
	})
}

// Qualifications serves the eligibility page: requirements plus FAQs, both
// merged over defaults by position.
func (p *Public) Qualifications(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "/qualifications", "qualifications", func() map[string]any {
		liveQuals, err := p.registry.Qualifications.GetVisible(0)
		if err != nil {
			slog.Error("qualifications load failed", "error", err)
		}
		liveFAQs, err := p.registry.FAQs.GetVisible(0)
		if err != nil {
			slog.Error("faqs load failed", "error", err)
		}

		quals := content.MergeDefaults(content.DefaultQualifications, payloads(liveQuals),
			func(q models.Qualification) int { return q.Position })
		faqs := content.MergeDefaults(content.DefaultFAQs, payloads(liveFAQs),
			func(f models.FAQ) int { return f.Position })

		return map[string]any{"Qualifications": quals, "FAQs": faqs}
	})
}

// Apply serves the application page with the notify-signup form.
func (p *Public) Apply(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "/apply", "apply", func() map[string]any {
		return map[string]any{"CTA": p.firstCTA()}
	})
}

// servePage renders one cacheable public page. Cache hits skip the data
// fetch entirely; admins always see a fresh render.
func (p *Public) servePage(w http.ResponseWriter, r *http.Request, path, name string, data func() map[string]any) {
	isAdmin := middleware.SessionFromCtx(r.Context()) != nil
	if !isAdmin {
		if html, ok := p.pageCache.Get(r.Context(), path); ok {
			writeHTML(w, html)
			return
		}
	}

	html, err := p.renderer.PublicHTML(name, data())
	if err != nil {
		slog.Error("page render failed", "page", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if !isAdmin {
		p.pageCache.Set(r.Context(), path, html)
	}
	writeHTML(w, html)
}

// firstCTA returns the highest-priority visible call to action, or nil.
func (p *Public) firstCTA() *models.Record[models.CallToAction] {
	ctas, err := p.registry.CTAs.GetVisible(1)
	if err != nil {
		slog.Error("cta load failed", "error", err)
		return nil
	}
	if len(ctas) == 0 {
		return nil
	}
	return &ctas[0]
}

// mergeSplash fills empty fields of a stored splash config from the
// defaults, so a partially configured record still produces a working page.
func mergeSplash(cfg models.SplashConfig) models.SplashConfig {
	def := content.DefaultSplash
	if cfg.Headline == "" {
		cfg.Headline = def.Headline
	}
	if cfg.CountdownSeconds <= 0 {
		cfg.CountdownSeconds = def.CountdownSeconds
	}
	if cfg.RedirectPath == "" {
		cfg.RedirectPath = def.RedirectPath
	}
	if cfg.SkipLabel == "" {
		cfg.SkipLabel = def.SkipLabel
	}
	return cfg
}

// payloads extracts the typed payloads from a record slice.
func payloads[T any](recs []models.Record[T]) []T {
	out := make([]T, len(recs))
	for i := range recs {
		out[i] = recs[i].Payload
	}
	return out
}

func writeHTML(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
