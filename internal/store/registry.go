// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// registry.go provides the dependency-injection container for all content
// collections. It is constructed once in main and passed by reference to
// handlers, so every caller shares one connection-bound collection per
// content type. Construction is pure object wiring with no I/O.
package store

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"vetlaunch/internal/models"
)

// Resource is the untyped view of a collection, used by the admin panel
// where collections are addressed by name. Every Collection implements it.
type Resource interface {
	Name() string
	AllDocs() ([]models.Document, error)
	VisibleDocs(limit int) ([]models.Document, error)
	FindDoc(id uuid.UUID) (*models.Document, error)
	CreateDoc(payload json.RawMessage) (*models.Document, error)
	UpdateDoc(id uuid.UUID, patch models.Patch) (*models.Document, error)
	DeleteDoc(id uuid.UUID) error
	Count() (int, error)
}

// Registry holds one instance of every typed collection. Accessing the same
// field twice always yields the same instance.
type Registry struct {
	Heroes         *Collection[models.Hero]
	Sections       *Collection[models.ContentSection]
	TeamMembers    *Collection[models.TeamMember]
	Testimonials   *Collection[models.Testimonial]
	Curriculum     *Collection[models.CurriculumItem]
	CTAs           *Collection[models.CallToAction]
	Qualifications *Collection[models.Qualification]
	FAQs           *Collection[models.FAQ]
	Splash         *Collection[models.SplashConfig]

	byName map[string]Resource
}

// NewRegistry builds the collection registry over the given database pool.
func NewRegistry(db *sql.DB) *Registry {
	r := &Registry{
		Heroes:         NewCollection[models.Hero](db, models.CollectionHeroes),
		Sections:       NewCollection[models.ContentSection](db, models.CollectionSections),
		TeamMembers:    NewCollection[models.TeamMember](db, models.CollectionTeamMembers),
		Testimonials:   NewCollection[models.Testimonial](db, models.CollectionTestimonials),
		Curriculum:     NewCollection[models.CurriculumItem](db, models.CollectionCurriculum),
		CTAs:           NewCollection[models.CallToAction](db, models.CollectionCTAs),
		Qualifications: NewCollection[models.Qualification](db, models.CollectionQualifications),
		FAQs:           NewCollection[models.FAQ](db, models.CollectionFAQs),
		Splash:         NewCollection[models.SplashConfig](db, models.CollectionSplash),
	}
	r.byName = map[string]Resource{
		models.CollectionHeroes:         r.Heroes,
		models.CollectionSections:       r.Sections,
		models.CollectionTeamMembers:    r.TeamMembers,
		models.CollectionTestimonials:   r.Testimonials,
		models.CollectionCurriculum:     r.Curriculum,
		models.CollectionCTAs:           r.CTAs,
		models.CollectionQualifications: r.Qualifications,
		models.CollectionFAQs:           r.FAQs,
		models.CollectionSplash:         r.Splash,
	}
	return r
}

// Resource looks up a collection by name for the dynamic admin routes.
// Returns nil for unknown names.
func (r *Registry) Resource(name string) Resource {
	return r.byName[name]
}

// CollectionNames returns the names of all registered collections in a
// stable display order.
func (r *Registry) CollectionNames() []string {
	return []string{
		models.CollectionHeroes,
		models.CollectionSections,
		models.CollectionTeamMembers,
		models.CollectionTestimonials,
		models.CollectionCurriculum,
		models.CollectionCTAs,
		models.CollectionQualifications,
		models.CollectionFAQs,
		models.CollectionSplash,
	}
}

// ActiveHero returns the single active hero: the first visible one by sort
// order, or nil when none exists.
func (r *Registry) ActiveHero() (*models.Record[models.Hero], error) {
	heroes, err := r.Heroes.GetVisible(1)
	if err != nil {
		return nil, err
	}
	if len(heroes) == 0 {
		return nil, nil
	}
	return &heroes[0], nil
}

// FeaturedTeamMembers returns up to n visible team members in display order.
func (r *Registry) FeaturedTeamMembers(n int) ([]models.Record[models.TeamMember], error) {
	return r.TeamMembers.GetVisible(n)
}

// ActiveSplash returns the live splash configuration, or nil when none is
// visible. The splash page falls back to the hardcoded defaults then.
func (r *Registry) ActiveSplash() (*models.Record[models.SplashConfig], error) {
	configs, err := r.Splash.GetVisible(1)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, nil
	}
	return &configs[0], nil
}
