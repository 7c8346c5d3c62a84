// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Collection names. Each content type lives in its own named collection in
// the documents table.
const (
	CollectionHeroes         = "heroes"
	CollectionSections       = "content_sections"
	CollectionTeamMembers    = "team_members"
	CollectionTestimonials   = "testimonials"
	CollectionCurriculum     = "curriculum_items"
	CollectionCTAs           = "calls_to_action"
	CollectionQualifications = "qualifications"
	CollectionFAQs           = "faqs"
	CollectionSplash         = "splash"
)

// Hero is the large banner block at the top of the home page. At most one
// hero is shown at a time (the first visible one by sort order).
type Hero struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	ButtonLabel string `json:"button_label,omitempty"`
	ButtonURL   string `json:"button_url,omitempty"`
}

// ContentSection is a headline/body block rendered on the home page.
// Body is Markdown.
type ContentSection struct {
	Headline string `json:"headline"`
	Body     string `json:"body,omitempty"`
	Icon     string `json:"icon,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// TeamMember is a staff or mentor profile shown on the team page.
type TeamMember struct {
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	Bio      string `json:"bio,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
	Branch   string `json:"branch,omitempty"` // branch of service, e.g. "Army"
	Featured bool   `json:"featured,omitempty"`
}

// Testimonial is a quote from a program alum.
type Testimonial struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Company  string `json:"company,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// CurriculumItem describes one week of the program curriculum.
// WeekNumber is the merge key against the hardcoded default weeks.
type CurriculumItem struct {
	WeekNumber  int    `json:"week_number"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"` // Markdown
	Icon        string `json:"icon,omitempty"`
}

// CallToAction is a banner prompting visitors to apply or sign up.
type CallToAction struct {
	Headline    string `json:"headline"`
	Body        string `json:"body,omitempty"`
	ButtonLabel string `json:"button_label,omitempty"`
	ButtonURL   string `json:"button_url,omitempty"`
}

// Qualification is one eligibility requirement shown on the qualifications
// page. Position is the merge key against the hardcoded defaults.
type Qualification struct {
	Position    int    `json:"position"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// FAQ is one question/answer pair. Position is the merge key against the
// hardcoded defaults.
type FAQ struct {
	Position int    `json:"position"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SplashConfig drives the splash page: intro video, countdown length, and
// where to send visitors when the countdown reaches zero.
type SplashConfig struct {
	Headline         string `json:"headline,omitempty"`
	VideoURL         string `json:"video_url,omitempty"`
	CountdownSeconds int    `json:"countdown_seconds"`
	RedirectPath     string `json:"redirect_path"`
	SkipLabel        string `json:"skip_label,omitempty"`
}
