// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// admin_schema.go declares the edit-modal field descriptors for every
// content collection. The admin CRUD and modal handlers are generic; this
// table is the only place that knows what each payload looks like.

package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"

	"vetlaunch/internal/forms"
	"vetlaunch/internal/models"
)

// collectionSchema describes how one collection appears in the admin panel.
type collectionSchema struct {
	Label   string
	Fields  []forms.Field
	Columns []string // field names shown in the list table
}

var schemas = map[string]collectionSchema{
	models.CollectionHeroes: {
		Label: "Heroes",
		Fields: []forms.Field{
			{Name: "headline", Label: "Headline", Kind: forms.KindText, Required: true},
			{Name: "subheadline", Label: "Subheadline", Kind: forms.KindText},
			{Name: "image_url", Label: "Background Image", Kind: forms.KindImageURL},
			{Name: "button_label", Label: "Button Label", Kind: forms.KindText},
			{Name: "button_url", Label: "Button URL", Kind: forms.KindText},
		},
		Columns: []string{"headline", "button_label"},
	},
	models.CollectionSections: {
		Label: "Content Sections",
		Fields: []forms.Field{
			{Name: "headline", Label: "Headline", Kind: forms.KindText, Required: true},
			{Name: "body", Label: "Body (Markdown)", Kind: forms.KindTextarea},
			{Name: "icon", Label: "Icon", Kind: forms.KindText},
			{Name: "image_url", Label: "Image", Kind: forms.KindImageURL},
		},
		Columns: []string{"headline", "icon"},
	},
	models.CollectionTeamMembers: {
		Label: "Team Members",
		Fields: []forms.Field{
			{Name: "name", Label: "Name", Kind: forms.KindText, Required: true},
			{Name: "title", Label: "Title", Kind: forms.KindText},
			{Name: "bio", Label: "Bio (Markdown)", Kind: forms.KindTextarea},
			{Name: "photo_url", Label: "Photo", Kind: forms.KindImageURL},
			{Name: "branch", Label: "Branch of Service", Kind: forms.KindText},
			{Name: "featured", Label: "Featured", Kind: forms.KindBool},
		},
		Columns: []string{"name", "title", "branch"},
	},
	models.CollectionTestimonials: {
		Label: "Testimonials",
		Fields: []forms.Field{
			{Name: "quote", Label: "Quote", Kind: forms.KindTextarea, Required: true},
			{Name: "author", Label: "Author", Kind: forms.KindText, Required: true},
			{Name: "company", Label: "Company", Kind: forms.KindText},
			{Name: "photo_url", Label: "Photo", Kind: forms.KindImageURL},
		},
		Columns: []string{"author", "company"},
	},
	models.CollectionCurriculum: {
		Label: "Curriculum",
		Fields: []forms.Field{
			{Name: "week_number", Label: "Week Number", Kind: forms.KindNumber, Required: true},
			{Name: "title", Label: "Title", Kind: forms.KindText, Required: true},
			{Name: "description", Label: "Description (Markdown)", Kind: forms.KindTextarea},
			{Name: "icon", Label: "Icon", Kind: forms.KindText},
		},
		Columns: []string{"week_number", "title"},
	},
	models.CollectionCTAs: {
		Label: "Calls to Action",
		Fields: []forms.Field{
			{Name: "headline", Label: "Headline", Kind: forms.KindText, Required: true},
			{Name: "body", Label: "Body", Kind: forms.KindTextarea},
			{Name: "button_label", Label: "Button Label", Kind: forms.KindText},
			{Name: "button_url", Label: "Button URL", Kind: forms.KindText},
		},
		Columns: []string{"headline", "button_label"},
	},
	models.CollectionQualifications: {
		Label: "Qualifications",
		Fields: []forms.Field{
			{Name: "position", Label: "Position", Kind: forms.KindNumber, Required: true},
			{Name: "title", Label: "Title", Kind: forms.KindText, Required: true},
			{Name: "description", Label: "Description", Kind: forms.KindTextarea},
			{Name: "icon", Label: "Icon", Kind: forms.KindText},
		},
		Columns: []string{"position", "title"},
	},
	models.CollectionFAQs: {
		Label: "FAQs",
		Fields: []forms.Field{
			{Name: "position", Label: "Position", Kind: forms.KindNumber, Required: true},
			{Name: "question", Label: "Question", Kind: forms.KindText, Required: true},
			{Name: "answer", Label: "Answer (Markdown)", Kind: forms.KindTextarea, Required: true},
		},
		Columns: []string{"position", "question"},
	},
	models.CollectionSplash: {
		Label: "Splash",
		Fields: []forms.Field{
			{Name: "headline", Label: "Headline", Kind: forms.KindText, Required: true},
			{Name: "video_url", Label: "Video URL", Kind: forms.KindText},
			{Name: "countdown_seconds", Label: "Countdown Seconds", Kind: forms.KindNumber, Default: "8"},
			{Name: "redirect_path", Label: "Redirect Path", Kind: forms.KindText, Default: "/home"},
			{Name: "skip_label", Label: "Skip Button Label", Kind: forms.KindText, Default: "Enter Site"},
		},
		Columns: []string{"headline", "redirect_path"},
	},
}

// collectionLabel returns the human label for a collection, falling back to
// the raw name.
func collectionLabel(name string) string {
	if s, ok := schemas[name]; ok {
		return s.Label
	}
	return name
}

// snapshotFromPayload flattens a stored JSON payload into the string form
// state the modal edits. Only declared fields survive; everything is
// stringified the way the form widgets expect.
func snapshotFromPayload(fields []forms.Field, payload json.RawMessage) (forms.Snapshot, error) {
	var raw map[string]any
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &raw); err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
	}

	initial := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			initial[k] = val
		case bool:
			initial[k] = strconv.FormatBool(val)
		case float64:
			// JSON numbers decode as float64; the payloads only hold ints.
			initial[k] = strconv.Itoa(int(val))
		case nil:
			// skip
		default:
			initial[k] = fmt.Sprint(val)
		}
	}
	return forms.Seed(fields, initial), nil
}

// payloadFromSnapshot coerces the form state back into a typed JSON
// payload, per field kind. Empty optional fields are omitted; use this
// when creating documents.
func payloadFromSnapshot(fields []forms.Field, snap forms.Snapshot) (json.RawMessage, error) {
	return snapshotPayload(fields, snap, false)
}

// patchFromSnapshot is the update-side counterpart. Updates merge the
// patch over the stored payload, so a cleared text field must be written
// as an explicit empty string — omitting it would silently keep the old
// value.
func patchFromSnapshot(fields []forms.Field, snap forms.Snapshot) (json.RawMessage, error) {
	return snapshotPayload(fields, snap, true)
}

func snapshotPayload(fields []forms.Field, snap forms.Snapshot, keepEmpty bool) (json.RawMessage, error) {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		v := snap[f.Name]
		switch f.Kind {
		case forms.KindNumber:
			// An empty number box has no cleared state to record.
			if v == "" {
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("field %s: not a number", f.Name)
			}
			out[f.Name] = n
		case forms.KindBool:
			out[f.Name] = v == "true"
		default:
			if v == "" && !keepEmpty {
				continue
			}
			out[f.Name] = v
		}
	}

	payload, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return payload, nil
}
