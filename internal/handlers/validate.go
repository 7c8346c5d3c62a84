// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/mail"
	"strings"

	"vetlaunch/internal/notify"
)

// Validation limits for the notify-signup form.
const (
	maxNameLength  = 200
	maxEmailLength = 254
	maxFieldLength = 500
)

// validateSignup checks a notify-signup submission and returns an error
// message suitable for display, or "" if the submission is valid.
func validateSignup(s notify.Signup) string {
	if strings.TrimSpace(s.FullName) == "" {
		return "Full name is required."
	}
	if len(s.FullName) > maxNameLength {
		return "Full name is too long."
	}
	if strings.TrimSpace(s.Email) == "" {
		return "Email is required."
	}
	if len(s.Email) > maxEmailLength {
		return "Email is too long."
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return "Email address is not valid."
	}
	if len(s.CountryOfService) > maxFieldLength {
		return "Country of service is too long."
	}
	if len(s.HowDidYouHear) > maxFieldLength {
		return "Answer is too long."
	}
	return ""
}
