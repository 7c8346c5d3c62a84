package handlers

import (
	"strings"
	"testing"

	"vetlaunch/internal/notify"
)

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name      string
		signup    notify.Signup
		wantError bool
	}{
		{"valid", notify.Signup{FullName: "Jordan Reyes", Email: "jordan@example.com"}, false},
		{"valid with extras", notify.Signup{FullName: "Sam Ortiz", Email: "sam@example.com", CountryOfService: "USA", HowDidYouHear: "A friend"}, false},
		{"empty name", notify.Signup{Email: "a@example.com"}, true},
		{"whitespace name", notify.Signup{FullName: "   ", Email: "a@example.com"}, true},
		{"empty email", notify.Signup{FullName: "Jordan"}, true},
		{"bad email", notify.Signup{FullName: "Jordan", Email: "not-an-email"}, true},
		{"name too long", notify.Signup{FullName: strings.Repeat("a", 201), Email: "a@example.com"}, true},
		{"country too long", notify.Signup{FullName: "Jordan", Email: "a@example.com", CountryOfService: strings.Repeat("a", 501)}, true},
		{"how-heard too long", notify.Signup{FullName: "Jordan", Email: "a@example.com", HowDidYouHear: strings.Repeat("a", 501)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateSignup(tt.signup)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}
