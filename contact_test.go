package imamsite

import (
	"strings"
	"testing"
)

func validSubmission() ContactSubmission {
	return ContactSubmission{
		Name:    "Ahmed Ali",
		Email:   "ahmed@example.com",
		Message: "As-salamu alaykum, I would like to book a nikah ceremony.",
	}
}

func TestContactValidationAccepts(t *testing.T) {
	s := validSubmission()
	if errs := s.Validate(); len(errs) != 0 {
		t.Errorf("Validate = %v, want no errors", errs)
	}

	s.Phone = "+1 555 0100"
	s.Service = "Nikah Ceremony"
	s.EventLocation = "Community Center"
	if errs := s.Validate(); len(errs) != 0 {
		t.Errorf("Validate with optional fields = %v, want no errors", errs)
	}
}

func TestContactValidationRejects(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ContactSubmission)
		wantField string
	}{
		{"missing name", func(s *ContactSubmission) { s.Name = "" }, "name"},
		{"whitespace name", func(s *ContactSubmission) { s.Name = "   " }, "name"},
		{"long name", func(s *ContactSubmission) { s.Name = strings.Repeat("a", 101) }, "name"},
		{"missing email", func(s *ContactSubmission) { s.Email = "" }, "email"},
		{"email without at", func(s *ContactSubmission) { s.Email = "ahmed.example.com" }, "email"},
		{"email without domain dot", func(s *ContactSubmission) { s.Email = "ahmed@example" }, "email"},
		{"email with two ats", func(s *ContactSubmission) { s.Email = "a@b@example.com" }, "email"},
		{"missing message", func(s *ContactSubmission) { s.Message = "" }, "message"},
		{"long message", func(s *ContactSubmission) { s.Message = strings.Repeat("x", 5001) }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)
			errs := s.Validate()
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("Validate = %v, want error on %q", errs, tt.wantField)
			}
		})
	}
}

func TestLooksLikeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"name+tag@sub.example.org", true},
		{"@example.com", false},
		{"a@.com", false},
		{"a@com.", false},
		{"plain", false},
	}
	for _, tt := range tests {
		if got := looksLikeEmail(tt.in); got != tt.want {
			t.Errorf("looksLikeEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestContactMessageIncludesOptionalFields(t *testing.T) {
	form := validSubmission()
	form.Phone = "+1 555 0100"
	form.Service = "Janazah"
	form.EventLocation = "Masjid An-Noor"

	cfg := SiteConfig{ContactEmail: "imam@example.com"}
	msg := contactMessage(form, cfg)

	if msg.To != "imam@example.com" {
		t.Errorf("To = %q", msg.To)
	}
	if msg.ReplyTo != form.Email {
		t.Errorf("ReplyTo = %q, want %q", msg.ReplyTo, form.Email)
	}
	if msg.Subject != "New inquiry: Janazah" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	for _, want := range []string{form.Name, form.Phone, form.EventLocation, form.Message} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("Text missing %q:\n%s", want, msg.Text)
		}
	}
}

func TestContactMessageOmitsBlankOptionalFields(t *testing.T) {
	msg := contactMessage(validSubmission(), SiteConfig{ContactEmail: "imam@example.com"})
	if strings.Contains(msg.Text, "Phone:") || strings.Contains(msg.Text, "Service:") {
		t.Errorf("Text includes blank optional fields:\n%s", msg.Text)
	}
	if msg.Subject != "New contact form message" {
		t.Errorf("Subject = %q", msg.Subject)
	}
}
