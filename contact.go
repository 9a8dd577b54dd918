package imamsite

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ContactSubmission is one contact form submission. Phone, Service,
// and EventLocation are optional.
type ContactSubmission struct {
	Name          string
	Email         string
	Phone         string
	Service       string
	EventLocation string
	Message       string
}

const (
	maxNameLen    = 100
	maxEmailLen   = 254
	maxMessageLen = 5000
)

// Validate checks the submission and returns field-keyed error
// messages. An empty map means the submission is valid.
func (s ContactSubmission) Validate() map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(s.Name)
	switch {
	case name == "":
		errs["name"] = "Name is required."
	case len(name) > maxNameLen:
		errs["name"] = "Name is too long."
	}

	email := strings.TrimSpace(s.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required."
	case len(email) > maxEmailLen, !looksLikeEmail(email):
		errs["email"] = "Enter a valid email address."
	}

	message := strings.TrimSpace(s.Message)
	switch {
	case message == "":
		errs["message"] = "Message is required."
	case len(message) > maxMessageLen:
		errs["message"] = "Message is too long."
	}

	return errs
}

// looksLikeEmail applies a shape check, not full RFC validation: one @,
// non-empty local part, and a dot in the domain.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at < 1 || at != strings.LastIndex(s, "@") {
		return false
	}
	domain := s[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

func (a *App) handleContact(c echo.Context) error {
	data := ContactData{
		PageContext: a.pageContext(c, PageMeta{
			Title:       "Contact | " + a.Config.Name,
			Description: "Get in touch with " + a.Config.Author + ".",
			URL:         BuildURL(a.Config.URL, "contact"),
		}),
		Services: a.Library.ActiveServices(c.Request().Context()),
	}
	return Render(c, a.Views.Contact(data))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	form := ContactSubmission{
		Name:          strings.TrimSpace(c.FormValue("name")),
		Email:         strings.TrimSpace(c.FormValue("email")),
		Phone:         strings.TrimSpace(c.FormValue("phone")),
		Service:       strings.TrimSpace(c.FormValue("service")),
		EventLocation: strings.TrimSpace(c.FormValue("event_location")),
		Message:       strings.TrimSpace(c.FormValue("message")),
	}

	data := ContactData{
		PageContext: a.pageContext(c, PageMeta{
			Title:       "Contact | " + a.Config.Name,
			URL:         BuildURL(a.Config.URL, "contact"),
		}),
		Form:     form,
		Services: a.Library.ActiveServices(c.Request().Context()),
	}

	if !a.submitLimiter.Allow(c.RealIP()) {
		data.Errors = map[string]string{
			"form": "Too many messages. Please try again later.",
		}
		return RenderStatus(c, http.StatusTooManyRequests, a.Views.ContactResult(data))
	}

	if errs := form.Validate(); len(errs) > 0 {
		data.Errors = errs
		return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.ContactResult(data))
	}

	if err := a.mailer.Send(c.Request().Context(), contactMessage(form, a.Config)); err != nil {
		c.Logger().Errorf("contact mail: %v", err)
		data.Errors = map[string]string{
			"form": "Your message could not be sent. Please try again.",
		}
		return RenderStatus(c, http.StatusBadGateway, a.Views.ContactResult(data))
	}

	data.Form = ContactSubmission{}
	data.Sent = true
	return Render(c, a.Views.ContactResult(data))
}

func contactMessage(form ContactSubmission, cfg SiteConfig) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\n", form.Name, form.Email)
	if form.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", form.Phone)
	}
	if form.Service != "" {
		fmt.Fprintf(&b, "Service: %s\n", form.Service)
	}
	if form.EventLocation != "" {
		fmt.Fprintf(&b, "Event location: %s\n", form.EventLocation)
	}
	fmt.Fprintf(&b, "\n%s\n", form.Message)

	subject := "New contact form message"
	if form.Service != "" {
		subject = "New inquiry: " + form.Service
	}
	return Message{
		To:      cfg.ContactEmail,
		ReplyTo: form.Email,
		Subject: subject,
		Text:    b.String(),
	}
}
