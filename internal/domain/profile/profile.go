package profile

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email"`
	Image    string `json:"image"`
}

var (
	ErrInvalidEmail = errors.New("email cannot be turned into a mailto link")
	ErrRelativeURI  = errors.New("profile link must be an absolute URI")
)

// MailtoURL returns the mailto: form of Email. An Email that already carries the
// scheme is accepted as is.
func (p Profile) MailtoURL() (string, error) {
	addr := strings.TrimPrefix(p.Email, "mailto:")
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, p.Email)
	}
	return (&url.URL{Scheme: "mailto", Opaque: addr}).String(), nil
}

func (p Profile) Validate() error {
	var errs []error
	if _, err := p.MailtoURL(); err != nil {
		errs = append(errs, err)
	}
	links := []struct{ field, raw string }{
		{"github", p.GitHub},
		{"linkedin", p.LinkedIn},
	}
	for _, l := range links {
		if !IsAbsoluteURI(l.raw) {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrRelativeURI, l.field, l.raw))
		}
	}
	return errors.Join(errs...)
}

func IsAbsoluteURI(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}
