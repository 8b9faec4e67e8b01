package contact

import (
	"net/mail"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/envelope"
	"github.com/kuberbiotech/kuber-web/internal/gateway"
)

// Submission is a message left through the contact form. Email and Phone are
// optional on stored records.
type Submission struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt string
}

// Created parses CreatedAt; the zero time means unknown.
func (s Submission) Created() time.Time {
	t, err := time.Parse(time.RFC3339, s.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

func FromResult(r gjson.Result) Submission {
	return Submission{
		ID:        str(r, "_id", "id"),
		Name:      str(r, "name"),
		Email:     str(r, "email"),
		Phone:     str(r, "phone", "mobile"),
		Message:   str(r, "message"),
		CreatedAt: str(r, "createdAt"),
	}
}

// Decode normalizes a list response into submissions.
func Decode(body []byte) []Submission {
	return envelope.Decode(body, envelope.Contacts, FromResult)
}

func str(r gjson.Result, paths ...string) string {
	for _, p := range paths {
		v := r.Get(p)
		switch v.Type {
		case gjson.String:
			if v.String() != "" {
				return v.String()
			}
		case gjson.Number:
			return v.Raw
		}
	}
	return ""
}

// Form is the public contact form.
type Form struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Message string `form:"message"`
}

func (f Form) trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate returns the content message key of the first problem, or "".
func (f Form) Validate() string {
	f = f.trimmed()
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return content.MsgContactRequired
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		return content.MsgContactInvalidEmail
	}
	return ""
}

// Request converts the form to the backend payload.
func (f Form) Request() gateway.ContactRequest {
	f = f.trimmed()
	return gateway.ContactRequest{Name: f.Name, Email: f.Email, Phone: f.Phone, Message: f.Message}
}
