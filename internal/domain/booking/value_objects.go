package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrNameTooLong     = errors.New("name must be at most 255 characters")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidTimezone = errors.New("timezone is not a recognized zone")
	ErrNotesTooLong    = errors.New("notes must be at most 2000 characters")
)

const (
	maxNameLength  = 255
	maxNotesLength = 2000
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Normalized is the lowercase form used to match contacts.
func (e Email) Normalized() string {
	return strings.ToLower(e.value)
}

// Requester is the person who asked for the booking.
type Requester struct {
	name     string
	email    Email
	timezone *time.Location
	notes    string
}

func NewRequester(name, email, timezone, notes string) (Requester, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Requester{}, ErrNameRequired
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return Requester{}, ErrNameTooLong
	}
	e, err := NewEmail(email)
	if err != nil {
		return Requester{}, err
	}
	if timezone == "" || timezone == "Local" {
		return Requester{}, ErrInvalidTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Requester{}, ErrInvalidTimezone
	}
	if utf8.RuneCountInString(notes) > maxNotesLength {
		return Requester{}, ErrNotesTooLong
	}
	return Requester{name: name, email: e, timezone: loc, notes: notes}, nil
}

func (r Requester) Name() string             { return r.name }
func (r Requester) Email() Email             { return r.email }
func (r Requester) Timezone() *time.Location { return r.timezone }
func (r Requester) Notes() string            { return r.notes }
