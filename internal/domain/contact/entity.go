package contact

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmailRequired = errors.New("contact email is required")

// Contact is a participant's address-book entry for someone who booked them.
type Contact struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	email         string
	name          string
	lastBookedAt  *time.Time
	totalBookings int
}

func NewContact(ownerID uuid.UUID, email, name string) (*Contact, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	return &Contact{
		id:      uuid.New(),
		ownerID: ownerID,
		email:   email,
		name:    name,
	}, nil
}

func ReconstructContact(id, ownerID uuid.UUID, email, name string, lastBookedAt *time.Time, totalBookings int) *Contact {
	return &Contact{
		id:            id,
		ownerID:       ownerID,
		email:         email,
		name:          name,
		lastBookedAt:  lastBookedAt,
		totalBookings: totalBookings,
	}
}

// RecordBooking refreshes the display name and bumps the booking counters.
func (c *Contact) RecordBooking(name string, at time.Time) {
	if name != "" {
		c.name = name
	}
	c.lastBookedAt = &at
	c.totalBookings++
}

func (c *Contact) ID() uuid.UUID            { return c.id }
func (c *Contact) OwnerID() uuid.UUID       { return c.ownerID }
func (c *Contact) Email() string            { return c.email }
func (c *Contact) Name() string             { return c.name }
func (c *Contact) LastBookedAt() *time.Time { return c.lastBookedAt }
func (c *Contact) TotalBookings() int       { return c.totalBookings }
