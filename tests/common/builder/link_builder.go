//go:build unit || e2e

package builder

import (
	"time"

	"meeting-scheduler/internal/domain/schedulelink"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	CreatorID     = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	ParticipantID = uuid.MustParse("00000000-0000-0000-0000-0000000000c2")
)

type LinkBuilder struct {
	ID                uuid.UUID
	Slug              string
	Name              string
	DurationMinutes   int
	BufferMinutes     int
	Timezone          string
	MaxFutureDays     int
	MaxBookingsPerDay *int
	Status            schedulelink.Status
	WorkflowID        *uuid.UUID
	Participants      []schedulelink.Participant
	CreatedAt         time.Time
}

func NewLinkBuilder() *LinkBuilder {
	return &LinkBuilder{
		ID:              uuid.New(),
		Slug:            "intro-call",
		Name:            "Intro Call",
		DurationMinutes: 30,
		BufferMinutes:   0,
		Timezone:        "UTC",
		MaxFutureDays:   60,
		Status:          schedulelink.StatusActive,
		Participants: []schedulelink.Participant{
			{UserID: CreatorID, Name: "Host", Email: "host@example.com", IsCreator: true},
		},
		CreatedAt: time.Now(),
	}
}

func (b *LinkBuilder) With(mutate func(*LinkBuilder)) *LinkBuilder {
	mutate(b)
	return b
}

func (b *LinkBuilder) WithSlug(slug string) *LinkBuilder {
	b.Slug = slug
	return b
}

func (b *LinkBuilder) WithTimezone(tz string) *LinkBuilder {
	b.Timezone = tz
	return b
}

func (b *LinkBuilder) WithDuration(minutes int) *LinkBuilder {
	b.DurationMinutes = minutes
	return b
}

func (b *LinkBuilder) WithBuffer(minutes int) *LinkBuilder {
	b.BufferMinutes = minutes
	return b
}

func (b *LinkBuilder) WithMaxBookingsPerDay(n int) *LinkBuilder {
	b.MaxBookingsPerDay = &n
	return b
}

func (b *LinkBuilder) WithStatus(s schedulelink.Status) *LinkBuilder {
	b.Status = s
	return b
}

func (b *LinkBuilder) WithWorkflow(id uuid.UUID) *LinkBuilder {
	b.WorkflowID = &id
	return b
}

func (b *LinkBuilder) WithParticipant(id uuid.UUID) *LinkBuilder {
	b.Participants = append(b.Participants, schedulelink.Participant{
		UserID: id,
		Name:   "Guest Host",
		Email:  "guest-host@example.com",
	})
	return b
}

// Build methods
func (b *LinkBuilder) BuildDomain() (*schedulelink.Link, error) {
	return schedulelink.NewLink(schedulelink.Params{
		ID:                b.ID,
		Slug:              b.Slug,
		Name:              b.Name,
		DurationMinutes:   b.DurationMinutes,
		BufferMinutes:     b.BufferMinutes,
		Timezone:          b.Timezone,
		MaxFutureDays:     b.MaxFutureDays,
		MaxBookingsPerDay: b.MaxBookingsPerDay,
		Status:            b.Status,
		WorkflowID:        b.WorkflowID,
		Participants:      b.Participants,
	})
}

func (b *LinkBuilder) BuildInfra() sqlc.ScheduleLinks {
	row := sqlc.ScheduleLinks{
		ID:              b.ID,
		Slug:            b.Slug,
		Name:            b.Name,
		DurationMinutes: int32(b.DurationMinutes),
		BufferMinutes:   int32(b.BufferMinutes),
		Timezone:        b.Timezone,
		MaxFutureDays:   int32(b.MaxFutureDays),
		Status:          string(b.Status),
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.MaxBookingsPerDay != nil {
		row.MaxBookingsPerDay = pgtype.Int4{Int32: int32(*b.MaxBookingsPerDay), Valid: true}
	}
	if b.WorkflowID != nil {
		row.WorkflowID = pgtype.UUID{Bytes: *b.WorkflowID, Valid: true}
	}
	return row
}

func (b *LinkBuilder) BuildMemberRows() []sqlc.ListLinkMembersRow {
	rows := make([]sqlc.ListLinkMembersRow, len(b.Participants))
	for i, p := range b.Participants {
		rows[i] = sqlc.ListLinkMembersRow{
			UserID:    p.UserID,
			Name:      p.Name,
			Email:     p.Email,
			IsCreator: p.IsCreator,
		}
	}
	return rows
}
