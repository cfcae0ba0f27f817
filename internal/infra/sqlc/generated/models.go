// Written to match `sqlc generate` (v1.29.0, pgx/v5) output for sqlc.yaml;
// regenerating replaces this file. queries_test.go keeps it in step with
// internal/infra/sqlc/queries.

package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityWindows struct {
	ID          uuid.UUID `json:"id"`
	LinkID      uuid.UUID `json:"link_id"`
	UserID      uuid.UUID `json:"user_id"`
	DayOfWeek   int16     `json:"day_of_week"`
	StartMinute int32     `json:"start_minute"`
	EndMinute   int32     `json:"end_minute"`
}

type BookingCalendarEvents struct {
	BookingID     uuid.UUID          `json:"booking_id"`
	UserID        uuid.UUID          `json:"user_id"`
	GoogleEventID string             `json:"google_event_id"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

type Bookings struct {
	ID                uuid.UUID          `json:"id"`
	LinkID            uuid.UUID          `json:"link_id"`
	StartTime         pgtype.Timestamptz `json:"start_time"`
	EndTime           pgtype.Timestamptz `json:"end_time"`
	Status            string             `json:"status"`
	RequesterName     string             `json:"requester_name"`
	RequesterEmail    string             `json:"requester_email"`
	RequesterTimezone string             `json:"requester_timezone"`
	Notes             pgtype.Text        `json:"notes"`
	ContactID         pgtype.UUID        `json:"contact_id"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	CancelledAt       pgtype.Timestamptz `json:"cancelled_at"`
}

type CalendarAccounts struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	Provider    string             `json:"provider"`
	CalendarID  string             `json:"calendar_id"`
	AccessToken string             `json:"access_token"`
	Status      string             `json:"status"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type Contacts struct {
	ID                 uuid.UUID          `json:"id"`
	OwnerID            uuid.UUID          `json:"owner_id"`
	Email              string             `json:"email"`
	Name               string             `json:"name"`
	LastBookedAt       pgtype.Timestamptz `json:"last_booked_at"`
	TotalBookingsCount int32              `json:"total_bookings_count"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
}

type NotificationJobs struct {
	ID        uuid.UUID          `json:"id"`
	Kind      string             `json:"kind"`
	Topic     string             `json:"topic"`
	Payload   []byte             `json:"payload"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	Status    string             `json:"status"`
	Attempts  int32              `json:"attempts"`
	LastError pgtype.Text        `json:"last_error"`
	BookingID pgtype.UUID        `json:"booking_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type ScheduleLinkMembers struct {
	LinkID    uuid.UUID `json:"link_id"`
	UserID    uuid.UUID `json:"user_id"`
	IsCreator bool      `json:"is_creator"`
	Position  int32     `json:"position"`
}

type ScheduleLinks struct {
	ID                uuid.UUID          `json:"id"`
	Slug              string             `json:"slug"`
	Name              string             `json:"name"`
	DurationMinutes   int32              `json:"duration_minutes"`
	BufferMinutes     int32              `json:"buffer_minutes"`
	Timezone          string             `json:"timezone"`
	MaxFutureDays     int32              `json:"max_future_days"`
	MaxBookingsPerDay pgtype.Int4        `json:"max_bookings_per_day"`
	Status            string             `json:"status"`
	WorkflowID        pgtype.UUID        `json:"workflow_id"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

type Users struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type WorkflowSteps struct {
	ID         uuid.UUID `json:"id"`
	WorkflowID uuid.UUID `json:"workflow_id"`
	Timing     string    `json:"timing"`
	Minutes    int32     `json:"minutes"`
	Action     string    `json:"action"`
	Position   int32     `json:"position"`
}

type Workflows struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	State     string             `json:"state"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}
