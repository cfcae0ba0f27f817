package response

import (
	"time"

	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityResponse struct {
	Date     string         `json:"date"`
	Timezone string         `json:"timezone"`
	Slots    []SlotResponse `json:"slots"`
}

type CreateBookingResponse struct {
	ID          uuid.UUID `json:"id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	CancelToken string    `json:"cancelToken"`
}

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	LinkID    uuid.UUID `json:"linkId"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timezone  string    `json:"timezone"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CancelBookingResponse struct {
	ID               uuid.UUID `json:"id"`
	Status           string    `json:"status"`
	AlreadyCancelled bool      `json:"alreadyCancelled"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{Start: s.Start, End: s.End}
	}
	return &AvailabilityResponse{
		Date:     v.Date,
		Timezone: v.Timezone,
		Slots:    slots,
	}
}

// FromCreateBookingResult renders the booking in the requester's timezone.
func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	b := r.Booking
	loc := b.Requester().Timezone()
	return &CreateBookingResponse{
		ID:          b.ID(),
		Start:       b.Start().In(loc),
		End:         b.End().In(loc),
		Status:      string(b.Status()),
		CancelToken: r.CancelToken,
	}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:        v.ID,
		LinkID:    v.LinkID,
		Start:     v.Start,
		End:       v.End,
		Status:    v.Status,
		Name:      v.Name,
		Email:     v.Email,
		Timezone:  v.Timezone,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
	}
}

func FromCancelBookingResult(r *commands.CancelBookingResult) *CancelBookingResponse {
	return &CancelBookingResponse{
		ID:               r.BookingID,
		Status:           "cancelled",
		AlreadyCancelled: r.AlreadyCancelled,
	}
}
