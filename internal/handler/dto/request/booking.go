package request

import (
	"strings"
	"time"

	"meeting-scheduler/internal/usecase/commands"
)

type CreateBookingRequest struct {
	Start    time.Time `json:"start" binding:"required"`
	End      time.Time `json:"end" binding:"required"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Timezone string    `json:"timezone"`
	Notes    *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToCommand() commands.BookingRequest {
	notes := ""
	if r.Notes != nil {
		notes = strings.TrimSpace(*r.Notes)
	}
	return commands.BookingRequest{
		Start:    r.Start,
		End:      r.End,
		Name:     r.Name,
		Email:    r.Email,
		Timezone: strings.TrimSpace(r.Timezone),
		Notes:    notes,
	}
}

type CancelBookingRequest struct {
	Token string `json:"token" binding:"required"`
}

type AvailabilityQuery struct {
	Date     string `form:"date" binding:"required"`
	Timezone string `form:"timezone"`
}
