package shared

import (
	"context"
	"errors"
	"time"

	"meeting-scheduler/internal/domain/interval"

	"github.com/google/uuid"
)

var (
	ErrNotConnected = errors.New("calendar account not connected")
	ErrTokenRevoked = errors.New("calendar access revoked")
)

// BusyTimeProvider reports the ranges a participant is busy between from and to.
type BusyTimeProvider interface {
	BusyTimes(ctx context.Context, participant uuid.UUID, from, to time.Time) ([]interval.Range, error)
}

// BusyTimeInvalidator drops every cached busy time of a participant, across
// all links and spans.
type BusyTimeInvalidator interface {
	Invalidate(ctx context.Context, participant uuid.UUID) error
}
