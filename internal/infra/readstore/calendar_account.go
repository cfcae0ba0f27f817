package readstore

import (
	"context"

	"meeting-scheduler/internal/infra"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"
	"meeting-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const calendarAccountRevoked = "revoked"

type CalendarAccount struct {
	UserID      uuid.UUID
	CalendarID  string
	AccessToken string
	Revoked     bool
}

type CalendarAccountQueries interface {
	GetCalendarAccountByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.CalendarAccounts, error)
}

type CalendarAccountReadStore struct {
	queries CalendarAccountQueries
	db      sqlc.DBTX
}

func NewCalendarAccountReadStore(queries CalendarAccountQueries, db sqlc.DBTX) *CalendarAccountReadStore {
	return &CalendarAccountReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CalendarAccountReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*CalendarAccount, error) {
	row, err := r.queries.GetCalendarAccountByUserID(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("calendar account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find calendar account", err)
	}

	return &CalendarAccount{
		UserID:      row.UserID,
		CalendarID:  row.CalendarID,
		AccessToken: row.AccessToken,
		Revoked:     row.Status == calendarAccountRevoked,
	}, nil
}
