// Written to match `sqlc generate` (v1.29.0, pgx/v5) output for sqlc.yaml;
// regenerating replaces this file. queries_test.go keeps it in step with
// internal/infra/sqlc/queries.
// source: calendar_accounts.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const getCalendarAccountByUserID = `-- name: GetCalendarAccountByUserID :one
SELECT id, user_id, provider, calendar_id, access_token, status, created_at, updated_at
FROM calendar_accounts
WHERE user_id = $1
`

func (q *Queries) GetCalendarAccountByUserID(ctx context.Context, db DBTX, userID uuid.UUID) (CalendarAccounts, error) {
	row := db.QueryRow(ctx, getCalendarAccountByUserID, userID)
	var i CalendarAccounts
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Provider,
		&i.CalendarID,
		&i.AccessToken,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
