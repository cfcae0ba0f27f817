// Written to match `sqlc generate` (v1.29.0, pgx/v5) output for sqlc.yaml;
// regenerating replaces this file. queries_test.go keeps it in step with
// internal/infra/sqlc/queries.
// source: contacts.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const upsertContact = `-- name: UpsertContact :one
INSERT INTO contacts (id, owner_id, email, name, last_booked_at, total_bookings_count)
VALUES ($1, $2, $3, $4, $5, 1)
ON CONFLICT (owner_id, email) DO UPDATE
SET name = EXCLUDED.name,
    last_booked_at = EXCLUDED.last_booked_at,
    total_bookings_count = contacts.total_bookings_count + 1,
    updated_at = now()
RETURNING id, total_bookings_count
`

type UpsertContactParams struct {
	ID           uuid.UUID          `json:"id"`
	OwnerID      uuid.UUID          `json:"owner_id"`
	Email        string             `json:"email"`
	Name         string             `json:"name"`
	LastBookedAt pgtype.Timestamptz `json:"last_booked_at"`
}

type UpsertContactRow struct {
	ID                 uuid.UUID `json:"id"`
	TotalBookingsCount int32     `json:"total_bookings_count"`
}

func (q *Queries) UpsertContact(ctx context.Context, db DBTX, arg UpsertContactParams) (UpsertContactRow, error) {
	row := db.QueryRow(ctx, upsertContact,
		arg.ID,
		arg.OwnerID,
		arg.Email,
		arg.Name,
		arg.LastBookedAt,
	)
	var i UpsertContactRow
	err := row.Scan(&i.ID, &i.TotalBookingsCount)
	return i, err
}
