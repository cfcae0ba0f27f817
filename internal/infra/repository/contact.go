package repository

import (
	"context"

	"meeting-scheduler/internal/domain/contact"
	"meeting-scheduler/internal/infra"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"
	"meeting-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ContactWriteQueries interface {
	UpsertContact(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertContactParams) (sqlc.UpsertContactRow, error)
}

type ContactRepository struct {
	queries ContactWriteQueries
	db      sqlc.DBTX
}

func NewContactRepository(queries ContactWriteQueries, db sqlc.DBTX) *ContactRepository {
	return &ContactRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert returns the ID of the existing (owner, email) contact when there is one.
func (r *ContactRepository) Upsert(ctx context.Context, tx sqlc.DBTX, c *contact.Contact) (uuid.UUID, error) {
	params := sqlc.UpsertContactParams{
		ID:           c.ID(),
		OwnerID:      c.OwnerID(),
		Email:        c.Email(),
		Name:         c.Name(),
		LastBookedAt: pgconv.TimePtrToPgtype(c.LastBookedAt()),
	}

	row, err := r.queries.UpsertContact(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert contact", err)
	}

	return row.ID, nil
}
