package components

import (
	"meeting-scheduler/internal/infra/busytime"
	"meeting-scheduler/internal/infra/readstore"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"
	"meeting-scheduler/internal/infra/uow"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Repositories are created per transaction by the unit of work; only the
// pool-bound readstores are provided here.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking confirmation view
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Calendar accounts
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CalendarAccountQueries)),
		),
		fx.Annotate(
			readstore.NewCalendarAccountReadStore,
			fx.As(new(busytime.AccountStore)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
