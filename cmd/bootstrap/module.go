package bootstrap

import (
	"meeting-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.BusyTimeModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
