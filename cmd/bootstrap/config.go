package bootstrap

import (
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		clock.NewRealClock,
	),
)
