package components

import (
	"log/slog"

	"meeting-scheduler/internal/infra/busytime"
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var BusyTimeModule = fx.Module("busytime",
	fx.Provide(
		NewBusyTime,
	),
)

type BusyTimeResult struct {
	fx.Out

	Provider    shared.BusyTimeProvider
	Invalidator shared.BusyTimeInvalidator
	Events      shared.CalendarEventWriter
}

// NewBusyTime selects the busy time source and cache from config.
func NewBusyTime(
	cfg config.Config,
	accounts busytime.AccountStore,
	rdb *redis.Client,
	clk clock.Clock,
	logger *slog.Logger,
) (BusyTimeResult, error) {
	var (
		source shared.BusyTimeProvider
		events shared.CalendarEventWriter
	)
	switch cfg.BusyTime.Provider {
	case "google":
		source = busytime.NewGoogleProvider(cfg.BusyTime.GoogleEndpoint, accounts)
		events = busytime.NewGoogleEventWriter(cfg.BusyTime.GoogleEndpoint, accounts)
	case "noop":
		noop := busytime.NewNoopProvider()
		return BusyTimeResult{Provider: noop, Invalidator: noop, Events: busytime.NoopEventWriter{}}, nil
	default:
		return BusyTimeResult{}, errs.New("unknown BUSY_TIME_PROVIDER: " + cfg.BusyTime.Provider)
	}

	var cache busytime.Cache
	switch cfg.BusyTime.Cache {
	case "redis":
		cache = busytime.NewRedisCache(rdb)
	case "memory":
		cache = busytime.NewMemoryCache(0, clk.Now)
	case "none":
		return BusyTimeResult{Provider: source, Invalidator: busytime.NewNoopProvider(), Events: events}, nil
	default:
		return BusyTimeResult{}, errs.New("unknown BUSY_TIME_CACHE: " + cfg.BusyTime.Cache)
	}

	logger.Info("busy time source configured",
		"provider", cfg.BusyTime.Provider,
		"cache", cfg.BusyTime.Cache,
		"ttl", cfg.BusyTime.CacheTTL.String(),
	)

	cached := busytime.NewCachingProvider(source, cache, cfg.BusyTime.CacheTTL, logger)
	return BusyTimeResult{Provider: cached, Invalidator: cached, Events: events}, nil
}
