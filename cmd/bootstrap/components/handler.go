package components

import (
	"meeting-scheduler/internal/handler"
	"meeting-scheduler/internal/handler/api"
	"meeting-scheduler/internal/handler/middleware"
	"meeting-scheduler/internal/infra/ratelimit"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(rdb *redis.Client) middleware.RateLimiter {
	return ratelimit.NewRedisLimiter(rdb)
}
