package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"meeting-scheduler/internal/handler/api"
	"meeting-scheduler/internal/handler/middleware"
	"meeting-scheduler/internal/pkg/config"
)

type route struct {
	Method     string
	Path       string
	Middleware []gin.HandlerFunc
	Handler    gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	limiter middleware.RateLimiter,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, newRouteLimits(cfg.RateLimit, limiter), availabilityHandler, bookingHandler)
}

// routeLimits holds the per-IP limits of the public endpoints; both are empty
// when rate limiting is disabled.
type routeLimits struct {
	read []gin.HandlerFunc
	book []gin.HandlerFunc
}

func newRouteLimits(cfg config.RateLimitConfig, limiter middleware.RateLimiter) routeLimits {
	if !cfg.Enabled {
		return routeLimits{}
	}
	return routeLimits{
		read: []gin.HandlerFunc{middleware.RateLimit(limiter, "read", cfg.ReadLimit, cfg.Window)},
		book: []gin.HandlerFunc{middleware.RateLimit(limiter, "book", cfg.BookLimit, cfg.Window)},
	}
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, limits routeLimits, availabilityHandler *api.AvailabilityHandler, bookingHandler *api.BookingHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		links := apiGroup.Group("/links/:slug")
		addRoutes(links, []route{
			{Method: http.MethodGet, Path: "/availability", Middleware: limits.read, Handler: availabilityHandler.GetAvailability},
			{Method: http.MethodPost, Path: "/bookings", Middleware: limits.book, Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: availabilityHandler.GetBooking},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.Cancel},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := append(append([]gin.HandlerFunc(nil), r.Middleware...), r.Handler)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h...)
		case http.MethodPost:
			g.POST(r.Path, h...)
		case http.MethodPut:
			g.PUT(r.Path, h...)
		case http.MethodPatch:
			g.PATCH(r.Path, h...)
		case http.MethodDelete:
			g.DELETE(r.Path, h...)
		default:
			g.Any(r.Path, h...)
		}
	}
}
