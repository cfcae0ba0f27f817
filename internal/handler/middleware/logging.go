package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	HeaderRequestID = "X-Request-ID"

	requestIDKey     = "request_id"
	requestLoggerKey = "request_logger"
	maxStackLines    = 12
	maxRequestIDLen  = 64
)

// NewLogger builds the process logger: JSON in release mode, text otherwise,
// timestamps rendered in the configured zone and format.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoggingMiddleware tags each request with an ID (reusing a sane incoming
// X-Request-ID) and logs one line when it completes.
func LoggingMiddleware(logger *slog.Logger, cfg config.LogConfig) gin.HandlerFunc {
	if logger == nil {
		logger = NewLogger(cfg)
	}
	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	return func(c *gin.Context) {
		started := time.Now()

		requestID := incomingRequestID(c.GetHeader(HeaderRequestID))
		if requestID == "" {
			requestID = newRequestID(started.In(zone))
		}
		c.Set(requestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)

		reqLogger := logger.With(slog.String("request_id", requestID))
		c.Set(requestLoggerKey, reqLogger)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(started)),
		}
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		for _, p := range c.Params {
			attrs = append(attrs, slog.String("param_"+p.Key, p.Value))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := levelForStatus(status)
		if level == slog.LevelError {
			if last := c.Errors.Last(); last != nil {
				attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(last.Err, maxStackLines)))
			}
		}

		reqLogger.LogAttrs(c.Request.Context(), level, "request completed", attrs...)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogger returns the request-scoped logger, or the default one outside
// LoggingMiddleware.
func RequestLogger(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(requestLoggerKey); ok {
		if l, ok := v.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}

func incomingRequestID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxRequestIDLen {
		return ""
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return ""
		}
	}
	return id
}

func newRequestID(now time.Time) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return now.Format("20060102150405") + "-" + strconv.FormatInt(now.UnixNano()%100000000, 10)
	}
	return now.Format("20060102150405") + "-" + hex.EncodeToString(b)
}
