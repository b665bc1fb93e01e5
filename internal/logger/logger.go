package logger

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Log field names shared across packages.
const (
	FldRequestID = "request_id"
	FldMethod    = "method"
	FldPath      = "path"
	FldStatus    = "status"
	FldLatency   = "latency"
	FldIP        = "ip"
	FldEventID   = "event_id"
	FldMessageID = "message_id"
	FldObject    = "object"
	FldEmail     = "email"
)

// Init configures the global zerolog logger and returns it.
func Init(level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var l zerolog.Logger
	if format == "json" {
		l = zerolog.New(os.Stdout)
	} else {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}
	l = l.With().Timestamp().Logger()
	log.Logger = l
	return l
}

// Middleware logs one line per request after the handler chain finished.
func Middleware(l zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// let the app error handler set the final status before we log it
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = l.Error()
		case status >= fiber.StatusBadRequest:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		rid, _ := c.Locals("requestid").(string)
		ev.Str(FldRequestID, rid).
			Str(FldMethod, c.Method()).
			Str(FldPath, c.Path()).
			Int(FldStatus, status).
			Dur(FldLatency, time.Since(start)).
			Str(FldIP, c.IP()).
			Msg("request")
		return nil
	}
}
