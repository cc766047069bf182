package router

import (
	"context"
	"log/slog"
	"time"

	"github.com/m3rciful/prayerbot/core/logger"
	tg "github.com/m3rciful/prayerbot/core/telegram"
	"github.com/m3rciful/prayerbot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// CommandRoutes prepares command handlers wrapped with shared middleware and a summary log line.
func CommandRoutes(reg *tg.Registry) []tg.Route {
	if reg == nil {
		return nil
	}

	names := reg.Names()
	routes := make([]tg.Route, 0, len(names))
	for _, cmd := range names {
		def := reg.Commands()[cmd]
		name := normalizeHandlerName(cmd)
		next := def.Handler
		h := func(c tele.Context) error {
			return handleWithSummary(c, name, time.Now(), "", "", func() error {
				return next(c)
			})
		}
		routes = append(routes, tg.Route{
			Endpoint: cmd,
			Handler:  wrap(h),
		})
	}

	logger.LogEvent(context.Background(), logger.TWire, slog.LevelInfo, "tg.wire.complete",
		slog.Int("commands", len(names)),
	)

	return routes
}

func wrap(h tele.HandlerFunc) tele.HandlerFunc {
	return middleware.LoggerMiddleware(middleware.RecoverMiddleware(middleware.MessageMetricsMiddleware(h)))
}
