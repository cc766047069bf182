package router

import (
	"log/slog"
	"strings"
	"time"

	"github.com/m3rciful/prayerbot/core/logger"
	tghelpers "github.com/m3rciful/prayerbot/core/telegram/helpers"
	"github.com/m3rciful/prayerbot/core/telegram/middleware"
	"github.com/m3rciful/prayerbot/core/telegram/netutil"

	tele "gopkg.in/telebot.v4"
)

func handleWithSummary(c tele.Context, handlerName string, start time.Time, statusOverride, outcomeOverride string, fn func() error, extras ...slog.Attr) error {
	tghelpers.WithHandler(c, handlerName)
	err := fn()
	logHandlerSummary(c, handlerName, start, statusOverride, outcomeOverride, err, extras...)
	return err
}

func logHandlerSummary(c tele.Context, handlerName string, start time.Time, statusOverride, outcomeOverride string, err error, extras ...slog.Attr) {
	ctx := tghelpers.WithHandler(c, handlerName)

	status := statusOverride
	if status == "" {
		status = logger.Status(err)
	}
	outcome := outcomeOverride
	if outcome == "" {
		outcome = logger.Status(err)
	}

	attrs := []slog.Attr{
		slog.String("status", status),
		slog.String("outcome", outcome),
		slog.Int("messages", middleware.GetCounters(c)),
		slog.Duration("duration", time.Since(start)),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("err", logger.SanitizeLimit(netutil.SanitizeError(err), 256)),
			slog.String("error_kind", netutil.Classify(err)),
			slog.String("cause", handlerName),
		)
	}
	attrs = append(attrs, extras...)
	logger.LogEvent(ctx, nil, slog.LevelInfo, "handler.handled", attrs...)
}

func normalizeHandlerName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "unknown"
	}
	name = strings.TrimPrefix(name, "/")
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ToLower(name)
}
