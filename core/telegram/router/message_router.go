package router

import (
	"strings"
	"time"

	tg "github.com/m3rciful/prayerbot/core/telegram"

	tele "gopkg.in/telebot.v4"
)

// TextOptions controls fallback behaviour for text updates.
type TextOptions struct {
	// UnknownCommand handles "/..." text that matched no registered command. Nil means ignore.
	UnknownCommand tele.HandlerFunc
}

// TextRoutes builds the route for plain text messages.
// Registered aliases are resolved first, then the registry text fallback runs.
func TextRoutes(reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := strings.TrimSpace(c.Text())

		if strings.HasPrefix(text, "/") {
			if reg != nil {
				token, _, _ := strings.Cut(text, " ")
				token, _, _ = strings.Cut(token, "@")
				if key, cmd, ok := reg.LookupCommand(token); ok && cmd.Handler != nil {
					return handleWithSummary(c, normalizeHandlerName(key), start, "", "", func() error {
						return cmd.Handler(c)
					})
				}
			}
			if opts.UnknownCommand != nil {
				return handleWithSummary(c, "unknown_command", start, "", "", func() error {
					return opts.UnknownCommand(c)
				})
			}
			logHandlerSummary(c, "unknown_command", start, "skip", "ok", nil)
			return nil
		}

		if reg != nil {
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "text", start, "", "", func() error {
					return fb(c)
				})
			}
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}

	return []tg.Route{
		{Endpoint: tele.OnText, Handler: wrap(handler)},
	}
}
