package telegram

import (
	"fmt"
	"strings"
	"time"

	coreconfig "github.com/m3rciful/prayerbot/core/config"

	tele "gopkg.in/telebot.v4"
)

const defaultLongPollTimeout = 10 * time.Second

// WebhookOptions declares webhook listener settings.
type WebhookOptions struct {
	Listen string
	Port   int
	URL    string
}

// PollerOptions configures BuildPoller.
type PollerOptions struct {
	RunMode                string
	LongPollTimeoutSeconds int
	DropPendingUpdates     bool
	Webhook                WebhookOptions
}

// BuildPoller returns a Telebot poller based on provided options.
func BuildPoller(opts PollerOptions) tele.Poller {
	runMode := strings.ToLower(strings.TrimSpace(opts.RunMode))
	if runMode == coreconfig.RunModeWebhook {
		return &tele.Webhook{
			Listen:      fmt.Sprintf("%s:%d", opts.Webhook.Listen, opts.Webhook.Port),
			DropUpdates: opts.DropPendingUpdates,
			Endpoint:    &tele.WebhookEndpoint{PublicURL: opts.Webhook.URL},
		}
	}

	return &tele.LongPoller{Timeout: longPollTimeout(opts.LongPollTimeoutSeconds)}
}

func longPollTimeout(seconds int) time.Duration {
	if seconds <= 0 {
		return defaultLongPollTimeout
	}
	return time.Duration(seconds) * time.Second
}
