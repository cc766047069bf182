package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	coreconfig "github.com/m3rciful/prayerbot/core/config"
	"github.com/m3rciful/prayerbot/core/logger"
	tghelpers "github.com/m3rciful/prayerbot/core/telegram/helpers"
	"github.com/m3rciful/prayerbot/core/telegram/netutil"

	tele "gopkg.in/telebot.v4"
)

// Route declares a single bot handler bound to an arbitrary endpoint.
// Endpoint values are passed directly to tele.Bot.Handle.
type Route struct {
	Endpoint any
	Handler  tele.HandlerFunc
}

// RunOptions controls the behaviour of RunTelegram.
type RunOptions struct {
	Config   *coreconfig.Config
	Registry *Registry

	Middlewares []Middleware
	Routes      []Route

	// OnError receives errors returned by handlers, including recovered panics.
	OnError func(err error, c tele.Context)

	DisableWebhookCleanup bool

	OnStart func(ctx context.Context, rt Runtime) error
	OnStop  func(ctx context.Context, rt Runtime) error
}

// Runtime exposes runtime components to lifecycle hooks.
type Runtime struct {
	Bot      *tele.Bot
	Registry *Registry
}

// RunTelegram composes and runs a Telegram bot until the provided context is done.
func RunTelegram(ctx context.Context, opts RunOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Config == nil {
		return fmt.Errorf("telegram: nil config provided")
	}

	cfg := opts.Config
	reg := opts.Registry
	if reg == nil {
		reg = NewRegistry()
	}

	poller := BuildPoller(PollerOptions{
		RunMode:                cfg.Telegram.RunMode,
		LongPollTimeoutSeconds: cfg.Telegram.LongPollTimeoutSeconds,
		DropPendingUpdates:     cfg.Telegram.DropPending(),
		Webhook: WebhookOptions{
			Listen: cfg.Webhook.Listen,
			Port:   cfg.Webhook.Port,
			URL:    cfg.Webhook.URL,
		},
	})

	onError := opts.OnError
	if onError == nil {
		onError = LogHandlerError
	}

	settings := tele.Settings{
		Token:       cfg.Telegram.Token,
		Poller:      poller,
		Client:      BuildHTTPClient(),
		Synchronous: true,
		OnError:     onError,
	}

	buildStart := time.Now()
	bot, err := tele.NewBot(settings)
	if err != nil {
		return fmt.Errorf("telegram: bot initialization failed: %s", netutil.SanitizeError(err))
	}
	buildTook := time.Since(buildStart)

	rt := Runtime{
		Bot:      bot,
		Registry: reg,
	}

	switch p := poller.(type) {
	case *tele.Webhook:
		logger.LogEvent(ctx, logger.TG, slog.LevelInfo, "mode",
			slog.String("mode", coreconfig.RunModeWebhook),
			slog.String("listen", p.Listen),
			slog.String("public_url", p.Endpoint.PublicURL),
			slog.Duration("duration", buildTook),
		)
	case *tele.LongPoller:
		logger.LogEvent(ctx, logger.TG, slog.LevelInfo, "mode",
			slog.String("mode", coreconfig.RunModeLongpoll),
			slog.Duration("timeout", p.Timeout),
			slog.Duration("duration", buildTook),
		)

		if !opts.DisableWebhookCleanup {
			dropPending := cfg.Telegram.DropPending()
			if err := deleteWebhook(ctx, settings.Client, cfg.Telegram.Token, dropPending); err != nil {
				logger.LogEvent(ctx, logger.TG, slog.LevelWarn, "delete_webhook",
					slog.String("status", "fail"),
					slog.String("err", netutil.SanitizeError(err)),
					slog.String("error_kind", netutil.Classify(err)),
				)
			} else {
				logger.LogEvent(ctx, logger.TG, slog.LevelInfo, "delete_webhook",
					slog.String("status", "ok"),
					slog.Bool("drop_pending", dropPending),
				)
			}
		}
	}

	for _, mw := range opts.Middlewares {
		if mw.Use == nil {
			continue
		}
		bot.Use(mw.Use)
	}

	for _, route := range opts.Routes {
		if route.Endpoint == nil || route.Handler == nil {
			continue
		}
		bot.Handle(route.Endpoint, route.Handler)
	}

	InitBotCommands(bot, reg)

	if opts.OnStart != nil {
		if err := opts.OnStart(ctx, rt); err != nil {
			return err
		}
	}

	runDone := make(chan struct{})
	go func() {
		bot.Start()
		close(runDone)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		bot.Stop()
		<-runDone
		runErr = ctx.Err()
	case <-runDone:
	}

	var stopErr error
	if opts.OnStop != nil {
		stopErr = opts.OnStop(context.WithoutCancel(ctx), rt)
	}

	if stopErr != nil {
		return stopErr
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

// LogHandlerError is the default OnError hook: it logs the error with the update's rid and ids.
func LogHandlerError(err error, c tele.Context) {
	logger.LogEvent(errorContext(c), logger.TG, slog.LevelError, "handler.error",
		slog.String("status", "error"),
		slog.String("err", netutil.SanitizeError(err)),
		slog.String("error_kind", netutil.Classify(err)),
	)
}

// errorContext returns the context stored by the logger middleware, or builds one from the update.
// Poller errors arrive without a tele.Context.
func errorContext(c tele.Context) context.Context {
	if c == nil {
		return context.Background()
	}
	return tghelpers.BuildContext(c)
}

func deleteWebhook(ctx context.Context, client *http.Client, token string, dropPending bool) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("empty token")
	}
	if client == nil {
		client = http.DefaultClient
	}
	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/deleteWebhook", token)
	form := url.Values{"drop_pending_updates": {strconv.FormatBool(dropPending)}}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("deleteWebhook status: %s", resp.Status)
	}
	return nil
}
