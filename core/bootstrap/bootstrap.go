package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	coreconfig "github.com/m3rciful/prayerbot/core/config"
	"github.com/m3rciful/prayerbot/core/logger"
	"github.com/m3rciful/prayerbot/core/telegram/state"
)

// Options control the generic bootstrap pipeline shared between bots.
type Options struct {
	Config *coreconfig.Config

	LoggerInit func(*coreconfig.Config) error
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	Store *state.Store
}

// Run initializes the logger and the in-memory user store.
func Run(opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	store := state.NewStore()
	logger.Info(context.Background(), logger.CompApp, "bootstrap.done",
		slog.String("status", "ok"),
		slog.String("mode", opts.Config.Telegram.RunMode),
	)
	return &Result{Store: store}, nil
}
