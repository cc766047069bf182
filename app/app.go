package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/m3rciful/prayerbot/core/bootstrap"
	"github.com/m3rciful/prayerbot/core/logger"
	coretelegram "github.com/m3rciful/prayerbot/core/telegram"
	"github.com/m3rciful/prayerbot/core/telegram/commands"
	tghelpers "github.com/m3rciful/prayerbot/core/telegram/helpers"
	"github.com/m3rciful/prayerbot/core/telegram/router"
	"github.com/m3rciful/prayerbot/core/telegram/state"
	"github.com/m3rciful/prayerbot/prayer"

	tele "gopkg.in/telebot.v4"
)

// App wires the prayer dispatcher into the Telegram runtime.
type App struct {
	cfg        *Config
	store      *state.Store
	dispatcher *prayer.Dispatcher

	// runCtx is cancelled on shutdown; cleanup delays observe it.
	runCtx context.Context
}

// Bootstrap initializes shared infrastructure and builds the application.
func Bootstrap(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config")
	}
	res, err := bootstrap.Run(bootstrap.Options{Config: cfg.CoreConfig()})
	if err != nil {
		return nil, err
	}
	return New(cfg, res.Store), nil
}

// New builds the application around an existing store.
func New(cfg *Config, store *state.Store) *App {
	return &App{
		cfg:   cfg,
		store: store,
		dispatcher: prayer.New(store, prayer.Options{
			Group:        cfg.Prayer.Group(),
			Mention:      cfg.Telegram.Username,
			CleanupDelay: cfg.Prayer.CleanupDelay(),
		}),
		runCtx: context.Background(),
	}
}

// TelegramRunOptions registers the prayer commands and the text route.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	for _, cmd := range prayer.Commands() {
		reg.RegisterCommand(cmd.Endpoint(), commands.Command{
			Handler:     a.commandHandler(cmd),
			Description: cmd.Description(),
		})
	}
	reg.SetTextFallback(a.handleText)

	routes := router.CommandRoutes(reg)
	routes = append(routes, router.TextRoutes(reg, router.TextOptions{})...)

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(),
		Routes:      routes,
		OnError:     a.onError,
		OnStart:     a.onStart,
	}, nil
}

func (a *App) onStart(ctx context.Context, rt coretelegram.Runtime) error {
	a.runCtx = ctx
	if a.dispatcher.Mention() == "" && rt.Bot != nil && rt.Bot.Me != nil {
		a.dispatcher.SetMention(rt.Bot.Me.Username)
	}
	logger.Info(ctx, logger.CompApp, "prayer.ready",
		slog.String("mention", a.dispatcher.Mention()),
		slog.Int64("group_id", a.cfg.Prayer.GroupID),
		slog.Int("thread_id", a.cfg.Prayer.TopicID),
	)
	return nil
}

func (a *App) commandHandler(cmd prayer.Command) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx, cancel := a.updateContext(c)
		defer cancel()
		return a.dispatcher.Execute(ctx, cmd, toUpdate(c), coretelegram.NewContextMessenger(c))
	}
}

func (a *App) handleText(c tele.Context) error {
	ctx, cancel := a.updateContext(c)
	defer cancel()
	return a.dispatcher.HandleText(ctx, toUpdate(c), coretelegram.NewContextMessenger(c))
}

func (a *App) onError(err error, c tele.Context) {
	coretelegram.LogHandlerError(err, c)
	if c == nil || c.Message() == nil {
		return
	}
	ctx, cancel := a.updateContext(c)
	defer cancel()
	a.dispatcher.NotifyError(ctx, toUpdate(c), coretelegram.NewContextMessenger(c))
}

// updateContext carries the update's log metadata and is cancelled when the bot shuts down.
func (a *App) updateContext(c tele.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(tghelpers.BuildContext(c))
	stop := context.AfterFunc(a.runCtx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func toUpdate(c tele.Context) prayer.Update {
	var upd prayer.Update
	if user := c.Sender(); user != nil {
		upd.UserID = user.ID
	}
	if chat := c.Chat(); chat != nil {
		upd.ChatID = chat.ID
		upd.Direct = chat.Type == tele.ChatPrivate
	}
	if msg := c.Message(); msg != nil {
		upd.Text = msg.Text
		upd.Args = commandArgs(msg.Text)
	}
	return upd
}

// commandArgs returns the words after the leading /command token.
// telebot's Payload stops at the first newline, so the whole text is split instead.
func commandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return nil
	}
	return fields[1:]
}
