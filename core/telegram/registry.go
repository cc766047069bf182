package telegram

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/m3rciful/prayerbot/core/logger"
	"github.com/m3rciful/prayerbot/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

// Registry holds bot commands and the text fallback.
type Registry struct {
	commands     map[string]commands.Command
	order        []string
	textFallback tele.HandlerFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]commands.Command)}
}

// RegisterCommand adds a new command. Registration order is the menu order.
func (r *Registry) RegisterCommand(name string, cmd commands.Command) {
	if r == nil || name == "" || cmd.Handler == nil || cmd.Description == "" {
		logger.LogEvent(context.Background(), logger.TWire, slog.LevelWarn, "register.command.skip",
			slog.String("command", name),
			slog.String("cause", "invalid"),
		)
		return
	}
	if name[0] != '/' {
		logger.LogEvent(context.Background(), logger.TWire, slog.LevelWarn, "register.command.skip",
			slog.String("command", name),
			slog.String("cause", "no_slash_prefix"),
		)
		return
	}
	if _, exists := r.commands[name]; exists {
		logger.LogEvent(context.Background(), logger.TWire, slog.LevelWarn, "register.command.duplicate",
			slog.String("command", name),
		)
		return
	}
	r.commands[name] = cmd
	r.order = append(r.order, name)
}

// ListCommands returns the menu entries, optionally filtering out hidden commands.
func (r *Registry) ListCommands(visibleOnly bool) []tele.Command {
	list := make([]tele.Command, 0, len(r.order))
	for _, name := range r.order {
		meta := r.commands[name]
		if visibleOnly && meta.Hidden {
			continue
		}
		list = append(list, tele.Command{Text: strings.TrimPrefix(name, "/"), Description: meta.Description})
	}
	return list
}

// LookupCommand searches for a command by name or its aliases and returns the canonical key with metadata if found.
func (r *Registry) LookupCommand(name string) (string, commands.Command, bool) {
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	if cmd, ok := r.commands[name]; ok {
		return name, cmd, true
	}
	keys := make([]string, 0, len(r.commands))
	for key := range r.commands {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		for _, alias := range r.commands[key].Aliases {
			if alias == name || "/"+alias == name {
				return key, r.commands[key], true
			}
		}
	}
	return "", commands.Command{}, false
}

// Commands returns all registered commands.
func (r *Registry) Commands() map[string]commands.Command {
	return r.commands
}

// Names returns registered command names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// SetTextFallback sets the handler for text that is not a registered command.
func (r *Registry) SetTextFallback(h tele.HandlerFunc) {
	r.textFallback = h
}

// TextFallback returns the current text fallback handler.
func (r *Registry) TextFallback() tele.HandlerFunc {
	return r.textFallback
}

// CommandMenu is the part of *tele.Bot used to publish the command menu.
type CommandMenu interface {
	SetCommands(opts ...any) error
}

// InitBotCommands publishes the visible commands as the Telegram command menu.
func InitBotCommands(bot CommandMenu, reg *Registry) {
	list := reg.ListCommands(true)
	if err := bot.SetCommands(list); err != nil {
		logger.LogEvent(context.Background(), logger.TWire, slog.LevelError, "register.commands.set_failed",
			slog.String("err", err.Error()),
		)
		return
	}
	logger.LogEvent(context.Background(), logger.TWire, slog.LevelInfo, "register.commands.set",
		slog.Int("commands", len(list)),
	)
}
