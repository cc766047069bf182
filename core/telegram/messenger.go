package telegram

import (
	"context"
	"log/slog"
	"time"

	"github.com/m3rciful/prayerbot/core/logger"
	"github.com/m3rciful/prayerbot/core/telegram/middleware"
	"github.com/m3rciful/prayerbot/core/telegram/netutil"

	tele "gopkg.in/telebot.v4"
)

// ContextMessenger performs the outbound calls available while handling one update.
type ContextMessenger struct {
	c tele.Context
}

// NewContextMessenger binds a messenger to the update being handled.
func NewContextMessenger(c tele.Context) *ContextMessenger {
	return &ContextMessenger{c: c}
}

// Reply answers the triggering message in its own chat.
func (m *ContextMessenger) Reply(ctx context.Context, text string, markdown bool) error {
	start := time.Now()
	err := m.c.Reply(text, sendOptions(0, markdown))
	logSend(ctx, "reply", start, err)
	return err
}

// SendTo posts text to chatID, inside forum thread threadID when it is non-zero.
func (m *ContextMessenger) SendTo(ctx context.Context, chatID int64, threadID int, text string, markdown bool) error {
	start := time.Now()
	_, err := m.c.Bot().Send(tele.ChatID(chatID), text, sendOptions(threadID, markdown))
	if err == nil {
		middleware.IncMessages(m.c)
	}
	logSend(ctx, "send", start, err,
		slog.Int64("group_id", chatID),
		slog.Int("thread_id", threadID),
	)
	return err
}

// DeleteTrigger deletes the message that triggered the update.
func (m *ContextMessenger) DeleteTrigger(ctx context.Context) error {
	start := time.Now()
	err := m.c.Delete()
	logSend(ctx, "delete", start, err)
	return err
}

func sendOptions(threadID int, markdown bool) *tele.SendOptions {
	opts := &tele.SendOptions{ThreadID: threadID}
	if markdown {
		opts.ParseMode = tele.ModeMarkdown
	}
	return opts
}

func logSend(ctx context.Context, action string, start time.Time, err error, extra ...slog.Attr) {
	attrs := append([]slog.Attr{
		slog.String("status", logger.Status(err)),
		slog.String("action", action),
		slog.Duration("duration", time.Since(start)),
	}, extra...)
	if err != nil {
		attrs = append(attrs,
			slog.String("err", netutil.SanitizeError(err)),
			slog.String("error_kind", netutil.Classify(err)),
		)
		logger.Debug(ctx, logger.CompSender, "send.fail", attrs...)
		return
	}
	logger.Debug(ctx, logger.CompSender, "send.success", attrs...)
}
