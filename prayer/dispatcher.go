package prayer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/m3rciful/prayerbot/core/logger"
	"github.com/m3rciful/prayerbot/core/telegram/netutil"
	"github.com/m3rciful/prayerbot/core/telegram/state"
)

// Options configures a Dispatcher.
type Options struct {
	// Group is where prayer requests and non-direct replies are posted.
	Group Destination
	// Mention is the bot's @username; group messages without it are not answered.
	Mention string
	// CleanupDelay is waited before deleting a triggering message outside direct chats.
	CleanupDelay time.Duration
}

// Dispatcher runs commands and free-text messages against the user store.
type Dispatcher struct {
	store     *state.Store
	responder Responder
	mention   mention
	delay     time.Duration
}

// New returns a Dispatcher working on store.
func New(store *state.Store, opts Options) *Dispatcher {
	if store == nil {
		store = state.NewStore()
	}
	return &Dispatcher{
		store:     store,
		responder: Responder{Group: opts.Group},
		mention:   newMention(opts.Mention),
		delay:     opts.CleanupDelay,
	}
}

// SetMention replaces the mention token. It must be called before updates are handled.
func (d *Dispatcher) SetMention(token string) {
	d.mention = newMention(token)
}

// Mention returns the active mention token, empty when unset.
func (d *Dispatcher) Mention() string {
	return d.mention.token
}

// Handle runs the handler for cmd and returns what it wants delivered.
func (d *Dispatcher) Handle(cmd Command, upd Update) (Outcome, error) {
	if !cmd.valid() {
		return Outcome{}, fmt.Errorf("prayer: unknown command %d", int(cmd))
	}
	return handlers[cmd](d.store, upd), nil
}

// Execute handles cmd and delivers its outcome: the reply, then cleanup of the trigger,
// then the group post. Only a failed reply is returned.
func (d *Dispatcher) Execute(ctx context.Context, cmd Command, upd Update, m Messenger) error {
	out, err := d.Handle(cmd, upd)
	if err != nil {
		return err
	}

	if err := d.responder.Send(ctx, upd, m, out.Reply, true); err != nil {
		return fmt.Errorf("prayer: %s reply: %w", cmd, err)
	}
	d.cleanup(ctx, upd, m)

	if out.GroupPost == "" {
		return nil
	}
	if err := d.responder.Post(ctx, m, out.GroupPost, true); err != nil {
		logger.Error(ctx, logger.CompPrayer, "group.post_failed",
			slog.String("status", "fail"),
			slog.String("command", cmd.String()),
			slog.Int64("group_id", d.responder.Group.ChatID),
			slog.Int("thread_id", d.responder.Group.ThreadID),
			slog.String("err", netutil.SanitizeError(err)),
			slog.String("error_kind", netutil.Classify(err)),
		)
		if nerr := d.responder.Send(ctx, upd, m, groupPostFailedText, true); nerr != nil {
			logger.Warn(ctx, logger.CompPrayer, "group.post_failed.notice",
				slog.String("status", "fail"),
				slog.String("err", netutil.SanitizeError(nerr)),
			)
		}
		return nil
	}
	logger.Info(ctx, logger.CompPrayer, "prayer.posted",
		slog.String("status", "ok"),
		slog.Int64("group_id", d.responder.Group.ChatID),
		slog.Int("thread_id", d.responder.Group.ThreadID),
		slog.Bool("anonymous", !d.store.Nickname(upd.UserID).IsSet()),
		slog.Int("users", d.store.Len()),
	)
	return nil
}

// HandleText answers a free-text message. Direct chats always get a reply; elsewhere the
// bot answers only when mentioned and the trigger is deleted either way.
// Delivery failures are logged, never returned.
func (d *Dispatcher) HandleText(ctx context.Context, upd Update, m Messenger) error {
	if upd.Direct {
		intent := Classify(upd.Text)
		d.logIntent(ctx, intent, false)
		if err := m.Reply(ctx, intent.Reply(), false); err != nil {
			d.logReplyFailed(ctx, intent, err)
		}
		return nil
	}

	if d.mention.In(upd.Text) {
		intent := Classify(d.mention.Strip(upd.Text))
		d.logIntent(ctx, intent, true)
		if err := d.responder.Post(ctx, m, intent.Reply(), false); err != nil {
			d.logReplyFailed(ctx, intent, err)
		}
	}
	d.cleanup(ctx, upd, m)
	return nil
}

// NotifyError tells the user that handling their message failed.
func (d *Dispatcher) NotifyError(ctx context.Context, upd Update, m Messenger) {
	if err := d.responder.Send(ctx, upd, m, errorNoticeText, true); err != nil {
		logger.Warn(ctx, logger.CompPrayer, "error_notice.failed",
			slog.String("status", "fail"),
			slog.String("err", netutil.SanitizeError(err)),
			slog.String("error_kind", netutil.Classify(err)),
		)
	}
}

// cleanup deletes the triggering message outside direct chats after the configured delay.
func (d *Dispatcher) cleanup(ctx context.Context, upd Update, m Messenger) {
	if upd.Direct {
		return
	}
	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Debug(ctx, logger.CompPrayer, "cleanup.cancelled", slog.String("status", "skip"))
			return
		case <-timer.C:
		}
	}
	if err := m.DeleteTrigger(ctx); err != nil {
		logger.Warn(ctx, logger.CompPrayer, "cleanup.failed",
			slog.String("status", "fail"),
			slog.String("err", netutil.SanitizeError(err)),
			slog.String("error_kind", netutil.Classify(err)),
		)
	}
}

func (d *Dispatcher) logIntent(ctx context.Context, intent Intent, mentioned bool) {
	if !logger.ShouldSampleDebug() {
		return
	}
	logger.Debug(ctx, logger.CompPrayer, "text.classified",
		slog.String("intent", intent.String()),
		slog.Bool("mention", mentioned),
	)
}

func (d *Dispatcher) logReplyFailed(ctx context.Context, intent Intent, err error) {
	logger.Warn(ctx, logger.CompPrayer, "text.reply_failed",
		slog.String("status", "fail"),
		slog.String("intent", intent.String()),
		slog.String("err", netutil.SanitizeError(err)),
		slog.String("error_kind", netutil.Classify(err)),
	)
}
