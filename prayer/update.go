package prayer

import (
	"context"
	"strings"
)

// Update is the part of an incoming message the bot acts on.
type Update struct {
	UserID int64
	ChatID int64
	// Direct is set for private one-to-one chats with the bot.
	Direct bool
	Text   string
	// Args are the whitespace-separated words after the command.
	Args []string
}

// JoinedArgs returns the arguments joined by single spaces.
func (u Update) JoinedArgs() string {
	return strings.TrimSpace(strings.Join(u.Args, " "))
}

// Outcome is what a command handler wants delivered.
type Outcome struct {
	// Reply goes to the user through the Responder as Markdown.
	Reply string
	// GroupPost, when set, is published to the prayer group after the reply.
	GroupPost string
}

// Messenger performs the outbound calls for a single update.
type Messenger interface {
	// Reply answers the triggering message in its own chat.
	Reply(ctx context.Context, text string, markdown bool) error
	// SendTo posts to a chat, inside a forum thread when threadID is non-zero.
	SendTo(ctx context.Context, chatID int64, threadID int, text string, markdown bool) error
	// DeleteTrigger deletes the message that triggered the update.
	DeleteTrigger(ctx context.Context) error
}

// Destination is a chat plus an optional forum thread.
type Destination struct {
	ChatID   int64
	ThreadID int
}
