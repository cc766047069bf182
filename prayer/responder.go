package prayer

import "context"

// Responder delivers replies: inline in direct chats, to the prayer group everywhere else.
type Responder struct {
	Group Destination
}

// Send delivers text for upd. The originating chat is ignored outside direct chats.
func (r Responder) Send(ctx context.Context, upd Update, m Messenger, text string, markdown bool) error {
	if upd.Direct {
		return m.Reply(ctx, text, markdown)
	}
	return r.Post(ctx, m, text, markdown)
}

// Post publishes text to the prayer group.
func (r Responder) Post(ctx context.Context, m Messenger, text string, markdown bool) error {
	return m.SendTo(ctx, r.Group.ChatID, r.Group.ThreadID, text, markdown)
}
