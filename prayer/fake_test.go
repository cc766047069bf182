package prayer

import (
	"context"
	"errors"
)

type sent struct {
	kind     string // reply, send or delete
	chatID   int64
	threadID int
	text     string
	markdown bool
}

// fakeMessenger records outbound calls in order.
type fakeMessenger struct {
	calls     []sent
	replyErr  error
	sendErr   error
	deleteErr error
	// failSendOnce makes only the next SendTo fail.
	failSendOnce bool
}

var errDelivery = errors.New("telegram: Bad Request: chat not found (400)")

func (f *fakeMessenger) Reply(_ context.Context, text string, markdown bool) error {
	f.calls = append(f.calls, sent{kind: "reply", text: text, markdown: markdown})
	return f.replyErr
}

func (f *fakeMessenger) SendTo(_ context.Context, chatID int64, threadID int, text string, markdown bool) error {
	f.calls = append(f.calls, sent{kind: "send", chatID: chatID, threadID: threadID, text: text, markdown: markdown})
	if f.failSendOnce {
		f.failSendOnce = false
		return errDelivery
	}
	return f.sendErr
}

func (f *fakeMessenger) DeleteTrigger(context.Context) error {
	f.calls = append(f.calls, sent{kind: "delete"})
	return f.deleteErr
}

func (f *fakeMessenger) kinds() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.kind)
	}
	return out
}
