package middleware

import (
	tele "gopkg.in/telebot.v4"
)

const messagesKey = "messages"

// metricsContext wraps tele.Context to count messages sent while handling an update.
type metricsContext struct{ tele.Context }

// Send proxies tele.Context.Send while updating the message counter.
func (m metricsContext) Send(what interface{}, opts ...interface{}) error {
	err := m.Context.Send(what, opts...)
	if err == nil {
		IncMessages(m.Context)
	}
	return err
}

// Reply proxies tele.Context.Reply while updating the message counter.
func (m metricsContext) Reply(what interface{}, opts ...interface{}) error {
	err := m.Context.Reply(what, opts...)
	if err == nil {
		IncMessages(m.Context)
	}
	return err
}

// MessageMetricsMiddleware instruments context to track how many messages a handler sends.
func MessageMetricsMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		c.Set(messagesKey, 0)
		return next(metricsContext{Context: c})
	}
}

// IncMessages records one more outbound message for the update.
// Sends that bypass the context (bot.Send to another chat) call it directly.
func IncMessages(c tele.Context) {
	n, _ := c.Get(messagesKey).(int)
	c.Set(messagesKey, n+1)
}

// GetCounters reads the message count from context.
func GetCounters(c tele.Context) int {
	n, _ := c.Get(messagesKey).(int)
	return n
}
