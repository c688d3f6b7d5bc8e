package middleware

import (
	"github.com/m3rciful/phonebot/core/metrics"

	tele "gopkg.in/telebot.v4"
)

// countingContext wraps tele.Context to count replies and keyboard usage
// for the handler summary line.
type countingContext struct{ tele.Context }

func (m countingContext) count(opts []any) {
	n, _ := m.Get("messages").(int)
	m.Set("messages", n+1)
	if hasKeyboard(opts) {
		m.Set("kb", true)
	}
}

func hasKeyboard(opts []any) bool {
	for _, o := range opts {
		switch v := o.(type) {
		case *tele.SendOptions:
			if v != nil && v.ReplyMarkup != nil {
				return true
			}
		case *tele.ReplyMarkup:
			if v != nil {
				return true
			}
		}
	}
	return false
}

// Send counts successful sends.
func (m countingContext) Send(what any, opts ...any) error {
	err := m.Context.Send(what, opts...)
	if err == nil {
		m.count(opts)
	}
	return err
}

// Reply counts successful replies.
func (m countingContext) Reply(what any, opts ...any) error {
	err := m.Context.Reply(what, opts...)
	if err == nil {
		m.count(opts)
	}
	return err
}

// Edit counts successful edits.
func (m countingContext) Edit(what any, opts ...any) error {
	err := m.Context.Edit(what, opts...)
	if err == nil {
		m.count(opts)
	}
	return err
}

// EditOrSend counts successful edits or sends.
func (m countingContext) EditOrSend(what any, opts ...any) error {
	err := m.Context.EditOrSend(what, opts...)
	if err == nil {
		m.count(opts)
	}
	return err
}

// MessageMetricsMiddleware counts the update by kind and instruments the
// context so handlers report how many messages they produced.
func MessageMetricsMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		metrics.UpdatesTotal.WithLabelValues(UpdateKind(c.Update())).Inc()
		c.Set("messages", 0)
		c.Set("kb", false)
		return next(countingContext{Context: c})
	}
}

// GetCounters reads the message count and keyboard flag set by MessageMetricsMiddleware.
func GetCounters(c tele.Context) (int, bool) {
	msgs, _ := c.Get("messages").(int)
	kb, _ := c.Get("kb").(bool)
	return msgs, kb
}
