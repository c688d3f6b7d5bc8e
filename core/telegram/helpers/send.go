package helpers

import (
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/m3rciful/phonebot/core/logger"
	"github.com/m3rciful/phonebot/core/telegram/sender"

	tele "gopkg.in/telebot.v4"
)

var globalDispatcher atomic.Pointer[sender.Dispatcher]

// SetDispatcher wires the asynchronous sender used by Send.
func SetDispatcher(d *sender.Dispatcher) {
	globalDispatcher.Store(d)
}

func currentDispatcher() *sender.Dispatcher {
	return globalDispatcher.Load()
}

func sendAsync(c tele.Context, action, endpoint string, run func() error) error {
	disp := currentDispatcher()
	if disp == nil {
		return run()
	}

	ctx := BuildContext(c)
	if err := disp.Enqueue(ctx, action, endpoint, run); err != nil {
		if errors.Is(err, sender.ErrQueueFull) || errors.Is(err, sender.ErrQueueClosed) {
			logger.Warn(ctx, "tg.sender", "queue.fallback",
				slog.String("action", action),
				slog.String("endpoint", endpoint),
				slog.String("err", err.Error()),
			)
			return run()
		}
		return err
	}
	return nil
}

// Format describes how a reply is rendered.
type Format struct {
	Markdown       bool
	DisablePreview bool
	Markup         *tele.ReplyMarkup
}

func (f Format) args(markdown bool) []any {
	var args []any
	if markdown {
		args = append(args, tele.ModeMarkdown)
	}
	if f.Markup != nil {
		args = append(args, f.Markup)
	}
	if f.DisablePreview {
		args = append(args, tele.NoPreview)
	}
	return args
}

// IsParseError reports whether Telegram rejected the text's Markdown entities.
func IsParseError(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "can't parse entities")
}

// withPlainFallback runs call with Markdown and repeats it as plain text
// when Telegram cannot parse the entities.
func withPlainFallback(c tele.Context, f Format, call func(args []any) error) error {
	err := call(f.args(f.Markdown))
	if !f.Markdown || !IsParseError(err) {
		return err
	}
	logger.Warn(BuildContext(c), "tg.sender", "send.markdown_fallback",
		slog.String("status", "retry"),
		slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
	)
	return call(f.args(false))
}

// Send delivers text to the current chat through the dispatcher.
func Send(c tele.Context, text string, f Format) error {
	return sendAsync(c, "send.text", "sendMessage", func() error {
		return withPlainFallback(c, f, func(args []any) error {
			return c.Send(text, args...)
		})
	})
}

// SendMessage sends text synchronously and returns the sent message so it
// can be edited later.
func SendMessage(c tele.Context, text string, f Format) (*tele.Message, error) {
	var msg *tele.Message
	err := withPlainFallback(c, f, func(args []any) error {
		var err error
		msg, err = c.Bot().Send(c.Recipient(), text, args...)
		return err
	})
	return msg, err
}

// EditMessage replaces the text of msg. A nil msg sends a new message instead.
func EditMessage(c tele.Context, msg tele.Editable, text string, f Format) error {
	if msg == nil {
		return Send(c, text, f)
	}
	return withPlainFallback(c, f, func(args []any) error {
		_, err := c.Bot().Edit(msg, text, args...)
		return err
	})
}

// EditCurrent replaces the text of the message that carried the callback button.
func EditCurrent(c tele.Context, text string, f Format) error {
	return withPlainFallback(c, f, func(args []any) error {
		return c.Edit(text, args...)
	})
}
