package router

import (
	"log/slog"
	"time"

	tg "github.com/m3rciful/phonebot/core/telegram"
	"github.com/m3rciful/phonebot/core/telegram/callbacks"

	tele "gopkg.in/telebot.v4"
)

// CallbackRoute routes every callback query through the registry by button unique.
// Handlers answer the callback themselves.
func CallbackRoute(reg *tg.Registry) tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		if c.Callback() == nil {
			return nil
		}

		key := callbacks.Key(c)
		name := "callback." + normalizeHandlerName(key)
		extras := []slog.Attr{slog.String("cb_key", key)}

		cbHandler, ok := reg.GetCallback(key)
		if !ok {
			cbHandler = reg.CallbackNotFound()
			extras = append(extras, slog.String("reason", "not_found"))
		}
		return handleWithSummary(c, name, start, func() error {
			return cbHandler(c)
		}, extras...)
	}
	return tg.Route{Endpoint: tele.OnCallback, Handler: handler}
}
