package router

import (
	"time"

	tg "github.com/m3rciful/phonebot/core/telegram"

	tele "gopkg.in/telebot.v4"
)

// TextOptions controls fallback behaviour for non-command updates.
type TextOptions struct {
	// UnknownText handles text when the registry has no text fallback.
	UnknownText tele.HandlerFunc
	// NonText handles photos, documents, stickers and voice messages.
	NonText tele.HandlerFunc
}

// TextRoutes builds the text route: command names and aliases typed without
// the leading slash are resolved through the registry, everything else goes
// to the registry's text fallback.
func TextRoutes(reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(c.Text()); ok && !cmd.AdminOnly {
				return handleWithSummary(c, normalizeHandlerName(key), start, func() error {
					return cmd.Handler(c)
				})
			}
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "text", start, func() error { return fb(c) })
			}
		}
		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, func() error {
				return opts.UnknownText(c)
			})
		}
		logHandlerSummary(c, "unknown_text", start, "skip", nil)
		return nil
	}

	routes := []tg.Route{{Endpoint: tele.OnText, Handler: handler}}
	if opts.NonText == nil {
		return routes
	}
	nonText := func(c tele.Context) error {
		start := time.Now()
		return handleWithSummary(c, "non_text", start, func() error { return opts.NonText(c) })
	}
	for _, ep := range []string{tele.OnPhoto, tele.OnDocument, tele.OnSticker, tele.OnVoice} {
		routes = append(routes, tg.Route{Endpoint: ep, Handler: nonText})
	}
	return routes
}

// InlineRoute binds the inline query handler.
func InlineRoute(h tele.HandlerFunc) tg.Route {
	return tg.Route{
		Endpoint: tele.OnQuery,
		Handler: func(c tele.Context) error {
			start := time.Now()
			return handleWithSummary(c, "inline", start, func() error { return h(c) })
		},
	}
}
