package ui

import tele "gopkg.in/telebot.v4"

// FallbackProvider exposes handlers for updates that match no command,
// callback or text route.
type FallbackProvider interface {
	UnknownText() tele.HandlerFunc
	NonText() tele.HandlerFunc
	UnknownCallback() tele.HandlerFunc
}
