// Package callbacks decodes inline button data in telebot's wire format.
package callbacks

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Parse splits callback data of the form "\f<unique>|<payload>".
// When telebot already matched a registered unique, Unique and Data are used as is.
func Parse(cb *tele.Callback) (unique, payload string) {
	if cb == nil {
		return "", ""
	}
	if cb.Unique != "" {
		return cb.Unique, cb.Data
	}
	raw := strings.TrimPrefix(cb.Data, "\f")
	unique, payload, _ = strings.Cut(raw, "|")
	return strings.TrimSpace(unique), payload
}

// Key returns the button unique of the current callback.
func Key(c tele.Context) string {
	k, _ := Parse(c.Callback())
	return k
}

// Payload returns the data after the unique of the current callback.
func Payload(c tele.Context) string {
	_, p := Parse(c.Callback())
	return p
}
