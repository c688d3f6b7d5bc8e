package callbacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v4"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		cb      *tele.Callback
		unique  string
		payload string
	}{
		{name: "nil", cb: nil},
		{name: "raw", cb: &tele.Callback{Data: "\fmenu|links"}, unique: "menu", payload: "links"},
		{name: "no payload", cb: &tele.Callback{Data: "\fmenu"}, unique: "menu"},
		{name: "payload with separator", cb: &tele.Callback{Data: "\fmenu|a|b"}, unique: "menu", payload: "a|b"},
		{name: "matched by telebot", cb: &tele.Callback{Unique: "menu", Data: "basic"}, unique: "menu", payload: "basic"},
		{name: "plain data", cb: &tele.Callback{Data: "cancel"}, unique: "cancel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, p := Parse(tt.cb)
			assert.Equal(t, tt.unique, u)
			assert.Equal(t, tt.payload, p)
		})
	}
}
