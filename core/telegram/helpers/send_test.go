package helpers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

type sendCall struct {
	text string
	args []any
}

type fakeContext struct {
	tele.Context
	store   map[string]any
	calls   []sendCall
	failing int
	err     error
}

func newFakeContext() *fakeContext {
	return &fakeContext{store: make(map[string]any)}
}

func (f *fakeContext) Update() tele.Update {
	return tele.Update{ID: 3, Message: &tele.Message{Sender: &tele.User{ID: 7}, Chat: &tele.Chat{ID: 7}}}
}
func (f *fakeContext) Sender() *tele.User    { return &tele.User{ID: 7} }
func (f *fakeContext) Chat() *tele.Chat      { return &tele.Chat{ID: 7} }
func (f *fakeContext) Get(key string) any    { return f.store[key] }
func (f *fakeContext) Set(key string, v any) { f.store[key] = v }

func (f *fakeContext) record(text string, args []any) error {
	f.calls = append(f.calls, sendCall{text: text, args: args})
	if f.failing > 0 {
		f.failing--
		return f.err
	}
	return nil
}

func (f *fakeContext) Send(what any, opts ...any) error { return f.record(what.(string), opts) }
func (f *fakeContext) Edit(what any, opts ...any) error { return f.record(what.(string), opts) }

var errEntities = errors.New("telegram: Bad Request: can't parse entities: Can't find end of the entity starting at byte offset 12 (400)")

func TestSendFallsBackToPlainText(t *testing.T) {
	c := newFakeContext()
	c.failing, c.err = 1, errEntities

	require.NoError(t, Send(c, "*bold", Format{Markdown: true, DisablePreview: true}))
	require.Len(t, c.calls, 2)
	assert.Equal(t, []any{tele.ModeMarkdown, tele.NoPreview}, c.calls[0].args)
	assert.Equal(t, []any{tele.NoPreview}, c.calls[1].args)
}

func TestSendKeepsOtherErrors(t *testing.T) {
	c := newFakeContext()
	c.failing, c.err = 1, errors.New("telegram: Forbidden: bot was blocked by the user (403)")

	assert.Error(t, Send(c, "hi", Format{Markdown: true}))
	assert.Len(t, c.calls, 1)
}

func TestEditCurrentCarriesMarkup(t *testing.T) {
	c := newFakeContext()
	markup := &tele.ReplyMarkup{}
	require.NoError(t, EditCurrent(c, "menu", Format{Markup: markup}))
	require.Len(t, c.calls, 1)
	assert.Equal(t, []any{markup}, c.calls[0].args)
}

func TestIsParseError(t *testing.T) {
	assert.True(t, IsParseError(errEntities))
	assert.False(t, IsParseError(nil))
	assert.False(t, IsParseError(errors.New("timeout")))
}
