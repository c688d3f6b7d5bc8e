package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlineButtonsOnePerRow(t *testing.T) {
	m := InlineButtons([]InlineBtn{
		{Text: "Basic", Unique: "menu", Data: "basic"},
		{Text: "Cancel", Unique: "menu", Data: "cancel"},
	})
	require.Len(t, m.InlineKeyboard, 2)
	assert.Len(t, m.InlineKeyboard[0], 1)
	assert.Equal(t, "Basic", m.InlineKeyboard[0][0].Text)
	assert.Equal(t, "menu", m.InlineKeyboard[1][0].Unique)
	assert.Equal(t, "cancel", m.InlineKeyboard[1][0].Data)
}

func TestInlineButtonsRows(t *testing.T) {
	m := InlineButtonsRows(
		[]InlineBtn{{Text: "A", Unique: "x", Data: "1"}, {Text: "B", Unique: "x", Data: "2"}},
		[]InlineBtn{{Text: "C", Unique: "y"}},
	)
	require.Len(t, m.InlineKeyboard, 2)
	require.Len(t, m.InlineKeyboard[0], 2)
	assert.Equal(t, "2", m.InlineKeyboard[0][1].Data)
	assert.Equal(t, "y", m.InlineKeyboard[1][0].Unique)
}
