// Package keyboard builds inline keyboards for bot replies.
package keyboard

import tele "gopkg.in/telebot.v4"

// InlineBtn describes one inline button. Unique selects the callback handler,
// Data is delivered to it as the payload.
type InlineBtn struct {
	Text   string
	Unique string
	Data   string
}

// InlineButtons builds an inline keyboard with one button per row.
func InlineButtons(buttons []InlineBtn) *tele.ReplyMarkup {
	rows := make([][]InlineBtn, len(buttons))
	for i := range buttons {
		rows[i] = buttons[i : i+1]
	}
	return InlineButtonsRows(rows...)
}

// InlineButtonsRows builds an inline keyboard from rows of InlineBtn.
func InlineButtonsRows(rows ...[]InlineBtn) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	built := make([]tele.Row, 0, len(rows))
	for _, row := range rows {
		btns := make([]tele.Btn, 0, len(row))
		for _, b := range row {
			btns = append(btns, markup.Data(b.Text, b.Unique, b.Data))
		}
		built = append(built, markup.Row(btns...))
	}
	markup.Inline(built...)
	return markup
}
