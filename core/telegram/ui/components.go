// Package ui holds reusable reply components.
package ui

import tele "gopkg.in/telebot.v4"

// MarkdownArticle creates an inline query article whose message is sent with Markdown.
func MarkdownArticle(id, title, description, text string) *tele.ArticleResult {
	result := &tele.ArticleResult{
		Title:       title,
		Description: description,
		Text:        text,
	}
	result.SetResultID(id)
	result.SetContent(&tele.InputTextMessageContent{
		Text:      text,
		ParseMode: tele.ModeMarkdown,
	})
	return result
}
