// Package format prepares user-supplied text for Telegram parse modes.
package format

import (
	"fmt"
	"regexp"
)

const (
	// MarkdownV1 denotes Telegram legacy Markdown.
	MarkdownV1 = 1
	// MarkdownV2 denotes Telegram MarkdownV2.
	MarkdownV2 = 2
)

var (
	mdV1Specials = regexp.MustCompile("([_*`\\[])")
	mdV2Specials = regexp.MustCompile("([" + regexp.QuoteMeta("\\_*[]()~`>#+-=|{}.!") + "])")
)

// EscapeMarkdown escapes the characters that carry meaning in the given Markdown version.
func EscapeMarkdown(text string, version int) (string, error) {
	switch version {
	case MarkdownV1:
		return mdV1Specials.ReplaceAllString(text, `\${1}`), nil
	case MarkdownV2:
		return mdV2Specials.ReplaceAllString(text, `\${1}`), nil
	}
	return "", fmt.Errorf("unsupported markdown version: %d", version)
}

// EscapeMD escapes text for legacy Markdown, the mode the bot replies in.
func EscapeMD(text string) string {
	return mdV1Specials.ReplaceAllString(text, `\${1}`)
}
