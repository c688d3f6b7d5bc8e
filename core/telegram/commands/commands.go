// Package commands describes slash commands exposed by the bot.
package commands

import (
	tele "gopkg.in/telebot.v4"
)

// Command is a slash command with its handler and menu metadata.
// Hidden and AdminOnly commands are left out of the published command menu;
// AdminOnly ones are also guarded at dispatch.
type Command struct {
	Handler     tele.HandlerFunc
	Description string
	AdminOnly   bool
	Hidden      bool
	// Aliases are alternative names, with or without the leading slash.
	Aliases []string
}
