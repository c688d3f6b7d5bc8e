package lookup

import "strings"

// Choice is a parsed menu selection.
type Choice int

const (
	ChoiceInvalid Choice = iota
	ChoiceBasic
	ChoiceAll
	ChoiceLinks
	ChoiceCancel
)

// Callback tokens carried by the menu buttons.
const (
	TokenBasic  = "basic"
	TokenAll    = "all"
	TokenLinks  = "links"
	TokenCancel = "cancel"
)

// ParseChoice maps a callback token to a Choice. Anything unknown is ChoiceInvalid.
func ParseChoice(token string) Choice {
	switch strings.TrimSpace(token) {
	case TokenBasic:
		return ChoiceBasic
	case TokenAll:
		return ChoiceAll
	case TokenLinks:
		return ChoiceLinks
	case TokenCancel:
		return ChoiceCancel
	default:
		return ChoiceInvalid
	}
}

// Token returns the callback token, or "" for ChoiceInvalid.
func (c Choice) Token() string {
	switch c {
	case ChoiceBasic:
		return TokenBasic
	case ChoiceAll:
		return TokenAll
	case ChoiceLinks:
		return TokenLinks
	case ChoiceCancel:
		return TokenCancel
	default:
		return ""
	}
}

// RendersReport reports whether the choice produces a report.
func (c Choice) RendersReport() bool {
	return c == ChoiceBasic || c == ChoiceAll || c == ChoiceLinks
}

func (c Choice) String() string {
	if t := c.Token(); t != "" {
		return t
	}
	return "invalid"
}

// MenuOption is one button of the report menu.
type MenuOption struct {
	Label string
	Token string
}

// Menu lists the report options in display order.
var Menu = []MenuOption{
	{Label: "📋 बुनियादी जानकारी (Basic Info)", Token: TokenBasic},
	{Label: "🔍 संपूर्ण जानकारी (All Features)", Token: TokenAll},
	{Label: "🌐 सर्च लिंक (Search Links)", Token: TokenLinks},
	{Label: "❌ रद्द करें (Cancel)", Token: TokenCancel},
}
