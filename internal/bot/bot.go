// Package bot adapts the lookup flow to Telegram: commands, the number text
// handler, the report menu callbacks and inline queries.
package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	coreconfig "github.com/m3rciful/phonebot/core/config"
	"github.com/m3rciful/phonebot/core/logger"
	tg "github.com/m3rciful/phonebot/core/telegram"
	"github.com/m3rciful/phonebot/core/telegram/callbacks"
	"github.com/m3rciful/phonebot/core/telegram/commands"
	"github.com/m3rciful/phonebot/core/telegram/format"
	tghelpers "github.com/m3rciful/phonebot/core/telegram/helpers"
	"github.com/m3rciful/phonebot/core/telegram/keyboard"
	"github.com/m3rciful/phonebot/core/telegram/router"
	"github.com/m3rciful/phonebot/core/telegram/ui"
	"github.com/m3rciful/phonebot/internal/journal"
	"github.com/m3rciful/phonebot/internal/lookup"
	"github.com/m3rciful/phonebot/internal/phone"
	"github.com/m3rciful/phonebot/internal/report"

	tele "gopkg.in/telebot.v4"
)

// MenuUnique is the callback unique shared by all report menu buttons;
// the button data carries the choice token.
const MenuUnique = "menu"

const (
	component  = "bot"
	statsDays  = 7
	statsLimit = 5
)

// Options configures the Telegram adapter.
type Options struct {
	AdminID       int64
	InlineEnabled bool
	// Stats backs /stats; nil means the journal is disabled.
	Stats journal.Reader
	Now   func() time.Time
}

// Bot holds the handlers. It implements ui.FallbackProvider.
type Bot struct {
	ctrl     *lookup.Controller
	parser   *phone.Parser
	renderer *report.Renderer
	opts     Options

	// progress messages; replaced in tests
	sendProgress func(c tele.Context, text string) (tele.Editable, error)
	editProgress func(c tele.Context, msg tele.Editable, text string, f tghelpers.Format) error
}

var _ ui.FallbackProvider = (*Bot)(nil)

// New builds the adapter around a controller. parser and renderer serve inline queries.
func New(ctrl *lookup.Controller, parser *phone.Parser, renderer *report.Renderer, opts Options) *Bot {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Bot{
		ctrl:         ctrl,
		parser:       parser,
		renderer:     renderer,
		opts:         opts,
		sendProgress: sendProgress,
		editProgress: tghelpers.EditMessage,
	}
}

func sendProgress(c tele.Context, text string) (tele.Editable, error) {
	msg, err := tghelpers.SendMessage(c, text, tghelpers.Format{})
	if err != nil || msg == nil {
		return nil, err
	}
	return msg, nil
}

// Register adds commands, the menu callback and the number text handler to reg.
func (b *Bot) Register(reg *tg.Registry) error {
	cmds := []struct {
		name string
		cmd  commands.Command
	}{
		{"/start", commands.Command{Handler: b.onStart, Description: "स्वागत संदेश (Welcome)"}},
		{"/help", commands.Command{Handler: b.onHelp, Description: "सहायता (Help)"}},
		{"/lookup", commands.Command{Handler: b.onLookup, Description: "नंबर जाँचें (Lookup a number)", Aliases: []string{"check"}}},
		{"/about", commands.Command{Handler: b.onAbout, Description: "बॉट के बारे में (About)"}},
		{"/stats", commands.Command{Handler: b.onStats, Description: "Lookup stats", AdminOnly: true}},
	}
	for _, c := range cmds {
		if err := reg.RegisterCommand(c.name, c.cmd); err != nil {
			return err
		}
	}
	if err := reg.RegisterCallback(MenuUnique, b.onMenu); err != nil {
		return err
	}
	reg.SetCallbackNotFound(b.UnknownCallback())
	reg.SetTextFallback(b.onNumber)
	return nil
}

// Routes returns every route of the bot. Register must have been called on reg.
func (b *Bot) Routes(reg *tg.Registry) []tg.Route {
	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID:       b.opts.AdminID,
		OnAdminReject: b.onAdminReject,
	})
	routes = append(routes, router.TextRoutes(reg, router.TextOptions{
		UnknownText: b.UnknownText(),
		NonText:     b.NonText(),
	})...)
	routes = append(routes, router.CallbackRoute(reg))
	if b.opts.InlineEnabled {
		routes = append(routes, router.InlineRoute(b.onInline))
	}
	return routes
}

// Middlewares returns the shared chain with the bot's rate-limit reply.
func (b *Bot) Middlewares(cfg *coreconfig.Config) []tg.Middleware {
	return tg.DefaultMiddlewares(cfg, b.onLimited)
}

func conversation(c tele.Context) int64 {
	if u := c.Sender(); u != nil {
		return u.ID
	}
	if ch := c.Chat(); ch != nil {
		return ch.ID
	}
	return 0
}

func replyFormat(r lookup.Reply) tghelpers.Format {
	f := tghelpers.Format{Markdown: r.Markdown, DisablePreview: r.DisablePreview}
	if len(r.Menu) > 0 {
		f.Markup = menuMarkup(r.Menu)
	}
	return f
}

func menuMarkup(menu []lookup.MenuOption) *tele.ReplyMarkup {
	btns := make([]keyboard.InlineBtn, 0, len(menu))
	for _, opt := range menu {
		btns = append(btns, keyboard.InlineBtn{Text: opt.Label, Unique: MenuUnique, Data: opt.Token})
	}
	return keyboard.InlineButtons(btns)
}

// sendWithFallback sends Markdown text and, when that fails for any
// reason, the plain fallback.
func sendWithFallback(c tele.Context, text, fallback string) error {
	err := tghelpers.Send(c, text, tghelpers.Format{Markdown: true})
	if err == nil {
		return nil
	}
	logger.Warn(tghelpers.BuildContext(c), component, "reply.fallback",
		slog.String("status", "retry"),
		slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
	)
	return tghelpers.Send(c, fallback, tghelpers.Format{})
}

func (b *Bot) onStart(c tele.Context) error {
	name := ""
	if u := c.Sender(); u != nil {
		name = format.EscapeMD(u.FirstName)
	}
	return sendWithFallback(c, welcomeText(name), fallbackStart)
}

func (b *Bot) onHelp(c tele.Context) error {
	return sendWithFallback(c, msgHelp, fallbackHelp)
}

func (b *Bot) onAbout(c tele.Context) error {
	return sendWithFallback(c, aboutText(), fallbackAbout)
}

// onLookup runs a lookup for "/lookup <number>" and prompts otherwise.
func (b *Bot) onLookup(c tele.Context) error {
	if arg := lookupArg(c); arg != "" {
		return b.lookupNumber(c, arg)
	}
	return tghelpers.Send(c, msgLookup, tghelpers.Format{Markdown: true})
}

// lookupArg returns the command argument. Aliases typed without a slash
// reach the handler with no Payload, so the text after the first word is used.
func lookupArg(c tele.Context) string {
	msg := c.Message()
	if msg == nil {
		return ""
	}
	if arg := strings.TrimSpace(msg.Payload); arg != "" {
		return arg
	}
	_, rest, _ := strings.Cut(strings.TrimSpace(msg.Text), " ")
	return strings.TrimSpace(rest)
}

func (b *Bot) onNumber(c tele.Context) error {
	return b.lookupNumber(c, c.Text())
}

// lookupNumber shows the analysing notice and replaces it with the controller's reply.
func (b *Bot) lookupNumber(c tele.Context, raw string) error {
	ctx := tghelpers.BuildContext(c)
	progress, err := b.sendProgress(c, lookup.MsgAnalysing)
	if err != nil {
		logger.Warn(ctx, component, "progress.send",
			slog.String("status", "fail"),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
	}
	reply := b.ctrl.HandleNumber(ctx, conversation(c), raw)
	return b.editProgress(c, progress, reply.Text, replyFormat(reply))
}

// onMenu answers a report menu button by editing the menu message in place.
func (b *Bot) onMenu(c tele.Context) error {
	_ = c.Respond()
	ctx := tghelpers.BuildContext(c)
	conv := conversation(c)
	token := callbacks.Payload(c)

	if lookup.ParseChoice(token).RendersReport() && b.ctrl.HasSession(conv) {
		if err := tghelpers.EditCurrent(c, lookup.MsgGathering, tghelpers.Format{}); err != nil {
			logger.Debug(ctx, component, "progress.edit",
				slog.String("status", "fail"),
				slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			)
		}
	}
	reply := b.ctrl.HandleChoice(ctx, conv, token)
	return tghelpers.EditCurrent(c, reply.Text, replyFormat(reply))
}

// onInline answers "@bot <number>" with a basic report article.
func (b *Bot) onInline(c tele.Context) error {
	q := c.Query()
	if q == nil {
		return nil
	}
	text := strings.TrimSpace(q.Text)
	resp := &tele.QueryResponse{CacheTime: 60, IsPersonal: true}
	if text == "" {
		return c.Answer(resp)
	}

	info, err := b.parser.Lookup(text)
	var inputErr *phone.InputError
	switch {
	case errors.As(err, &inputErr):
		resp.Results = tele.Results{ui.MarkdownArticle("invalid", "❌ "+inputErr.Reason, text, "❌ "+inputErr.Reason)}
	case err != nil:
		return err
	default:
		id := strings.TrimPrefix(text, "+")
		if info.Details != nil {
			id = strings.TrimPrefix(info.Details.E164, "+")
		}
		resp.Results = tele.Results{ui.MarkdownArticle(id, inlineTitle, text, b.inlineReport(info, text))}
	}
	return c.Answer(resp)
}

// inlineReport is the basic report, led by the possibly-valid caveat when
// one applies, as in the chat flow.
func (b *Bot) inlineReport(info *phone.Info, display string) string {
	body := b.renderer.Basic(info, display)
	if w := info.Warning(); w != "" {
		return "⚠️ " + w + "\n\n" + body
	}
	return body
}

func (b *Bot) onStats(c tele.Context) error {
	if b.opts.Stats == nil {
		return tghelpers.Send(c, msgStatsOff, tghelpers.Format{})
	}
	ctx, cancel := context.WithTimeout(tghelpers.BuildContext(c), 5*time.Second)
	defer cancel()

	since := b.opts.Now().UTC().AddDate(0, 0, -statsDays)
	stats, err := b.opts.Stats.Stats(ctx, since, statsLimit)
	if err != nil {
		logger.Error(ctx, component, "stats.load",
			slog.String("status", "fail"),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return tghelpers.Send(c, msgStatsError, tghelpers.Format{})
	}
	return tghelpers.Send(c, statsText(stats, statsDays), tghelpers.Format{Markdown: true})
}

func (b *Bot) onAdminReject(c tele.Context) error {
	return tghelpers.Send(c, msgAdminOnly, tghelpers.Format{})
}

func (b *Bot) onLimited(c tele.Context) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: msgSlowDown})
	}
	if c.Query() != nil {
		return nil
	}
	return tghelpers.Send(c, msgSlowDown, tghelpers.Format{})
}

// UnknownText handles text when no number handler is registered.
func (b *Bot) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.Send(c, msgLookup, tghelpers.Format{Markdown: true})
	}
}

// NonText asks for the number as text.
func (b *Bot) NonText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.Send(c, msgNonText, tghelpers.Format{})
	}
}

// UnknownCallback answers buttons from menus this bot no longer serves.
func (b *Bot) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: lookup.MsgInvalidChoice})
	}
}
