// Package lookup drives the per-conversation lookup flow: a number is
// submitted, a menu is offered, and one report is rendered for the choice.
// It knows nothing about Telegram; the bot adapter turns Reply values into
// messages.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/m3rciful/phonebot/core/logger"
	"github.com/m3rciful/phonebot/core/metrics"
	"github.com/m3rciful/phonebot/core/telegram/state"
	"github.com/m3rciful/phonebot/internal/journal"
	"github.com/m3rciful/phonebot/internal/phone"
	"github.com/m3rciful/phonebot/internal/report"
)

// StateAwaitingChoice is set after a number was accepted and the menu shown.
const StateAwaitingChoice state.State = "awaiting_menu_choice"

// Outcomes attached to replies. They match the logger's outcome vocabulary.
const (
	OutcomeOK        = "ok"
	OutcomeRejected  = "rejected"
	OutcomeExpired   = "expired"
	OutcomeCancelled = "cancelled"
	OutcomeFail      = "fail"
)

const component = "lookup"

// Session is the last accepted submission of a conversation.
type Session struct {
	Display     string
	Info        *phone.Info
	SubmittedAt time.Time
}

// Reply is what the transport should send back.
type Reply struct {
	Text           string
	Markdown       bool
	DisablePreview bool
	Menu           []MenuOption
	Outcome        string
	Err            error
}

// Controller owns the Idle -> AwaitingMenuChoice -> Idle machine.
type Controller struct {
	parser   *phone.Parser
	renderer *report.Renderer
	sessions state.Store[Session]
	journal  journal.Recorder
	now      func() time.Time
}

// Option customises a Controller.
type Option func(*Controller)

// WithJournal records every submission to r.
func WithJournal(r journal.Recorder) Option {
	return func(c *Controller) {
		if r != nil {
			c.journal = r
		}
	}
}

// WithClock overrides the submission timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// NewController wires the flow. Nil collaborators get defaults.
func NewController(parser *phone.Parser, renderer *report.Renderer, sessions state.Store[Session], opts ...Option) *Controller {
	if parser == nil {
		parser = phone.NewParser()
	}
	if renderer == nil {
		renderer = report.NewRenderer()
	}
	if sessions == nil {
		sessions = state.NewMemoryStore[Session]()
	}
	c := &Controller{
		parser:   parser,
		renderer: renderer,
		sessions: sessions,
		journal:  journal.Noop{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasSession reports whether conv has an accepted number to report on.
func (c *Controller) HasSession(conv int64) bool {
	_, ok := c.sessions.Get(conv)
	return ok
}

// HandleNumber runs a raw submission through normalisation and parsing.
// Rejected input leaves the conversation Idle; accepted input replaces the
// stored session and offers the report menu.
func (c *Controller) HandleNumber(ctx context.Context, conv int64, raw string) (reply Reply) {
	defer c.recoverTurn(ctx, conv, "number", MsgNumberFailed, &reply)

	display := strings.TrimSpace(raw)
	info, err := c.parser.Lookup(display)
	if err != nil {
		var inputErr *phone.InputError
		if !errors.As(err, &inputErr) {
			return c.fail(ctx, conv, &UnexpectedError{Op: "number", Cause: err}, MsgNumberFailed)
		}
		c.sessions.ClearState(conv)
		metrics.LookupsTotal.WithLabelValues(phone.Invalid.String()).Inc()
		logger.Info(ctx, component, "lookup.rejected",
			slog.String("status", "ok"),
			slog.String("outcome", OutcomeRejected),
			slog.String("phone", logger.MaskPhone(display)),
			slog.String("err_code", inputErr.Code()),
		)
		c.record(ctx, journal.Entry{
			UserID:         conv,
			NumberType:     int(phone.NumberTypeUnknown),
			Classification: phone.Invalid.String(),
		})
		return Reply{Text: rejectionText(inputErr.Reason), Outcome: OutcomeRejected, Err: err}
	}

	// A menu still awaiting a choice is superseded by the new number.
	replaced := c.sessions.InProgress(conv)
	c.sessions.Put(conv, Session{Display: display, Info: info, SubmittedAt: c.now()})
	c.sessions.SetState(conv, StateAwaitingChoice)
	metrics.SessionsStored.Set(float64(c.sessions.Len()))

	entry := journal.Entry{
		UserID:         conv,
		CountryCode:    info.CountryCode,
		NumberType:     int(phone.NumberTypeUnknown),
		Classification: info.Classification.String(),
	}
	if info.Details != nil {
		entry.Region = info.Details.Region
		entry.NumberType = int(info.Details.Type)
	}
	metrics.LookupsTotal.WithLabelValues(entry.Classification).Inc()
	logger.Info(ctx, component, "lookup.accepted",
		slog.String("status", "ok"),
		slog.String("outcome", OutcomeOK),
		slog.String("phone", logger.MaskPhone(display)),
		slog.Int("country_code", int(info.CountryCode)),
		slog.String("region", entry.Region),
		slog.String("classification", entry.Classification),
		slog.Bool("replaced", replaced),
	)
	c.record(ctx, entry)

	status := MsgValidated
	if w := info.Warning(); w != "" {
		status = "⚠️ " + w
	}
	return Reply{
		Text:     menuPrompt(status, display),
		Markdown: true,
		Menu:     Menu,
		Outcome:  OutcomeOK,
	}
}

// HandleChoice answers a menu token. Every path leaves the conversation Idle.
// Sessions are not consumed, so an older menu keeps working until the next
// number replaces it.
func (c *Controller) HandleChoice(ctx context.Context, conv int64, token string) (reply Reply) {
	choice := ParseChoice(token)
	defer func() {
		c.sessions.ClearState(conv)
		metrics.ReportsTotal.WithLabelValues(choice.String(), reply.Outcome).Inc()
		logger.Info(ctx, component, "lookup.choice",
			slog.String("status", "ok"),
			slog.String("outcome", reply.Outcome),
			slog.String("choice", choice.String()),
		)
	}()
	defer c.recoverTurn(ctx, conv, "choice", MsgChoiceFailed, &reply)

	switch choice {
	case ChoiceCancel:
		return Reply{Text: MsgCancelled, Outcome: OutcomeCancelled}
	case ChoiceBasic, ChoiceAll, ChoiceLinks:
		sess, ok := c.sessions.Get(conv)
		if !ok {
			return Reply{Text: MsgExpired, Outcome: OutcomeExpired, Err: ErrSessionExpired}
		}
		return Reply{
			Text:           c.render(choice, sess),
			Markdown:       true,
			DisablePreview: true,
			Outcome:        OutcomeOK,
		}
	case ChoiceInvalid:
		return Reply{Text: MsgInvalidChoice, Outcome: OutcomeRejected}
	}
	return Reply{Text: MsgInvalidChoice, Outcome: OutcomeRejected}
}

func (c *Controller) render(choice Choice, sess Session) string {
	switch choice {
	case ChoiceBasic:
		return c.renderer.Basic(sess.Info, sess.Display)
	case ChoiceAll:
		return c.renderer.Full(sess.Info, sess.Display)
	case ChoiceLinks:
		return c.renderer.Links(sess.Display)
	}
	panic(fmt.Sprintf("no report for choice %s", choice))
}

func (c *Controller) record(ctx context.Context, e journal.Entry) {
	e.CreatedAt = c.now().UTC()
	if err := c.journal.Record(ctx, e); err != nil {
		logger.Warn(ctx, component, "journal.record",
			slog.String("status", "fail"),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
	}
}

// recoverTurn converts a panic into an apology reply so one broken turn
// cannot take down the handler goroutine.
func (c *Controller) recoverTurn(ctx context.Context, conv int64, op, apology string, reply *Reply) {
	r := recover()
	if r == nil {
		return
	}
	*reply = c.fail(ctx, conv, &UnexpectedError{Op: op, Cause: r}, apology,
		slog.String("stack", string(debug.Stack())))
}

func (c *Controller) fail(ctx context.Context, conv int64, err *UnexpectedError, apology string, extra ...slog.Attr) Reply {
	c.sessions.ClearState(conv)
	attrs := []slog.Attr{
		slog.String("status", "fail"),
		slog.String("outcome", OutcomeFail),
		slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		slog.String("err_code", err.Code()),
	}
	logger.Error(ctx, component, "lookup.failed", append(attrs, extra...)...)
	return Reply{Text: apology, Outcome: OutcomeFail, Err: err}
}

// MetadataMissHook counts and logs metadata fields degraded to the unknown sentinel.
func MetadataMissHook(field string, err error) {
	metrics.MetadataMissesTotal.WithLabelValues(field).Inc()
	if !logger.ShouldSampleDebug() {
		return
	}
	attrs := []slog.Attr{
		slog.String("status", "skip"),
		slog.String("field", field),
	}
	if err != nil {
		attrs = append(attrs, slog.String("err", logger.SanitizeLimit(err.Error(), 256)))
	}
	logger.Debug(context.Background(), component, "metadata.miss", attrs...)
}
