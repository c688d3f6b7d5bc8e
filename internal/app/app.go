// Package app composes phonebot from its configuration.
package app

import (
	"github.com/m3rciful/phonebot/core/bootstrap"
	coretelegram "github.com/m3rciful/phonebot/core/telegram"
	"github.com/m3rciful/phonebot/core/telegram/state"
	"github.com/m3rciful/phonebot/internal/bot"
	"github.com/m3rciful/phonebot/internal/config"
	"github.com/m3rciful/phonebot/internal/journal"
	"github.com/m3rciful/phonebot/internal/lookup"
	"github.com/m3rciful/phonebot/internal/phone"
	"github.com/m3rciful/phonebot/internal/report"
)

// App is the wired bot ready to run.
type App struct {
	cfg      *config.Config
	infra    *bootstrap.Result
	bot      *bot.Bot
	registry *coretelegram.Registry
}

// New wires the lookup pipeline on top of bootstrapped infrastructure.
// infra may be nil or carry no DB; the journal is then disabled.
func New(cfg *config.Config, infra *bootstrap.Result) (*App, error) {
	parser := phone.NewParser(
		phone.WithLanguage(cfg.Lookup.Language),
		phone.WithMissHook(lookup.MetadataMissHook),
	)
	renderer := report.NewRenderer()

	var (
		recorder journal.Recorder = journal.Noop{}
		reader   journal.Reader
	)
	if infra != nil && infra.DB != nil {
		repo := journal.NewRepository(infra.DB)
		recorder, reader = repo, repo
	}

	ctrl := lookup.NewController(parser, renderer, state.NewMemoryStore[lookup.Session](), lookup.WithJournal(recorder))
	b := bot.New(ctrl, parser, renderer, bot.Options{
		AdminID:       cfg.Telegram.AdminID,
		InlineEnabled: cfg.Lookup.InlineEnabled,
		Stats:         reader,
	})

	reg := coretelegram.NewRegistry()
	if err := b.Register(reg); err != nil {
		return nil, err
	}
	return &App{cfg: cfg, infra: infra, bot: b, registry: reg}, nil
}

// TelegramRunOptions builds the runtime options for coretelegram.RunTelegram.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	core := a.cfg.CoreConfig()
	return coretelegram.RunOptions{
		Config:      core,
		Registry:    a.registry,
		Middlewares: a.bot.Middlewares(core),
		Routes:      a.bot.Routes(a.registry),
	}, nil
}

// Close releases the database handle, if any.
func (a *App) Close() error {
	return a.infra.Close()
}
