package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "github.com/m3rciful/phonebot/core/config"
	coretelegram "github.com/m3rciful/phonebot/core/telegram"
)

type carrier struct{ cfg *coreconfig.Config }

func (c carrier) CoreConfig() *coreconfig.Config { return c.cfg }

type app struct{ closed bool }

func (a *app) TelegramRunOptions() (coretelegram.RunOptions, error) {
	return coretelegram.RunOptions{}, nil
}

func (a *app) Close() error {
	a.closed = true
	return nil
}

func baseOptions(cfg *coreconfig.Config, a *app) Options {
	return Options{
		ConfigEnvVar:      "PHONEBOT_TEST_CONFIG",
		DefaultConfigPath: "config.yaml",
		LoadConfig:        func(string) (ConfigCarrier, error) { return carrier{cfg: cfg}, nil },
		Bootstrap:         func(ConfigCarrier) (TelegramApp, error) { return a, nil },
		ShutdownLogger:    func() error { return nil },
	}
}

func TestRunStopsMetricsWhenBotEnds(t *testing.T) {
	cfg := &coreconfig.Config{Metrics: coreconfig.MetricsConfig{Listen: "127.0.0.1:0", Path: "/metrics"}}
	a := &app{}
	opts := baseOptions(cfg, a)

	metricsStopped := make(chan struct{})
	opts.RunTelegram = func(ctx context.Context, ro coretelegram.RunOptions) error {
		assert.NotNil(t, ro.OnStart)
		assert.NotNil(t, ro.OnStop)
		return nil
	}
	opts.ServeMetrics = func(ctx context.Context, listen, path string) error {
		assert.Equal(t, "/metrics", path)
		<-ctx.Done()
		close(metricsStopped)
		return nil
	}

	require.NoError(t, Run(opts))
	select {
	case <-metricsStopped:
	case <-time.After(time.Second):
		t.Fatal("metrics server kept running")
	}
	assert.True(t, a.closed)
}

func TestRunReturnsBotError(t *testing.T) {
	boom := errors.New("boom")
	opts := baseOptions(&coreconfig.Config{}, &app{})
	opts.RunTelegram = func(context.Context, coretelegram.RunOptions) error { return boom }
	opts.ServeMetrics = func(context.Context, string, string) error {
		t.Fatal("metrics disabled without listen address")
		return nil
	}
	assert.ErrorIs(t, Run(opts), boom)
}

func TestRunRequiresLoaders(t *testing.T) {
	assert.Error(t, Run(Options{}))
	assert.Error(t, Run(Options{LoadConfig: func(string) (ConfigCarrier, error) { return carrier{}, nil }}))
}
