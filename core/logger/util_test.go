package logger

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	coreconfig "github.com/m3rciful/phonebot/core/config"
)

func TestMaskPhone(t *testing.T) {
	cases := map[string]string{
		"+14155552671":      "+141******71",
		"+91 12345 67890":   "+911*******90",
		"notanumber":        "",
		"12345":             "12345",
		"+1 (415) 555-2671": "+141******71",
	}
	for in, want := range cases {
		assert.Equal(t, want, MaskPhone(in), in)
	}
}

func TestDurationKey(t *testing.T) {
	cases := map[string]string{
		"duration":         "duration_ms",
		"startup_duration": "startup_duration_ms",
		"elapsed":          "elapsed_ms",
		"backoff_ms":       "backoff_ms",
	}
	for in, want := range cases {
		assert.Equal(t, want, durationKey(in), in)
	}
}

func TestCompactRID(t *testing.T) {
	assert.Equal(t, "z.10.11", CompactRID("35:36:37"))
	assert.Equal(t, "not-a-rid", CompactRID("not-a-rid"))
	assert.Equal(t, "1:x:2", CompactRID("1:x:2"))
	assert.Equal(t, "", CompactRID("  "))
}

func TestSanitizeLimit(t *testing.T) {
	assert.Equal(t, "abcd", SanitizeLimit("ab\x00c\u200bdé", 4))
	assert.Equal(t, "a\tb\n", SanitizeLimit("a\tb\n\x7f", 10))
	assert.Equal(t, "", SanitizeLimit("abc", 0))
	assert.Equal(t, time.Millisecond, RoundMS(1499*time.Microsecond))
	assert.Zero(t, RoundMS(-time.Second))
}

func TestSampler(t *testing.T) {
	s := newSampler(1, 3)
	allowed := 0
	for i := 0; i < 9; i++ {
		if s.Allow() {
			allowed++
		}
	}
	assert.Equal(t, 3, allowed)

	s.Set(0, 0)
	assert.True(t, s.Allow())
}

func TestParseRatio(t *testing.T) {
	cases := map[string][2]int{
		"20":    {1, 20},
		"2/10":  {2, 10},
		" 1/5 ": {1, 5},
		"0":     {0, 0},
		"x/5":   {0, 0},
		"junk":  {0, 0},
	}
	for in, want := range cases {
		num, den := parseRatio(in)
		assert.Equal(t, want, [2]int{num, den}, in)
	}
}

func TestSettingsFrom(t *testing.T) {
	def := settingsFrom(nil)
	assert.Equal(t, formatJSON, def.format)
	assert.Equal(t, slog.LevelInfo, def.level)
	assert.Equal(t, defaultKeyOrder, def.keyOrder)

	cfg := &coreconfig.Config{}
	cfg.Logging.Profile = "Dev"
	cfg.Logging.Level = "warning"
	cfg.Logging.KeysOrder = "event, ts"
	cfg.Logging.DebugSample = "1/10"
	s := settingsFrom(cfg)
	assert.Equal(t, formatKV, s.format)
	assert.Equal(t, slog.LevelWarn, s.level)
	assert.Equal(t, []string{"event", "ts"}, s.keyOrder)
	assert.Equal(t, [2]int{1, 10}, [2]int{s.sampleNum, s.sampleDen})
	assert.Equal(t, "dev", s.profile)

	cfg.Logging.Format = "json"
	assert.Equal(t, formatJSON, settingsFrom(cfg).format)
}

func TestContextMeta(t *testing.T) {
	ctx := WithRID(nil, "r1") //nolint:staticcheck
	ctx = WithUpdateMeta(ctx, 1, 2, 3)
	ctx = WithHandler(ctx, "start")
	ctx = WithHandler(ctx, "")

	assert.Equal(t, "r1", RIDFrom(ctx))
	assert.Equal(t, updateMeta{RID: "r1", UpdateID: 1, UserID: 2, ChatID: 3, Handler: "start"}, metaFrom(ctx))
	assert.Equal(t, "", RIDFrom(context.Background()))
	assert.Equal(t, L, FromContext(context.Background()))
}
