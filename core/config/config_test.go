package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "from-file"
  run_mode: polling
rate_limit:
  interval_ms: 500
  exclude_updates: [" Callback "]
lookup:
  language: ""
`)
	t.Setenv("BOT_TOKEN", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram.Token != "from-env" {
		t.Fatalf("token = %q, want env override", cfg.Telegram.Token)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run mode = %q, want %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
	if got := cfg.RateLimit.ExcludeUpdates[0]; got != UpdateCallback {
		t.Fatalf("exclude[0] = %q, want %q", got, UpdateCallback)
	}
	if cfg.Lookup.Language != DefaultLookupLanguage {
		t.Fatalf("language = %q, want default", cfg.Lookup.Language)
	}
	if cfg.Metrics.Path != DefaultMetricsPath {
		t.Fatalf("metrics path = %q, want default", cfg.Metrics.Path)
	}
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "42")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram.AdminID != 42 {
		t.Fatalf("admin id = %d, want 42", cfg.Telegram.AdminID)
	}
}

func TestNormalizeRejectsInvalidValues(t *testing.T) {
	cases := map[string]Config{
		"missing token": {},
		"bad run mode": {
			Telegram: TelegramConfig{Token: "t", RunMode: "carrier-pigeon"},
		},
		"webhook without url": {
			Telegram: TelegramConfig{Token: "t", RunMode: RunModeWebhook},
			Webhook:  WebhookConfig{Port: 8443},
		},
		"webhook without port": {
			Telegram: TelegramConfig{Token: "t", RunMode: RunModeWebhook},
			Webhook:  WebhookConfig{URL: "https://example.org/hook"},
		},
		"bad exclusion": {
			Telegram:  TelegramConfig{Token: "t"},
			RateLimit: RateLimitConfig{ExcludeUpdates: []string{"poll"}},
		},
		"bad metrics listen": {
			Telegram: TelegramConfig{Token: "t"},
			Metrics:  MetricsConfig{Listen: "9090"},
		},
	}
	for name, cfg := range cases {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			if err := Normalize(&cfg); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNormalizeWebhookDefaults(t *testing.T) {
	cfg := Config{
		Telegram: TelegramConfig{Token: "t", RunMode: " WEBHOOK "},
		Webhook:  WebhookConfig{URL: "https://example.org/hook", Port: 8443},
		Metrics:  MetricsConfig{Listen: ":9090", Path: "stats"},
	}
	if err := Normalize(&cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeWebhook {
		t.Fatalf("run mode = %q", cfg.Telegram.RunMode)
	}
	if cfg.Webhook.Listen != "0.0.0.0" {
		t.Fatalf("listen = %q, want 0.0.0.0", cfg.Webhook.Listen)
	}
	if cfg.Metrics.Path != "/stats" {
		t.Fatalf("metrics path = %q, want /stats", cfg.Metrics.Path)
	}
}
