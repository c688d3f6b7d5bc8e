package logger

import (
	"log/slog"
	"strings"
)

func set(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

var (
	knownStatus  = set("ok", "fail", "skip", "retry", "rate_limited", "cancelled")
	knownOutcome = set("ok", "fail", "cancelled", "rate_limited", "rejected", "expired")
)

// defaultKeyOrder puts the envelope first, then the update identity, then
// lookup and transport details. Keys not listed follow in sorted order.
var defaultKeyOrder = []string{
	"ts", "level", "component", "event", "status",
	"rid", "rid_full", "ts_unix_nano",
	"update_id", "user_id", "chat_id", "chat_type", "handler",
	"cb_key", "choice", "outcome", "duration_ms", "messages", "kb",
	"phone", "country_code", "region", "classification", "number_type", "field",
	"payload", "lang", "username",
	"mode", "listen", "public_url",
	"db", "host", "port",
	"err", "err_code", "cause", "attempts",
}

func levelName(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN"
	case l >= slog.LevelInfo:
		return "INFO"
	}
	return "DEBUG"
}

func parseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
