package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

type logFormat uint8

const (
	formatJSON logFormat = iota
	formatKV
)

const tsLayout = "2006-01-02T15:04:05.000Z07:00"

type handlerConfig struct {
	level    slog.Leveler
	writer   *asyncWriter
	format   logFormat
	keyOrder []string
}

// structuredHandler renders each record as a single line with a stable key
// order. Groups are flattened into dotted keys.
type structuredHandler struct {
	cfg    handlerConfig
	preset record
	group  string
}

func newStructuredHandler(cfg handlerConfig) *structuredHandler {
	if cfg.level == nil {
		cfg.level = slog.LevelInfo
	}
	if cfg.keyOrder == nil {
		cfg.keyOrder = defaultKeyOrder
	}
	return &structuredHandler{cfg: cfg}
}

func (h *structuredHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.cfg.level.Level()
}

func (h *structuredHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg.writer == nil {
		return errors.New("logger: writer not initialized")
	}
	rec := make(record, len(h.preset)+r.NumAttrs()+8)
	maps.Copy(rec, h.preset)
	r.Attrs(func(a slog.Attr) bool {
		rec.add(h.group, a)
		return true
	})

	ts := r.Time.UTC()
	rec["ts"] = ts.Truncate(time.Millisecond).Format(tsLayout)
	rec["level"] = levelName(r.Level)
	rec.fromContext(ctx)
	rec.fallback("event", r.Message)
	rec.fallback("event", "unknown")
	rec.fallback("component", "app")

	isJSON := h.cfg.format == formatJSON
	rec.normalize(isJSON)
	if isJSON {
		rec["ts_unix_nano"] = ts.UnixNano()
	}

	var buf bytes.Buffer
	keys := rec.keys(h.cfg.keyOrder)
	if isJSON {
		if err := encodeJSON(&buf, rec, keys); err != nil {
			return err
		}
	} else {
		encodeKV(&buf, rec, keys)
	}
	buf.WriteByte('\n')
	return h.cfg.writer.Write(buf.Bytes())
}

func (h *structuredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.preset = maps.Clone(h.preset)
	if clone.preset == nil {
		clone.preset = make(record, len(attrs))
	}
	for _, a := range attrs {
		clone.preset.add(h.group, a)
	}
	return &clone
}

func (h *structuredHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = joinKey(h.group, name)
	return &clone
}

// record holds the flattened fields of one line.
type record map[string]any

func (r record) add(prefix string, a slog.Attr) {
	key := joinKey(prefix, a.Key)
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		for _, child := range v.Group() {
			r.add(key, child)
		}
		return
	}
	if key == "" {
		return
	}
	if k, val, ok := fieldValue(key, v); ok {
		r[k] = val
	}
}

func joinKey(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	}
	return prefix + "." + key
}

// text renders the field as a string; missing fields render empty.
func (r record) text(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (r record) fallback(key string, v any) {
	if r.text(key) == "" {
		r[key] = v
	}
}

func (r record) fromContext(ctx context.Context) {
	m := metaFrom(ctx)
	if m.RID != "" {
		r.fallback("rid", m.RID)
	}
	if m.UpdateID != 0 {
		r.fallback("update_id", m.UpdateID)
	}
	if m.UserID != 0 {
		r.fallback("user_id", m.UserID)
	}
	if m.ChatID != 0 {
		r.fallback("chat_id", m.ChatID)
	}
	if m.Handler != "" {
		r.fallback("handler", m.Handler)
	}
}

// normalize compacts the rid, lowercases known enumerations, drops unknown
// outcomes and removes empty values. The full rid is kept only for JSON.
func (r record) normalize(keepFullRID bool) {
	if rid := r.text("rid"); rid != "" {
		if short := CompactRID(rid); short != rid {
			if keepFullRID {
				r.fallback("rid_full", rid)
			}
			r["rid"] = short
		}
	}
	if status := strings.ToLower(r.text("status")); knownStatus[status] {
		r["status"] = status
	}
	if outcome := r.text("outcome"); outcome != "" {
		if outcome = strings.ToLower(outcome); knownOutcome[outcome] {
			r["outcome"] = outcome
		} else {
			delete(r, "outcome")
		}
	}
	for k, v := range r {
		if v == nil || v == "" {
			delete(r, k)
		}
	}
}

// keys lists the fields in order followed by the rest sorted.
func (r record) keys(order []string) []string {
	keys := make([]string, 0, len(r))
	listed := make(map[string]bool, len(order))
	for _, k := range order {
		if listed[k] {
			continue
		}
		listed[k] = true
		if _, ok := r[k]; ok {
			keys = append(keys, k)
		}
	}
	n := len(keys)
	for k := range r {
		if !listed[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys[n:])
	return keys
}

func fieldValue(key string, v slog.Value) (string, any, bool) {
	switch v.Kind() {
	case slog.KindString:
		return key, strings.TrimSpace(v.String()), true
	case slog.KindDuration:
		return durationKey(key), RoundMS(v.Duration()).Milliseconds(), true
	case slog.KindTime:
		return key, v.Time().UTC().Format(time.RFC3339Nano), true
	case slog.KindUint64:
		if u := v.Uint64(); u <= math.MaxInt64 {
			return key, int64(u), true
		}
	case slog.KindAny:
		switch x := v.Any().(type) {
		case nil:
			return key, nil, false
		case error:
			return key, x.Error(), true
		case string:
			return key, strings.TrimSpace(x), true
		case time.Duration:
			return durationKey(key), RoundMS(x).Milliseconds(), true
		case fmt.Stringer:
			return key, x.String(), true
		default:
			return key, fmt.Sprint(x), true
		}
	}
	return key, v.Any(), true
}

// durationKey renames duration attributes so every duration is emitted in milliseconds.
func durationKey(key string) string {
	switch {
	case key == "duration":
		return "duration_ms"
	case strings.HasSuffix(key, "_ms"):
		return key
	}
	return key + "_ms"
}

func encodeJSON(buf *bytes.Buffer, r record, keys []string) error {
	buf.WriteByte('{')
	for i, k := range keys {
		val, err := json.Marshal(r[k])
		if err != nil {
			return fmt.Errorf("logger: encode %s: %w", k, err)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(k))
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return nil
}

func encodeKV(buf *bytes.Buffer, r record, keys []string) {
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(' ')
		}
		s := fmt.Sprint(r[k])
		if strings.ContainsFunc(s, needsQuote) {
			s = strconv.Quote(s)
		}
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(s)
	}
}

func needsQuote(r rune) bool {
	return r <= ' ' || r == '=' || r == '"'
}
