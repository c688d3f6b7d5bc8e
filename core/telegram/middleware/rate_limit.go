package middleware

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m3rciful/phonebot/core/logger"
	"github.com/m3rciful/phonebot/core/metrics"
	tghelpers "github.com/m3rciful/phonebot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// RateLimitOptions configures behaviour of the rate limit middleware.
type RateLimitOptions struct {
	Interval  time.Duration
	Exclude   map[string]struct{}
	OnLimited tele.HandlerFunc
	// now is replaced in tests.
	now func() time.Time
}

// UpdateKind names the update for rate-limit exclusions and metrics.
func UpdateKind(upd tele.Update) string {
	switch {
	case upd.Callback != nil:
		return "callback"
	case upd.Message != nil:
		return "message"
	case upd.Query != nil:
		return "inline_query"
	default:
		return "other"
	}
}

type userLimiter struct {
	lim  *rate.Limiter
	seen time.Time
}

// limiters keeps one token bucket per user; idle users are swept periodically.
type limiters struct {
	mu       sync.Mutex
	interval time.Duration
	users    map[int64]*userLimiter
	swept    time.Time
}

func (l *limiters) allow(id int64, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.swept) > 10*l.interval {
		for k, u := range l.users {
			if now.Sub(u.seen) >= l.interval {
				delete(l.users, k)
			}
		}
		l.swept = now
	}
	u, ok := l.users[id]
	if !ok {
		u = &userLimiter{lim: rate.NewLimiter(rate.Every(l.interval), 1)}
		l.users[id] = u
	}
	u.seen = now
	return u.lim.AllowN(now, 1)
}

// RateLimitMiddleware enforces a minimum interval between updates from the same user.
func RateLimitMiddleware(opts RateLimitOptions) tele.MiddlewareFunc {
	now := opts.now
	if now == nil {
		now = time.Now
	}
	lim := &limiters{interval: opts.Interval, users: make(map[int64]*userLimiter)}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil || opts.Interval <= 0 {
				return next(c)
			}
			kind := UpdateKind(c.Update())
			if _, skip := opts.Exclude[kind]; skip {
				return next(c)
			}
			if lim.allow(user.ID, now()) {
				return next(c)
			}

			metrics.RateLimitedTotal.Inc()
			ctx := tghelpers.BuildContext(c)
			logger.Warn(ctx, "tg", "tg.rate_limit",
				slog.String("status", "rate_limited"),
				slog.String("kind", kind),
			)
			if opts.OnLimited != nil {
				if err := opts.OnLimited(c); err != nil {
					logger.Debug(ctx, "tg", "tg.rate_limit.reply",
						slog.String("status", "fail"),
						slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
					)
				}
			}
			return nil
		}
	}
}
