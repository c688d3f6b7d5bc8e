// Package journal keeps an anonymous record of lookups for operator stats.
// Entries never carry the phone number itself.
package journal

import (
	"context"
	"time"
)

// Entry is one recorded lookup.
type Entry struct {
	UserID         int64     `db:"user_id"`
	CountryCode    int32     `db:"country_code"`
	Region         string    `db:"region"`
	NumberType     int       `db:"number_type"`
	Classification string    `db:"classification"`
	CreatedAt      time.Time `db:"created_at"`
}

// CountryCount is a per-country aggregate.
type CountryCount struct {
	CountryCode int32  `db:"country_code"`
	Region      string `db:"region"`
	Count       int    `db:"count"`
}

// Stats summarises the journal over a time window.
type Stats struct {
	Since            time.Time
	Total            int
	Users            int
	ByClassification map[string]int
	TopCountries     []CountryCount
}

// Recorder stores lookup entries.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Reader aggregates stored entries.
type Reader interface {
	Stats(ctx context.Context, since time.Time, limit int) (*Stats, error)
}

// Noop discards entries; used when the database is disabled.
type Noop struct{}

func (Noop) Record(context.Context, Entry) error { return nil }
