package journal

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })
	return NewRepository(sqlx.NewDb(raw, "postgres")), mock
}

func TestRecordStampsCreatedAt(t *testing.T) {
	repo, mock := newMock(t)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return at }

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO lookup_journal")).
		WithArgs(int64(7), int32(91), "IN", 1, "valid", at).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Record(context.Background(), Entry{
		UserID:         7,
		CountryCode:    91,
		Region:         "IN",
		NumberType:     1,
		Classification: "valid",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordWrapsDriverError(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO lookup_journal")).
		WillReturnError(errors.New("connection reset"))

	err := repo.Record(context.Background(), Entry{UserID: 1, CreatedAt: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "journal: insert")
}

func TestStatsAggregates(t *testing.T) {
	repo, mock := newMock(t)
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) AS total")).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"total", "users"}).AddRow(12, 4))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT classification, COUNT(*)")).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"classification", "count"}).
			AddRow("valid", 9).
			AddRow("invalid", 3))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT country_code, region, COUNT(*)")).
		WithArgs(since, 3).
		WillReturnRows(sqlmock.NewRows([]string{"country_code", "region", "count"}).
			AddRow(91, "IN", 6).
			AddRow(1, "US", 3))

	stats, err := repo.Stats(context.Background(), since, 3)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, 12, stats.Total)
	assert.Equal(t, 4, stats.Users)
	assert.Equal(t, map[string]int{"valid": 9, "invalid": 3}, stats.ByClassification)
	assert.Equal(t, []CountryCount{
		{CountryCode: 91, Region: "IN", Count: 6},
		{CountryCode: 1, Region: "US", Count: 3},
	}, stats.TopCountries)
}

func TestStatsDefaultLimit(t *testing.T) {
	repo, mock := newMock(t)
	since := time.Unix(0, 0).UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) AS total")).
		WillReturnRows(sqlmock.NewRows([]string{"total", "users"}).AddRow(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT classification, COUNT(*)")).
		WillReturnRows(sqlmock.NewRows([]string{"classification", "count"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT country_code, region, COUNT(*)")).
		WithArgs(since, 5).
		WillReturnRows(sqlmock.NewRows([]string{"country_code", "region", "count"}))

	stats, err := repo.Stats(context.Background(), since, 0)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.TopCountries)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = Noop{}
	assert.NoError(t, r.Record(context.Background(), Entry{}))
}
