package services

import (
	"strings"
	"testing"
	"time"

	"maintdesk_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestNewReferenceNumber(t *testing.T) {
	n := newReferenceNumber("JOB")

	parts := strings.Split(n, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "JOB", parts[0])
	assert.Len(t, parts[2], 5)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])

	assert.NotEqual(t, n, newReferenceNumber("JOB"))
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-03-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.March, got.Month())

	got, err = parseDate("2026-03-15T09:30:00Z")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 9, got.Hour())

	got, err = parseDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseDate("15/03/2026")
	assert.Error(t, err)
}

func TestAvgCompletionDays(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, avgCompletionDays(nil))

	rows := []repositories.CompletionRow{
		{CreatedAt: base, CompletedDate: timePtr(base.AddDate(0, 0, 2))},
		{CreatedAt: base, CompletedDate: timePtr(base.AddDate(0, 0, 4))},
	}
	assert.InDelta(t, 3.0, avgCompletionDays(rows), 0.001)
}

func TestAvgFirstQuoteDays(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, avgFirstQuoteDays(nil))

	rows := []repositories.FirstQuoteRow{
		{JobCreatedAt: base, FirstQuoteAt: base.Add(12 * time.Hour)},
		{JobCreatedAt: base, FirstQuoteAt: base.Add(36 * time.Hour)},
	}
	assert.InDelta(t, 1.0, avgFirstQuoteDays(rows), 0.001)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 3.3, round1(3.34))
	assert.Equal(t, 3.4, round1(3.35))
	assert.Equal(t, 0.0, round1(0))
}

func TestTopTrades(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := []repositories.TradeJobRow{
		{TradeID: "t-1", CompanyName: "Spark Bros", Rating: 4.5,
			ScheduledDate: timePtr(base), CompletedDate: timePtr(base.AddDate(0, 0, 2))},
		{TradeID: "t-1", CompanyName: "Spark Bros", Rating: 4.5,
			ScheduledDate: timePtr(base), CompletedDate: timePtr(base.AddDate(0, 0, 4))},
		{TradeID: "t-2", CompanyName: "Pipe Co", Rating: 3.8,
			ScheduledDate: nil, CompletedDate: timePtr(base.AddDate(0, 0, 1))},
	}

	perf := topTrades(rows)
	require.Len(t, perf, 2)

	// Ranked by completed job count.
	assert.Equal(t, "Spark Bros", perf[0].CompanyName)
	assert.Equal(t, 2, perf[0].CompletedJobs)
	assert.InDelta(t, 3.0, perf[0].AvgCompletionDays, 0.001)

	assert.Equal(t, "Pipe Co", perf[1].CompanyName)
	assert.Equal(t, 1, perf[1].CompletedJobs)
	// No scheduled date means no completion-days sample.
	assert.Equal(t, 0.0, perf[1].AvgCompletionDays)
}
