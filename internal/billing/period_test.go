package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestProgress_MidPeriod(t *testing.T) {
	p := Progress(
		date("2024-01-01T00:00:00Z"),
		date("2024-02-01T00:00:00Z"),
		date("2024-01-16T00:00:00Z"),
	)

	assert.Equal(t, int64(31), p.TotalDays)
	assert.Equal(t, int64(15), p.DaysElapsed)
	assert.Equal(t, int64(16), p.DaysRemaining)
	assert.Equal(t, 48.39, p.PercentElapsed)
	assert.Equal(t, 48.39, p.PercentRemainingBased)
}

func TestProgress_PartialDayTruncation(t *testing.T) {
	// 15.5 days elapsed and 14.5 remaining both truncate, so the two
	// percent forms disagree even inside the period.
	p := Progress(
		date("2024-01-01T00:00:00Z"),
		date("2024-01-31T00:00:00Z"),
		date("2024-01-16T12:00:00Z"),
	)

	assert.Equal(t, int64(30), p.TotalDays)
	assert.Equal(t, int64(15), p.DaysElapsed)
	assert.Equal(t, int64(14), p.DaysRemaining)
	assert.Equal(t, 50.0, p.PercentElapsed)
	assert.InDelta(t, 53.33, p.PercentRemainingBased, 0.001)
}

func TestProgress_AfterPeriodEnd(t *testing.T) {
	p := Progress(
		date("2024-01-01T00:00:00Z"),
		date("2024-01-31T00:00:00Z"),
		date("2024-02-10T00:00:00Z"),
	)

	assert.Equal(t, int64(30), p.TotalDays)
	assert.Equal(t, int64(40), p.DaysElapsed)
	// reported remaining never goes negative
	assert.Equal(t, int64(0), p.DaysRemaining)
	// but the remaining-based percent uses the raw negative count and
	// runs past 100
	assert.InDelta(t, 133.33, p.PercentElapsed, 0.001)
	assert.InDelta(t, 133.33, p.PercentRemainingBased, 0.001)
}

func TestProgress_BeforePeriodStart(t *testing.T) {
	p := Progress(
		date("2024-01-10T00:00:00Z"),
		date("2024-02-10T00:00:00Z"),
		date("2024-01-01T00:00:00Z"),
	)

	assert.Equal(t, int64(31), p.TotalDays)
	assert.Equal(t, int64(-9), p.DaysElapsed)
	assert.Equal(t, int64(40), p.DaysRemaining)
	assert.InDelta(t, -29.03, p.PercentElapsed, 0.001)
	assert.InDelta(t, -29.03, p.PercentRemainingBased, 0.001)
}

func TestProgress_ZeroLengthPeriod(t *testing.T) {
	at := date("2024-01-01T00:00:00Z")
	p := Progress(at, at, at)

	assert.Equal(t, int64(0), p.TotalDays)
	assert.Equal(t, 0.0, p.PercentElapsed)
	assert.Equal(t, 0.0, p.PercentRemainingBased)
}

func TestProgress_InvertedPeriod(t *testing.T) {
	p := Progress(
		date("2024-02-01T00:00:00Z"),
		date("2024-01-01T00:00:00Z"),
		date("2024-01-16T00:00:00Z"),
	)

	assert.Equal(t, int64(-31), p.TotalDays)
	assert.Equal(t, 0.0, p.PercentElapsed)
	assert.Equal(t, 0.0, p.PercentRemainingBased)
}
