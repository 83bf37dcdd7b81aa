package gates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(t time.Time) *time.Time { return &t }

func TestEvaluateQuota_FirstUse(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC) // Wednesday
	d := EvaluateQuota(Counters{DailyLimit: 20, WeeklyLimit: 100}, now)

	assert.True(t, d.CanProceed)
	assert.True(t, d.ResetDay, "nil reset timestamp rolls the day counter")
	assert.True(t, d.ResetWeek)
}

func TestEvaluateQuota_UnderLimits(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	d := EvaluateQuota(Counters{
		SentDay: 5, SentWeek: 30,
		LastDayReset: ptr(now.Add(-time.Hour)), LastWeekReset: ptr(now.Add(-time.Hour)),
		DailyLimit: 20, WeeklyLimit: 100,
	}, now)

	assert.True(t, d.CanProceed)
	assert.False(t, d.ResetDay)
	assert.False(t, d.ResetWeek)
}

func TestEvaluateQuota_DailyExceeded(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	d := EvaluateQuota(Counters{
		SentDay: 20, SentWeek: 30,
		LastDayReset: ptr(now), LastWeekReset: ptr(now),
		DailyLimit: 20, WeeklyLimit: 100,
	}, now)

	assert.False(t, d.CanProceed)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), d.WaitUntil)
}

func TestEvaluateQuota_WeeklyExceeded(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC) // Wednesday
	d := EvaluateQuota(Counters{
		SentDay: 1, SentWeek: 100,
		LastDayReset: ptr(now), LastWeekReset: ptr(now),
		DailyLimit: 20, WeeklyLimit: 100,
	}, now)

	assert.False(t, d.CanProceed)
	// Next Monday is March 9.
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), d.WaitUntil)
}

func TestEvaluateQuota_BothExceeded(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	d := EvaluateQuota(Counters{
		SentDay: 20, SentWeek: 100,
		LastDayReset: ptr(now), LastWeekReset: ptr(now),
		DailyLimit: 20, WeeklyLimit: 100,
	}, now)

	assert.False(t, d.CanProceed)
	// The later of next midnight (Mar 5) and next Monday (Mar 9).
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), d.WaitUntil)
}

func TestEvaluateQuota_DayRollover(t *testing.T) {
	now := time.Date(2026, 3, 4, 0, 5, 0, 0, time.UTC)
	yesterday := time.Date(2026, 3, 3, 23, 55, 0, 0, time.UTC)
	d := EvaluateQuota(Counters{
		SentDay: 20, SentWeek: 30,
		LastDayReset: ptr(yesterday), LastWeekReset: ptr(yesterday),
		DailyLimit: 20, WeeklyLimit: 100,
	}, now)

	assert.True(t, d.CanProceed, "full day counter is stale after midnight")
	assert.True(t, d.ResetDay)
	assert.False(t, d.ResetWeek, "Tuesday and Wednesday share an ISO week")
}

func TestEvaluateQuota_WeekRollover(t *testing.T) {
	// Sunday 2026-03-08 -> Monday 2026-03-09 crosses an ISO week boundary.
	now := time.Date(2026, 3, 9, 0, 5, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 8, 23, 55, 0, 0, time.UTC)
	d := EvaluateQuota(Counters{
		SentDay: 0, SentWeek: 100,
		LastDayReset: ptr(sunday), LastWeekReset: ptr(sunday),
		DailyLimit: 20, WeeklyLimit: 100,
	}, now)

	assert.True(t, d.CanProceed)
	assert.True(t, d.ResetWeek)
}

func TestEvaluateQuota_ZeroLimitsAreUnlimited(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	d := EvaluateQuota(Counters{
		SentDay: 9999, SentWeek: 9999,
		LastDayReset: ptr(now), LastWeekReset: ptr(now),
	}, now)
	assert.True(t, d.CanProceed)
}

func TestNextMondayMidnight(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"Sunday is one day ahead",
			time.Date(2026, 3, 8, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			"Monday waits a full week",
			time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			"Wednesday",
			time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			"Saturday",
			time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextMondayMidnight(tt.now))
		})
	}
}

func TestNextLocalMidnight_MonthBoundary(t *testing.T) {
	now := time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), NextLocalMidnight(now))
}
