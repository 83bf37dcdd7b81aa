package gates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func TestWindow_Check_Unrestricted(t *testing.T) {
	for _, w := range []Window{
		{},
		{Start: "09:00"},
		{End: "17:00"},
	} {
		in, wait, err := w.Check(time.Now())
		require.NoError(t, err)
		assert.True(t, in)
		assert.Zero(t, wait)
	}
}

func TestWindow_Check_NormalWindow(t *testing.T) {
	w := Window{Start: "09:00", End: "17:00", Timezone: "Europe/Berlin"}
	loc := berlin(t)

	t.Run("inside", func(t *testing.T) {
		in, wait, err := w.Check(time.Date(2026, 3, 4, 12, 30, 0, 0, loc))
		require.NoError(t, err)
		assert.True(t, in)
		assert.Zero(t, wait)
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		in, _, err := w.Check(time.Date(2026, 3, 4, 9, 0, 0, 0, loc))
		require.NoError(t, err)
		assert.True(t, in)

		in, _, err = w.Check(time.Date(2026, 3, 4, 17, 0, 59, 0, loc))
		require.NoError(t, err)
		assert.True(t, in)
	})

	t.Run("before opening waits until today's start", func(t *testing.T) {
		now := time.Date(2026, 3, 4, 7, 0, 0, 0, loc)
		in, wait, err := w.Check(now)
		require.NoError(t, err)
		assert.False(t, in)
		assert.Equal(t, time.Date(2026, 3, 4, 9, 0, 0, 0, loc), now.Add(wait))
	})

	t.Run("after closing waits until tomorrow's start", func(t *testing.T) {
		now := time.Date(2026, 3, 4, 18, 30, 0, 0, loc)
		in, wait, err := w.Check(now)
		require.NoError(t, err)
		assert.False(t, in)
		assert.Equal(t, time.Date(2026, 3, 5, 9, 0, 0, 0, loc), now.Add(wait))
	})
}

func TestWindow_Check_WrapsMidnight(t *testing.T) {
	w := Window{Start: "22:00", End: "06:00", Timezone: "Europe/Berlin"}
	loc := berlin(t)

	t.Run("03:15 is inside", func(t *testing.T) {
		in, wait, err := w.Check(time.Date(2026, 3, 4, 3, 15, 0, 0, loc))
		require.NoError(t, err)
		assert.True(t, in)
		assert.Zero(t, wait)
	})

	t.Run("23:30 is inside", func(t *testing.T) {
		in, _, err := w.Check(time.Date(2026, 3, 4, 23, 30, 0, 0, loc))
		require.NoError(t, err)
		assert.True(t, in)
	})

	t.Run("07:00 waits until 22:00 the same day", func(t *testing.T) {
		now := time.Date(2026, 3, 4, 7, 0, 0, 0, loc)
		in, wait, err := w.Check(now)
		require.NoError(t, err)
		assert.False(t, in)
		assert.Equal(t, time.Date(2026, 3, 4, 22, 0, 0, 0, loc), now.Add(wait))
	})
}

func TestWindow_Check_DSTTransition(t *testing.T) {
	// Berlin springs forward on 2026-03-29: 02:00 CET jumps to 03:00 CEST.
	// The wait target on the far side of the transition must still land on
	// the wall-clock opening time.
	w := Window{Start: "09:00", End: "17:00", Timezone: "Europe/Berlin"}
	loc := berlin(t)

	now := time.Date(2026, 3, 28, 20, 0, 0, 0, loc)
	in, wait, err := w.Check(now)
	require.NoError(t, err)
	assert.False(t, in)

	opens := now.Add(wait).In(loc)
	assert.Equal(t, 9, opens.Hour())
	assert.Equal(t, 0, opens.Minute())
	assert.Equal(t, 29, opens.Day())
	// Wall-clock distance is 13h, but one hour vanished.
	assert.Equal(t, 12*time.Hour, wait)
}

func TestWindow_Check_UTCViewOfLocalWindow(t *testing.T) {
	// 03:15 Berlin expressed as UTC must still count as inside 22:00-06:00.
	w := Window{Start: "22:00", End: "06:00", Timezone: "Europe/Berlin"}
	now := time.Date(2026, 3, 4, 2, 15, 0, 0, time.UTC) // 03:15 CET
	in, _, err := w.Check(now)
	require.NoError(t, err)
	assert.True(t, in)
}

func TestWindow_Check_BadInputs(t *testing.T) {
	_, _, err := Window{Start: "22:00", End: "06:00", Timezone: "Mars/Olympus"}.Check(time.Now())
	assert.Error(t, err)

	_, _, err = Window{Start: "25:99", End: "06:00"}.Check(time.Now())
	assert.Error(t, err)
}
