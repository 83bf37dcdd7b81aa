// Package gates implements the two pure scheduling gates the engine consults
// before provider calls: the business-hours time window and the per-campaign
// connection-request quota. Both are pure functions of their inputs and a
// caller-supplied clock instant, so workflow code can evaluate them
// deterministically with the runtime's now().
package gates

import (
	"fmt"
	"time"
)

// Window is a daily send window in an IANA timezone. Empty Start or End
// means no restriction; empty Timezone means UTC. A window whose end is
// earlier than its start wraps midnight (22:00–06:00).
type Window struct {
	Start    string `json:"start,omitempty"` // HH:MM
	End      string `json:"end,omitempty"`   // HH:MM
	Timezone string `json:"timezone,omitempty"`
}

// Check reports whether now falls inside the window and, if not, how long to
// wait until the next in-window instant.
func (w Window) Check(now time.Time) (bool, time.Duration, error) {
	if w.Start == "" || w.End == "" {
		return true, 0, nil
	}

	tz := w.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return false, 0, fmt.Errorf("load timezone %q: %w", tz, err)
	}

	startH, startM, err := parseHHMM(w.Start)
	if err != nil {
		return false, 0, fmt.Errorf("window start: %w", err)
	}
	endH, endM, err := parseHHMM(w.End)
	if err != nil {
		return false, 0, fmt.Errorf("window end: %w", err)
	}

	local := now.In(loc)
	nowMin := local.Hour()*60 + local.Minute()
	startMin := startH*60 + startM
	endMin := endH*60 + endM

	inWindow := false
	if endMin >= startMin {
		inWindow = nowMin >= startMin && nowMin <= endMin
	} else {
		// Wraps midnight.
		inWindow = nowMin >= startMin || nowMin <= endMin
	}
	if inWindow {
		return true, 0, nil
	}

	// Outside the window: wait for today's opening if it is still ahead,
	// otherwise for tomorrow's.
	day := local.Day()
	if nowMin > startMin {
		day++
	}
	// time.Date normalizes day overflow and resolves DST for the target day.
	opens := time.Date(local.Year(), local.Month(), day, startH, startM, 0, 0, loc)
	return false, opens.Sub(now), nil
}

func parseHHMM(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("parse %q as HH:MM: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}
