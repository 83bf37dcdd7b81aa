package gates

import "time"

// Counters is a snapshot of a campaign's connection-request accounting.
// Limits of zero or below mean unlimited.
type Counters struct {
	SentDay       int
	SentWeek      int
	LastDayReset  *time.Time
	LastWeekReset *time.Time
	DailyLimit    int
	WeeklyLimit   int
}

// Decision is the quota gate's answer. ResetDay/ResetWeek tell the caller
// which counters have rolled over and must be zeroed in storage before any
// increment.
type Decision struct {
	CanProceed bool
	WaitUntil  time.Time
	ResetDay   bool
	ResetWeek  bool
}

// EvaluateQuota applies the calendar rollovers and decides whether another
// connection request may be sent at now. Day boundaries are local midnight;
// week boundaries are ISO weeks (Monday 00:00).
func EvaluateQuota(c Counters, now time.Time) Decision {
	d := Decision{}

	sentDay := c.SentDay
	if c.LastDayReset == nil || beforeCalendarDay(*c.LastDayReset, now) {
		sentDay = 0
		d.ResetDay = true
	}

	sentWeek := c.SentWeek
	if c.LastWeekReset == nil || beforeISOWeek(*c.LastWeekReset, now) {
		sentWeek = 0
		d.ResetWeek = true
	}

	dailyExceeded := c.DailyLimit > 0 && sentDay >= c.DailyLimit
	weeklyExceeded := c.WeeklyLimit > 0 && sentWeek >= c.WeeklyLimit

	switch {
	case dailyExceeded && weeklyExceeded:
		day := NextLocalMidnight(now)
		week := NextMondayMidnight(now)
		d.WaitUntil = day
		if week.After(day) {
			d.WaitUntil = week
		}
	case dailyExceeded:
		d.WaitUntil = NextLocalMidnight(now)
	case weeklyExceeded:
		d.WaitUntil = NextMondayMidnight(now)
	default:
		d.CanProceed = true
	}
	return d
}

// NextLocalMidnight returns 00:00:00 of the following calendar day in now's
// location.
func NextLocalMidnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
}

// NextMondayMidnight returns 00:00:00 of the next Monday in now's location.
// On a Sunday that is one day ahead; on any other weekday 8-dow days ahead,
// so a Monday waits a full week.
func NextMondayMidnight(now time.Time) time.Time {
	days := 8 - int(now.Weekday())
	if now.Weekday() == time.Sunday {
		days = 1
	}
	return time.Date(now.Year(), now.Month(), now.Day()+days, 0, 0, 0, 0, now.Location())
}

// beforeCalendarDay reports whether a's calendar day precedes b's, both read
// in b's location.
func beforeCalendarDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

// beforeISOWeek reports whether a falls in an earlier ISO week than b.
func beforeISOWeek(a, b time.Time) bool {
	ay, aw := a.In(b.Location()).ISOWeek()
	by, bw := b.ISOWeek()
	if ay != by {
		return ay < by
	}
	return aw < bw
}
