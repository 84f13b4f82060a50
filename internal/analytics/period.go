package analytics

import "time"

// Period selects the dashboard window.
type Period string

const (
	Period7d  Period = "7d"
	Period30d Period = "30d"
	Period90d Period = "90d"
	PeriodAll Period = "all"
)

// ParsePeriod falls back to 30d for anything unrecognised.
func ParsePeriod(s string) Period {
	switch p := Period(s); p {
	case Period7d, Period30d, Period90d, PeriodAll:
		return p
	default:
		return Period30d
	}
}

// Days is the window length; 0 means unbounded.
func (p Period) Days() int {
	switch p {
	case Period7d:
		return 7
	case Period90d:
		return 90
	case PeriodAll:
		return 0
	default:
		return 30
	}
}

// Weekly reports whether time series are bucketed by ISO week instead of day.
func (p Period) Weekly() bool {
	d := p.Days()
	return d == 0 || d > 30
}

// Window is a half-open time range [Start, End); a zero bound is open.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && !t.Before(w.End) {
		return false
	}
	return true
}

// Current covers the last N days up to and including now.
func (p Period) Current(now time.Time) Window {
	d := p.Days()
	if d == 0 {
		return Window{}
	}
	return Window{Start: now.Add(-days(d))}
}

// Previous is the equal-length window immediately before Current. The
// all-time period has none.
func (p Period) Previous(now time.Time) (Window, bool) {
	d := p.Days()
	if d == 0 {
		return Window{}, false
	}
	return Window{Start: now.Add(-days(2 * d)), End: now.Add(-days(d))}, true
}

// BucketKey returns the series key for t under this period's granularity.
func (p Period) BucketKey(t time.Time) string {
	if p.Weekly() {
		return WeekKey(t)
	}
	return DayKey(t)
}

// DayKey formats the UTC calendar date of t.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WeekKey formats the Monday starting the ISO week that contains t, in UTC.
func WeekKey(t time.Time) string {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return t.AddDate(0, 0, -offset).Format("2006-01-02")
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
