package engagement

import "time"

// RefreshZone is the business timezone of the daily refresh (UTC+5:30, no DST).
var RefreshZone = time.FixedZone("IST", 5*60*60+30*60)

const (
	refreshHour   = 9
	refreshMinute = 30
)

// Threshold returns the most recent daily refresh instant at or before now.
func Threshold(now time.Time) time.Time {
	local := now.In(RefreshZone)
	instant := time.Date(local.Year(), local.Month(), local.Day(), refreshHour, refreshMinute, 0, 0, RefreshZone)
	if local.Before(instant) {
		instant = instant.AddDate(0, 0, -1)
	}
	return instant
}

// NextRefresh returns the first refresh instant strictly after now.
func NextRefresh(now time.Time) time.Time {
	return Threshold(now).AddDate(0, 0, 1)
}

// IsFresh reports whether a snapshot fetched at fetchedAt is still current.
func IsFresh(fetchedAt, now time.Time) bool {
	return !fetchedAt.Before(Threshold(now))
}
