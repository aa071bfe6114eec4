package happyhourd

import (
	"regexp"
	"time"
)

// clockRe matches 12-hour wall-clock times like "4:00 PM" or "11:30am".
var clockRe = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*([AaPp])\.?[Mm]\.?\s*$`)

// StartingSoonHorizon is how far ahead "starting soon" looks.
const StartingSoonHorizon = 120 * time.Minute

// ParseClockMinutes converts a 12-hour time string with AM/PM suffix
// into minutes since midnight. "12 AM" maps to 0 and "12 PM" to 720.
//
// Strings that do not match the expected format parse to minute 0.
// That is deliberate, load-bearing behavior: malformed listing data
// degrades to midnight rather than failing the whole query path. Do
// not change it without product sign-off — at exactly midnight it can
// surface a malformed venue as "happening now".
func ParseClockMinutes(s string) int {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	hour := atoi2(m[1])
	minute := atoi2(m[2])
	pm := m[3] == "P" || m[3] == "p"

	if hour == 12 {
		hour = 0
	}
	if pm {
		hour += 12
	}

	return hour*60 + minute
}

// atoi2 parses a 1-2 digit decimal string already vetted by clockRe.
func atoi2(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// minutesOfDay returns now as minutes since local midnight.
func minutesOfDay(now time.Time) int {
	return now.Hour()*60 + now.Minute()
}

// HappeningNow reports whether the venue's deal is in progress at now:
// today's weekday is one of the venue's days and now falls inside the
// recurring start/end window (inclusive on both ends).
func HappeningNow(v *Venue, now time.Time) bool {
	if !v.OnDay(now.Weekday().String()) {
		return false
	}
	cur := minutesOfDay(now)
	return ParseClockMinutes(v.StartTime) <= cur && cur <= ParseClockMinutes(v.EndTime)
}

// StartingSoon reports whether the venue's deal has not started yet
// but begins within the next two hours, on today's weekday.
func StartingSoon(v *Venue, now time.Time) bool {
	if !v.OnDay(now.Weekday().String()) {
		return false
	}
	cur := minutesOfDay(now)
	start := ParseClockMinutes(v.StartTime)
	horizon := int(StartingSoonHorizon / time.Minute)
	return cur < start && start <= cur+horizon
}

// HappeningToday reports whether today's weekday is one of the
// venue's deal days, regardless of the time of day.
func HappeningToday(v *Venue, now time.Time) bool {
	return v.OnDay(now.Weekday().String())
}
