package model

import "time"

// SeasonFor maps a month into the four-bucket Indian season calendar:
// Dec–Feb winter, Mar–May spring, Jun–Sep monsoon, Oct–Nov autumn.
func SeasonFor(month time.Month) string {
	switch month {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August, time.September:
		return "monsoon"
	default:
		return "autumn"
	}
}

// TimeOfDayFor buckets an hour of day: 5–11 morning, 12–16 afternoon,
// 17–20 evening, everything else night.
func TimeOfDayFor(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 21:
		return "evening"
	default:
		return "night"
	}
}
