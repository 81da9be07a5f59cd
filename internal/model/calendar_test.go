package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeasonFor(t *testing.T) {
	cases := []struct {
		month time.Month
		want  string
	}{
		{time.December, "winter"},
		{time.January, "winter"},
		{time.February, "winter"},
		{time.March, "spring"},
		{time.May, "spring"},
		{time.June, "monsoon"},
		{time.September, "monsoon"},
		{time.October, "autumn"},
		{time.November, "autumn"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SeasonFor(tc.month), "month %s", tc.month)
	}
}

func TestTimeOfDayFor(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{4, "night"},
		{5, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{16, "afternoon"},
		{17, "evening"},
		{20, "evening"},
		{21, "night"},
		{0, "night"},
		{23, "night"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TimeOfDayFor(tc.hour), "hour %d", tc.hour)
	}
}
