// Package daylight computes sunrise and sunset for the configured spot so the
// report can show how much of each surf window is actually surfable.
package daylight

import (
	"time"

	"github.com/keep94/sunrise"
)

// Calculator computes daylight hours at a fixed coordinate.
type Calculator struct {
	lat, long float64
}

// New creates a Calculator for the given coordinate.
func New(lat, long float64) *Calculator {
	return &Calculator{lat: lat, long: long}
}

// Hours returns sunrise and sunset on the calendar day of t, expressed in t's
// location. ok is false when the sun does not both rise and set that day.
func (c *Calculator) Hours(t time.Time) (rise, set time.Time, ok bool) {
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())

	var s sunrise.Sunrise
	s.Around(c.lat, c.long, noon)

	// Around only promises a sunrise within a day of noon.
	for i := 0; i < 3 && !sameDay(s.Sunrise(), noon); i++ {
		if s.Sunrise().Before(noon) {
			s.AddDays(1)
		} else {
			s.AddDays(-1)
		}
	}

	rise, set = s.Sunrise(), s.Sunset()
	if !sameDay(rise, noon) || !rise.Before(set) {
		return time.Time{}, time.Time{}, false
	}
	return rise, set, true
}

// Overlaps reports whether [start, end) shares any time with daylight.
func (c *Calculator) Overlaps(start, end time.Time) bool {
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		rise, set, ok := c.Hours(day)
		if ok && start.Before(set) && end.After(rise) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
