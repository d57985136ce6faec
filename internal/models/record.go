package models

import (
	"errors"
	"time"
)

// IntervalRecord joins the rating, wave and wind datasets at one timestamp.
type IntervalRecord struct {
	Timestamp     int64          // epoch seconds
	LocalTime     time.Time      // Timestamp in the spot's timezone
	RatingValue   float64        // continuous score
	Category      RatingCategory // rating tier
	WaveMin       float64        // feet
	WaveMax       float64        // feet
	Period        Measure        // dominant swell period, seconds
	WindSpeed     Measure        // knots
	WindDirection Measure        // degrees the wind blows FROM
}

// Validate checks that all record fields are consistent.
func (r *IntervalRecord) Validate() error {
	if r.Timestamp == 0 {
		return errors.New("timestamp must not be zero")
	}
	if r.LocalTime.IsZero() {
		return errors.New("local time must be set")
	}
	if r.Category == "" {
		return errors.New("rating category must not be empty")
	}
	if r.WaveMin < 0 || r.WaveMax < 0 {
		return errors.New("wave heights must not be negative")
	}
	if r.WaveMin > r.WaveMax {
		return errors.New("wave min must be <= wave max")
	}
	if d, ok := r.WindDirection.Get(); ok && (d < 0 || d > 360) {
		return errors.New("wind direction must be between 0 and 360 degrees")
	}
	if s, ok := r.WindSpeed.Get(); ok && s < 0 {
		return errors.New("wind speed must not be negative")
	}
	return nil
}

// Window is a maximal contiguous run of records sharing one rating category,
// each record exactly one sampling interval after the previous.
type Window struct {
	Records []IntervalRecord
}

// First returns the opening record. It panics on an empty window, which the
// grouper never produces.
func (w Window) First() IntervalRecord {
	return w.Records[0]
}

// Last returns the closing record.
func (w Window) Last() IntervalRecord {
	return w.Records[len(w.Records)-1]
}

// Start is the local time of the first record.
func (w Window) Start() time.Time {
	return w.First().LocalTime
}

// End is the local time at which the last interval closes.
func (w Window) End(interval time.Duration) time.Time {
	return w.Last().LocalTime.Add(interval)
}

// Category is the rating category shared by every record.
func (w Window) Category() RatingCategory {
	return w.First().Category
}

// Rating is the rating value of the first record.
func (w Window) Rating() float64 {
	return w.First().RatingValue
}

// Len returns the number of records.
func (w Window) Len() int {
	return len(w.Records)
}
