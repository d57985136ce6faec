// Package models defines the domain entities for surfbot.
//
// Terminology:
//   - Forecast: the four datasets (rating, wave, wind, tide) returned by one fetch.
//   - IntervalRecord: one sampling timestamp with its rating, surf and wind joined.
//   - Window: a maximal contiguous run of interval records sharing a rating category.
//
// Everything here is computed fresh on each run; nothing is persisted.
package models

import "fmt"

// Rating is one entry of the rating dataset.
type Rating struct {
	Timestamp int64   // epoch seconds
	Value     float64 // continuous score
	Category  RatingCategory
}

// Wave is one entry of the wave dataset.
type Wave struct {
	Timestamp int64
	SurfMin   float64   // feet
	SurfMax   float64   // feet
	Periods   []Measure // swell periods in listed order, seconds
}

// DominantPeriod returns the period of the first listed swell component.
func (w Wave) DominantPeriod() Measure {
	if len(w.Periods) == 0 {
		return Measure{}
	}
	return w.Periods[0]
}

// Wind is one entry of the wind dataset.
type Wind struct {
	Timestamp int64
	Speed     Measure // knots
	Direction Measure // degrees the wind blows FROM
}

// TideSample is one entry of the tide dataset.
type TideSample struct {
	Timestamp int64
	Height    float64 // feet
}

// Forecast holds the four datasets from a single fetch.
type Forecast struct {
	Ratings []Rating
	Waves   []Wave
	Winds   []Wind
	Tides   []TideSample
}

// Validate checks the cross-field invariants of every dataset entry. Empty
// datasets are valid: a quiet week simply yields no records.
func (f *Forecast) Validate() error {
	for _, w := range f.Waves {
		if w.SurfMin > w.SurfMax {
			return fmt.Errorf("wave at %d: surf min %.2f exceeds max %.2f", w.Timestamp, w.SurfMin, w.SurfMax)
		}
	}
	for _, w := range f.Winds {
		if d, ok := w.Direction.Get(); ok && (d < 0 || d > 360) {
			return fmt.Errorf("wind at %d: direction %.1f out of range", w.Timestamp, d)
		}
	}
	return nil
}
