package models

import "fmt"

// Measure is a reading that the forecast source may omit.
type Measure struct {
	Value float64
	Valid bool
}

// Some wraps a present value.
func Some(v float64) Measure {
	return Measure{Value: v, Valid: true}
}

// MeasureOf converts an optional wire value into a Measure.
func MeasureOf(v *float64) Measure {
	if v == nil {
		return Measure{}
	}
	return Some(*v)
}

// Get returns the value and whether it is present.
func (m Measure) Get() (float64, bool) {
	return m.Value, m.Valid
}

func (m Measure) String() string {
	if !m.Valid {
		return "n/a"
	}
	return fmt.Sprintf("%g", m.Value)
}

// Mean averages the present values of ms. The result is absent when no value
// is present.
func Mean(ms []Measure) Measure {
	var sum float64
	n := 0
	for _, m := range ms {
		if !m.Valid {
			continue
		}
		sum += m.Value
		n++
	}
	if n == 0 {
		return Measure{}
	}
	return Some(sum / float64(n))
}
