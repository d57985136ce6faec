package models

import (
	"fmt"
	"math"
)

// DirectionRange is a closed compass arc running clockwise From → To, in
// degrees. An arc with From > To wraps through north, so {300, 60} covers
// 300°..360° and 0°..60°.
type DirectionRange struct {
	From float64 `mapstructure:"from"`
	To   float64 `mapstructure:"to"`
}

// Contains reports whether deg lies on the arc, bounds included.
func (r DirectionRange) Contains(deg float64) bool {
	deg = NormalizeDegrees(deg)
	if r.From <= r.To {
		return deg >= r.From && deg <= r.To
	}
	return deg >= r.From || deg <= r.To
}

// Validate checks that both bounds are compass bearings.
func (r DirectionRange) Validate() error {
	if r.From < 0 || r.From > 360 || r.To < 0 || r.To > 360 {
		return fmt.Errorf("direction range %s: bounds must be between 0 and 360", r)
	}
	return nil
}

func (r DirectionRange) String() string {
	return fmt.Sprintf("%.0f°-%.0f°", r.From, r.To)
}

// NormalizeDegrees folds any angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
