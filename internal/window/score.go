package window

import (
	"github.com/rewired-gh/surfbot/internal/models"
)

// WindQuality labels how the average wind direction affects the surface.
type WindQuality string

const (
	WindUnlabeled  WindQuality = ""
	WindClean      WindQuality = "clean"
	WindChoppy     WindQuality = "choppy"
	WindCrossShore WindQuality = "cross-shore"
)

// ScoreConfig holds the site-specific heuristics.
type ScoreConfig struct {
	IdealTideMaxHeight float64 // feet; rising tide starting at or below counts as ideal
	MinPeriodGood      float64 // seconds; bar for FAIR_TO_GOOD and better
	MinPeriodFair      float64 // seconds; bar for FAIR
	Offshore           models.DirectionRange
	Onshore            models.DirectionRange
	CrossShore         []models.DirectionRange
}

// DefaultScoreConfig returns thresholds for a beach facing roughly south,
// where north winds blow offshore.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		IdealTideMaxHeight: 0.5,
		MinPeriodGood:      7,
		MinPeriodFair:      11,
		Offshore:           models.DirectionRange{From: 300, To: 60},
		Onshore:            models.DirectionRange{From: 120, To: 240},
		CrossShore: []models.DirectionRange{
			{From: 75, To: 105},
			{From: 255, To: 285},
		},
	}
}

// Conditions is a window with its averages and derived flags.
type Conditions struct {
	Window models.Window

	WaveMin       float64 // feet, mean of record minimums
	WaveMax       float64 // feet, mean of record maximums
	Period        models.Measure
	WindSpeed     models.Measure
	WindDirection models.Measure

	Tide        TideTrend
	IdealTide   bool
	Offshore    bool
	WindQuality WindQuality
	Compass     Compass // meaningful only when WindDirection is present

	// GoodCombo makes the window worthy of a notification.
	GoodCombo bool
	// Perfect only changes how the window is displayed.
	Perfect bool
}

// Scorer applies a ScoreConfig to windows.
type Scorer struct {
	cfg ScoreConfig
}

// NewScorer creates a Scorer
func NewScorer(cfg ScoreConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// ScoreAll scores every window in order.
func (s *Scorer) ScoreAll(windows []models.Window, tides []models.TideSample) []Conditions {
	result := make([]Conditions, 0, len(windows))
	for _, w := range windows {
		result = append(result, s.Score(w, tides))
	}
	return result
}

// Score computes the averages and flags for one non-empty window.
func (s *Scorer) Score(w models.Window, tides []models.TideSample) Conditions {
	n := float64(w.Len())
	var sumMin, sumMax float64
	periods := make([]models.Measure, 0, w.Len())
	speeds := make([]models.Measure, 0, w.Len())
	directions := make([]models.Measure, 0, w.Len())
	for _, r := range w.Records {
		sumMin += r.WaveMin
		sumMax += r.WaveMax
		periods = append(periods, r.Period)
		speeds = append(speeds, r.WindSpeed)
		directions = append(directions, r.WindDirection)
	}

	c := Conditions{
		Window:        w,
		WaveMin:       sumMin / n,
		WaveMax:       sumMax / n,
		Period:        models.Mean(periods),
		WindSpeed:     models.Mean(speeds),
		WindDirection: models.Mean(directions),
		Tide:          tideTrend(tides, w.First().Timestamp, w.Last().Timestamp),
	}

	c.IdealTide = c.Tide.Available && c.Tide.Rising && c.Tide.StartHeight <= s.cfg.IdealTideMaxHeight
	if dir, ok := c.WindDirection.Get(); ok {
		c.Offshore = s.cfg.Offshore.Contains(dir)
		c.WindQuality = s.windQuality(dir)
		c.Compass = CompassToward(dir)
	}
	c.GoodCombo = s.goodCombo(w.Category(), c.Period)
	c.Perfect = c.Offshore && c.IdealTide && c.GoodCombo

	return c
}

// windQuality checks the bands in fixed priority: offshore, onshore, then
// cross-shore. Directions between bands get no label.
func (s *Scorer) windQuality(dir float64) WindQuality {
	switch {
	case s.cfg.Offshore.Contains(dir):
		return WindClean
	case s.cfg.Onshore.Contains(dir):
		return WindChoppy
	}
	for _, band := range s.cfg.CrossShore {
		if band.Contains(dir) {
			return WindCrossShore
		}
	}
	return WindUnlabeled
}

// goodCombo is the notification gate: FAIR_TO_GOOD or better with a decent
// period, or plain FAIR with a long one. Lower categories never qualify.
func (s *Scorer) goodCombo(category models.RatingCategory, period models.Measure) bool {
	p, ok := period.Get()
	if !ok {
		return false
	}
	switch {
	case category.AtLeast(models.FairToGood):
		return p >= s.cfg.MinPeriodGood
	case category == models.Fair:
		return p >= s.cfg.MinPeriodFair
	}
	return false
}
