package window

import "github.com/rewired-gh/surfbot/internal/models"

// TideTrend describes how the tide moves across a window.
type TideTrend struct {
	Available   bool
	Rising      bool
	StartHeight float64 // feet
	EndHeight   float64 // feet
}

// Direction returns "Rising" or "Falling". Equal heights count as falling.
func (t TideTrend) Direction() string {
	if t.Rising {
		return "Rising"
	}
	return "Falling"
}

// activeSample returns the most recent sample at or before ts.
func activeSample(tides []models.TideSample, ts int64) (models.TideSample, bool) {
	var best models.TideSample
	found := false
	for _, s := range tides {
		if s.Timestamp > ts {
			continue
		}
		if !found || s.Timestamp >= best.Timestamp {
			best = s
			found = true
		}
	}
	return best, found
}

// tideTrend compares the samples active at the window's first and last records.
func tideTrend(tides []models.TideSample, startTS, endTS int64) TideTrend {
	start, ok := activeSample(tides, startTS)
	if !ok {
		return TideTrend{}
	}
	end, ok := activeSample(tides, endTS)
	if !ok {
		return TideTrend{}
	}
	return TideTrend{
		Available:   true,
		Rising:      end.Height > start.Height,
		StartHeight: start.Height,
		EndHeight:   end.Height,
	}
}
