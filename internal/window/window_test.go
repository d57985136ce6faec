package window

import (
	"time"

	"github.com/rewired-gh/surfbot/internal/models"
)

// t0 is 2025-06-03 06:00 UTC.
const t0 int64 = 1748930400

const hour int64 = 3600

func rating(ts int64, value float64, cat models.RatingCategory) models.Rating {
	return models.Rating{Timestamp: ts, Value: value, Category: cat}
}

func wave(ts int64, min, max float64, periods ...float64) models.Wave {
	w := models.Wave{Timestamp: ts, SurfMin: min, SurfMax: max}
	for _, p := range periods {
		w.Periods = append(w.Periods, models.Some(p))
	}
	return w
}

func wind(ts int64, speed, direction float64) models.Wind {
	return models.Wind{Timestamp: ts, Speed: models.Some(speed), Direction: models.Some(direction)}
}

// record builds a merged record directly, bypassing Merge.
func record(ts int64, cat models.RatingCategory) models.IntervalRecord {
	return models.IntervalRecord{
		Timestamp:   ts,
		LocalTime:   time.Unix(ts, 0).UTC(),
		RatingValue: 3,
		Category:    cat,
		WaveMin:     2,
		WaveMax:     3,
	}
}

func timestamps(records []models.IntervalRecord) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.Timestamp
	}
	return out
}
