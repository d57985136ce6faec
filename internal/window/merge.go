// Package window turns a fetched forecast into scored surf windows.
//
// The pipeline is three pure steps over immutable input:
//
//	Merge  joins rating, wave and wind entries by timestamp and drops intervals
//	       rated below the minimum;
//	Group  cuts the merged records into maximal runs of one rating category
//	       spaced exactly one sampling interval apart;
//	Score  averages each run and applies the tide, wind and swell heuristics.
//
// Nothing here performs I/O, so every step is testable without a network.
package window

import (
	"time"

	"github.com/rewired-gh/surfbot/internal/models"
)

// Merge returns, in rating order, one record per rating entry whose value is
// at least minRating and whose timestamp has a wave entry. Missing wind leaves
// the wind fields absent; the record is kept.
func Merge(f *models.Forecast, minRating float64, loc *time.Location) []models.IntervalRecord {
	if f == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	waves := make(map[int64]models.Wave, len(f.Waves))
	for _, w := range f.Waves {
		if _, seen := waves[w.Timestamp]; !seen {
			waves[w.Timestamp] = w
		}
	}
	winds := make(map[int64]models.Wind, len(f.Winds))
	for _, w := range f.Winds {
		if _, seen := winds[w.Timestamp]; !seen {
			winds[w.Timestamp] = w
		}
	}

	var records []models.IntervalRecord
	for _, r := range f.Ratings {
		if r.Value < minRating {
			continue
		}
		wave, ok := waves[r.Timestamp]
		if !ok {
			continue
		}
		wind := winds[r.Timestamp]

		records = append(records, models.IntervalRecord{
			Timestamp:     r.Timestamp,
			LocalTime:     time.Unix(r.Timestamp, 0).In(loc),
			RatingValue:   r.Value,
			Category:      r.Category,
			WaveMin:       wave.SurfMin,
			WaveMax:       wave.SurfMax,
			Period:        wave.DominantPeriod(),
			WindSpeed:     wind.Speed,
			WindDirection: wind.Direction,
		})
	}
	return records
}
