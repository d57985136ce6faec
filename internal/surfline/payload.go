package surfline

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rewired-gh/surfbot/internal/models"
)

// ratingEntry is one element of data.rating.
type ratingEntry struct {
	Timestamp int64 `json:"timestamp"`
	Rating    struct {
		Key   string  `json:"key"`
		Value float64 `json:"value"`
	} `json:"rating"`
}

// waveEntry is one element of data.wave. Only the fields the pipeline reads
// are declared.
type waveEntry struct {
	Timestamp int64 `json:"timestamp"`
	Surf      *struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"surf"`
	Swells []struct {
		Height    *float64 `json:"height"`
		Period    *float64 `json:"period"`
		Direction *float64 `json:"direction"`
	} `json:"swells"`
}

// windEntry is one element of data.wind.
type windEntry struct {
	Timestamp int64    `json:"timestamp"`
	Speed     *float64 `json:"speed"`
	Direction *float64 `json:"direction"`
}

// tideEntry is one element of data.tides.
type tideEntry struct {
	Timestamp int64    `json:"timestamp"`
	Type      string   `json:"type"`
	Height    *float64 `json:"height"`
}

// decodeEntries reads a {"data": {"<key>": [...]}} payload. A payload without
// the array is malformed.
func decodeEntries[T any](r io.Reader, key string) ([]T, error) {
	var envelope struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", key, err)
	}
	raw, ok := envelope.Data[key]
	if !ok || string(raw) == "null" {
		return nil, fmt.Errorf("payload missing data.%s", key)
	}
	var entries []T
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode data.%s: %w", key, err)
	}
	return entries, nil
}

// DecodeRatings parses a rating payload.
func DecodeRatings(r io.Reader) ([]models.Rating, error) {
	entries, err := decodeEntries[ratingEntry](r, string(DatasetRating))
	if err != nil {
		return nil, err
	}
	ratings := make([]models.Rating, 0, len(entries))
	for _, e := range entries {
		ratings = append(ratings, models.Rating{
			Timestamp: e.Timestamp,
			Value:     e.Rating.Value,
			Category:  models.ParseRatingCategory(e.Rating.Key),
		})
	}
	return ratings, nil
}

// DecodeWaves parses a wave payload. Every entry must carry surf heights.
func DecodeWaves(r io.Reader) ([]models.Wave, error) {
	entries, err := decodeEntries[waveEntry](r, string(DatasetWave))
	if err != nil {
		return nil, err
	}
	waves := make([]models.Wave, 0, len(entries))
	for _, e := range entries {
		if e.Surf == nil {
			return nil, fmt.Errorf("wave at %d has no surf heights", e.Timestamp)
		}
		periods := make([]models.Measure, 0, len(e.Swells))
		for _, s := range e.Swells {
			periods = append(periods, models.MeasureOf(s.Period))
		}
		waves = append(waves, models.Wave{
			Timestamp: e.Timestamp,
			SurfMin:   e.Surf.Min,
			SurfMax:   e.Surf.Max,
			Periods:   periods,
		})
	}
	return waves, nil
}

// DecodeWinds parses a wind payload.
func DecodeWinds(r io.Reader) ([]models.Wind, error) {
	entries, err := decodeEntries[windEntry](r, string(DatasetWind))
	if err != nil {
		return nil, err
	}
	winds := make([]models.Wind, 0, len(entries))
	for _, e := range entries {
		winds = append(winds, models.Wind{
			Timestamp: e.Timestamp,
			Speed:     models.MeasureOf(e.Speed),
			Direction: models.MeasureOf(e.Direction),
		})
	}
	return winds, nil
}

// DecodeTides parses a tide payload. Samples without a height are skipped.
func DecodeTides(r io.Reader) ([]models.TideSample, error) {
	entries, err := decodeEntries[tideEntry](r, string(DatasetTides))
	if err != nil {
		return nil, err
	}
	tides := make([]models.TideSample, 0, len(entries))
	for _, e := range entries {
		if e.Height == nil {
			continue
		}
		tides = append(tides, models.TideSample{Timestamp: e.Timestamp, Height: *e.Height})
	}
	return tides, nil
}
