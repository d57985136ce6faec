package window

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/rewired-gh/surfbot/internal/models"
)

func TestMerge(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatal(err)
	}

	f := &models.Forecast{
		Ratings: []models.Rating{
			rating(t0, 4.1, models.Good),
			rating(t0+hour, 1.9, models.PoorToFair), // below threshold
			rating(t0+2*hour, 2.5, models.Fair),     // exactly at threshold, no wind
			rating(t0+3*hour, 3.0, models.Fair),     // no wave entry
		},
		Waves: []models.Wave{
			wave(t0, 2, 3, 9, 5),
			wave(t0+hour, 1, 2, 6),
			wave(t0+2*hour, 1.5, 2.5),
		},
		Winds: []models.Wind{
			wind(t0, 8, 350),
			wind(t0+hour, 12, 180),
		},
	}

	got := Merge(f, 2.5, loc)

	want := []models.IntervalRecord{
		{
			Timestamp:     t0,
			LocalTime:     time.Unix(t0, 0).In(loc),
			RatingValue:   4.1,
			Category:      models.Good,
			WaveMin:       2,
			WaveMax:       3,
			Period:        models.Some(9),
			WindSpeed:     models.Some(8),
			WindDirection: models.Some(350),
		},
		{
			Timestamp:   t0 + 2*hour,
			LocalTime:   time.Unix(t0+2*hour, 0).In(loc),
			RatingValue: 2.5,
			Category:    models.Fair,
			WaveMin:     1.5,
			WaveMax:     2.5,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge mismatch (-want,+got):\n%s", diff)
	}

	if got[0].LocalTime.Location().String() != "America/Chicago" {
		t.Errorf("Expected local time in America/Chicago, got %s", got[0].LocalTime.Location())
	}
	for i := range got {
		if err := got[i].Validate(); err != nil {
			t.Errorf("record %d invalid: %v", i, err)
		}
	}
}

func TestMergeDropsRatingWithoutWave(t *testing.T) {
	f := &models.Forecast{
		Ratings: []models.Rating{rating(t0, 4, models.Good)},
		Waves:   []models.Wave{wave(t0+1, 2, 3, 9)}, // off by one second
		Winds:   []models.Wind{wind(t0, 5, 10)},
	}
	if got := Merge(f, 2.5, time.UTC); len(got) != 0 {
		t.Errorf("Expected no records, got %d", len(got))
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	f := &models.Forecast{
		Ratings: []models.Rating{rating(t0, 3, models.Fair), rating(t0+hour, 3.5, models.FairToGood)},
		Waves:   []models.Wave{wave(t0, 1, 2, 8), wave(t0+hour, 2, 3, 10)},
		Winds:   []models.Wind{wind(t0, 4, 20)},
	}
	first := Merge(f, 2.5, time.UTC)
	second := Merge(f, 2.5, time.UTC)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Merge not idempotent (-first,+second):\n%s", diff)
	}
}

func TestMergePreservesRatingOrder(t *testing.T) {
	f := &models.Forecast{
		Ratings: []models.Rating{rating(t0+2*hour, 3, models.Fair), rating(t0, 3, models.Fair), rating(t0+hour, 3, models.Fair)},
		Waves:   []models.Wave{wave(t0, 1, 2), wave(t0+hour, 1, 2), wave(t0+2*hour, 1, 2)},
	}
	got := timestamps(Merge(f, 0, time.UTC))
	want := []int64{t0 + 2*hour, t0, t0 + hour}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want,+got):\n%s", diff)
	}
}

func TestMergeNilForecast(t *testing.T) {
	if got := Merge(nil, 2.5, time.UTC); got != nil {
		t.Errorf("Expected nil, got %v", got)
	}
}
