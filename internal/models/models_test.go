package models

import (
	"testing"
	"time"
)

func TestRatingCategoryLabel(t *testing.T) {
	tests := []struct {
		category RatingCategory
		expected string
	}{
		{Poor, "Poor"},
		{PoorToFair, "Poor To Fair"},
		{FairToGood, "Fair To Good"},
		{GoodToEpic, "Good To Epic"},
		{Epic, "Epic"},
	}

	for _, tt := range tests {
		if got := tt.category.Label(); got != tt.expected {
			t.Errorf("%s.Label() = %q, expected %q", tt.category, got, tt.expected)
		}
	}
}

func TestRatingCategoryOrdering(t *testing.T) {
	for i := 1; i < len(categoryOrder); i++ {
		lo, hi := categoryOrder[i-1], categoryOrder[i]
		if lo.Rank() >= hi.Rank() {
			t.Errorf("expected %s to rank below %s", lo, hi)
		}
		if !hi.AtLeast(lo) {
			t.Errorf("expected %s.AtLeast(%s)", hi, lo)
		}
		if lo.AtLeast(hi) {
			t.Errorf("did not expect %s.AtLeast(%s)", lo, hi)
		}
	}

	unknown := ParseRatingCategory("flat")
	if unknown.Known() {
		t.Errorf("expected %q to be unknown", unknown)
	}
	if unknown.AtLeast(Poor) {
		t.Errorf("unknown category must not rank at or above POOR")
	}
	if got := ParseRatingCategory(" fair_to_good "); got != FairToGood {
		t.Errorf("ParseRatingCategory normalized to %q, expected %q", got, FairToGood)
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name    string
		input   []Measure
		want    float64
		present bool
	}{
		{name: "empty", input: nil, present: false},
		{name: "all missing", input: []Measure{{}, {}}, present: false},
		{name: "ignores missing", input: []Measure{Some(10), {}, Some(14)}, want: 12, present: true},
		{name: "zero is a value", input: []Measure{Some(0), Some(4)}, want: 2, present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Mean(tt.input).Get()
			if ok != tt.present {
				t.Fatalf("Mean present = %v, expected %v", ok, tt.present)
			}
			if ok && got != tt.want {
				t.Errorf("Mean = %f, expected %f", got, tt.want)
			}
		})
	}
}

func TestMeasureOf(t *testing.T) {
	if MeasureOf(nil).Valid {
		t.Error("MeasureOf(nil) should be absent")
	}
	v := 7.5
	if got, ok := MeasureOf(&v).Get(); !ok || got != 7.5 {
		t.Errorf("MeasureOf(&7.5) = %v, %v", got, ok)
	}
}

func TestIntervalRecordValidate(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	valid := IntervalRecord{
		Timestamp:     now.Unix(),
		LocalTime:     now,
		RatingValue:   3,
		Category:      Fair,
		WaveMin:       2,
		WaveMax:       3,
		Period:        Some(9),
		WindSpeed:     Some(8),
		WindDirection: Some(350),
	}

	tests := []struct {
		name    string
		mutate  func(r *IntervalRecord)
		wantErr bool
	}{
		{name: "valid record", mutate: func(r *IntervalRecord) {}, wantErr: false},
		{name: "missing wind is fine", mutate: func(r *IntervalRecord) { r.WindSpeed, r.WindDirection = Measure{}, Measure{} }, wantErr: false},
		{name: "zero timestamp", mutate: func(r *IntervalRecord) { r.Timestamp = 0 }, wantErr: true},
		{name: "empty category", mutate: func(r *IntervalRecord) { r.Category = "" }, wantErr: true},
		{name: "inverted wave range", mutate: func(r *IntervalRecord) { r.WaveMin = 5 }, wantErr: true},
		{name: "direction out of range", mutate: func(r *IntervalRecord) { r.WindDirection = Some(400) }, wantErr: true},
		{name: "negative speed", mutate: func(r *IntervalRecord) { r.WindSpeed = Some(-1) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("IntervalRecord.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWindowBounds(t *testing.T) {
	start := time.Date(2025, time.June, 3, 6, 0, 0, 0, time.UTC)
	w := Window{Records: []IntervalRecord{
		{Timestamp: start.Unix(), LocalTime: start, Category: Good, RatingValue: 4.1},
		{Timestamp: start.Add(time.Hour).Unix(), LocalTime: start.Add(time.Hour), Category: Good, RatingValue: 4.3},
	}}

	if !w.Start().Equal(start) {
		t.Errorf("Start = %v, expected %v", w.Start(), start)
	}
	if want := start.Add(2 * time.Hour); !w.End(time.Hour).Equal(want) {
		t.Errorf("End = %v, expected %v", w.End(time.Hour), want)
	}
	if w.Category() != Good || w.Rating() != 4.1 || w.Len() != 2 {
		t.Errorf("unexpected window summary: %s %.1f %d", w.Category(), w.Rating(), w.Len())
	}
}

func TestForecastValidate(t *testing.T) {
	f := Forecast{
		Ratings: []Rating{{Timestamp: 1, Value: 3, Category: Fair}},
		Waves:   []Wave{{Timestamp: 1, SurfMin: 1, SurfMax: 2}},
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.Waves[0].SurfMin = 3
	if err := f.Validate(); err == nil {
		t.Error("expected error for inverted surf range")
	}

	f.Waves[0].SurfMin = 1
	f.Winds = []Wind{{Timestamp: 1, Direction: Some(361)}}
	if err := f.Validate(); err == nil {
		t.Error("expected error for wind direction out of range")
	}

	empty := Forecast{}
	if err := empty.Validate(); err != nil {
		t.Errorf("empty forecast should be valid, got %v", err)
	}
}

func TestDirectionRangeContains(t *testing.T) {
	offshore := DirectionRange{From: 300, To: 60}
	onshore := DirectionRange{From: 120, To: 240}

	tests := []struct {
		name  string
		r     DirectionRange
		deg   float64
		wants bool
	}{
		{"wrapping low edge", offshore, 300, true},
		{"wrapping high edge", offshore, 60, true},
		{"wrapping north", offshore, 0, true},
		{"wrapping 360", offshore, 360, true},
		{"wrapping outside", offshore, 61, false},
		{"wrapping outside west", offshore, 299.9, false},
		{"plain inside", onshore, 180, true},
		{"plain edge", onshore, 240, true},
		{"plain outside", onshore, 119, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.deg); got != tt.wants {
				t.Errorf("%s.Contains(%v) = %v, expected %v", tt.r, tt.deg, got, tt.wants)
			}
		})
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := map[float64]float64{530: 170, -10: 350, 360: 0, 45: 45}
	for in, want := range tests {
		if got := NormalizeDegrees(in); got != want {
			t.Errorf("NormalizeDegrees(%v) = %v, expected %v", in, got, want)
		}
	}
}
