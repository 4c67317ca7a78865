package temperature

import (
	"errors"
	"testing"
)

func TestNewRecordNormalizesScale(t *testing.T) {
	r, err := NewRecord("2025-04-01", []float64{20.5}, "CELSIUS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Scale != ScaleCelsius {
		t.Errorf("Scale = %q; want %q", r.Scale, ScaleCelsius)
	}
}

func TestNewRecordRejectsInvalidScale(t *testing.T) {
	if _, err := NewRecord("2025-04-01", nil, "rankine"); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("error = %v; want ErrInvalidScale", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	r := &Record{Date: "2025-04-01", Readings: []float64{20.5, 22.1}, Scale: ScaleCelsius}
	clone := r.Clone()

	clone.Readings[0] = 99
	clone.Scale = ScaleKelvin

	if r.Readings[0] != 20.5 {
		t.Errorf("original reading = %v; want 20.5", r.Readings[0])
	}
	if r.Scale != ScaleCelsius {
		t.Errorf("original scale = %q; want celsius", r.Scale)
	}
}

func TestRecordSummary(t *testing.T) {
	r, err := NewRecord("2025-04-01", []float64{20.5, 22.1, 19.8}, "celsius")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := r.Summary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Min != 19.8 {
		t.Errorf("Min = %v; want 19.8", summary.Min)
	}
	if summary.Max != 22.1 {
		t.Errorf("Max = %v; want 22.1", summary.Max)
	}
	if summary.Avg != 20.8 {
		t.Errorf("Avg = %v; want 20.8", summary.Avg)
	}
	if summary.Date != "2025-04-01" || summary.Scale != ScaleCelsius {
		t.Errorf("Date/Scale = %q/%q; want 2025-04-01/celsius", summary.Date, summary.Scale)
	}
}

func TestRecordSummarySingleReading(t *testing.T) {
	r := &Record{Date: "2025-05-03", Readings: []float64{22.5}, Scale: ScaleCelsius}
	summary, err := r.Summary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Min != 22.5 || summary.Max != 22.5 || summary.Avg != 22.5 {
		t.Errorf("summary = %+v; want min=max=avg=22.5", summary)
	}
}

func TestRecordSummaryEmpty(t *testing.T) {
	r := &Record{Date: "2025-05-01", Scale: ScaleCelsius}
	if _, err := r.Summary(); !errors.Is(err, ErrNoData) {
		t.Errorf("error = %v; want ErrNoData", err)
	}
}

func TestConvertToAllPairs(t *testing.T) {
	cases := []struct {
		value    float64
		from, to Scale
		want     float64
	}{
		{0, ScaleCelsius, ScaleFahrenheit, 32.0},
		{0, ScaleCelsius, ScaleKelvin, 273.15},
		{32, ScaleFahrenheit, ScaleCelsius, 0.0},
		{32, ScaleFahrenheit, ScaleKelvin, 273.15},
		{273.15, ScaleKelvin, ScaleCelsius, 0.0},
		{273.15, ScaleKelvin, ScaleFahrenheit, 32.0},
	}
	for _, tc := range cases {
		r := &Record{Date: "2025-04-01", Readings: []float64{tc.value}, Scale: tc.from}
		r.ConvertTo(tc.to)
		if r.Scale != tc.to {
			t.Errorf("%s->%s: Scale = %q; want %q", tc.from, tc.to, r.Scale, tc.to)
		}
		if r.Readings[0] != tc.want {
			t.Errorf("%s->%s: reading = %v; want %v", tc.from, tc.to, r.Readings[0], tc.want)
		}
	}
}

func TestConvertToSameScale(t *testing.T) {
	r := &Record{Date: "2025-04-01", Readings: []float64{25.0}, Scale: ScaleCelsius}
	r.ConvertTo(ScaleCelsius)
	if r.Scale != ScaleCelsius || r.Readings[0] != 25.0 {
		t.Errorf("record changed: %+v", r)
	}
}

func TestConvertToEmptyReadings(t *testing.T) {
	r := &Record{Date: "2025-04-01", Scale: ScaleCelsius}
	r.ConvertTo(ScaleKelvin)
	if r.Scale != ScaleKelvin {
		t.Errorf("Scale = %q; want kelvin", r.Scale)
	}
	if len(r.Readings) != 0 {
		t.Errorf("Readings = %v; want empty", r.Readings)
	}
}

func TestConvertToScaleInvalidLeavesRecordUnmodified(t *testing.T) {
	r := &Record{Date: "2025-04-01", Readings: []float64{25.0}, Scale: ScaleCelsius}
	err := r.ConvertToScale("rankine")
	if !errors.Is(err, ErrInvalidScale) {
		t.Fatalf("error = %v; want ErrInvalidScale", err)
	}
	if r.Scale != ScaleCelsius || r.Readings[0] != 25.0 {
		t.Errorf("record modified on failed conversion: %+v", r)
	}
}

func TestIsAboveThreshold(t *testing.T) {
	r := &Record{Date: "2025-04-01", Readings: []float64{25.1, 25.5}, Scale: ScaleCelsius}
	if !r.IsAboveThreshold(25.0) {
		t.Error("IsAboveThreshold(25.0) = false; want true")
	}
	if r.IsAboveThreshold(25.2) {
		t.Error("IsAboveThreshold(25.2) = true; want false")
	}
	if r.IsAboveThreshold(25.5) {
		t.Error("IsAboveThreshold(25.5) = true; want false")
	}
}

func TestIsAtOrAboveThreshold(t *testing.T) {
	r := &Record{Date: "2025-04-01", Readings: []float64{25.0, 25.5}, Scale: ScaleCelsius}
	if !r.IsAtOrAboveThreshold(25.0) {
		t.Error("IsAtOrAboveThreshold(25.0) = false; want true")
	}
	if !r.IsAtOrAboveThreshold(24.9) {
		t.Error("IsAtOrAboveThreshold(24.9) = false; want true")
	}
	if r.IsAtOrAboveThreshold(25.1) {
		t.Error("IsAtOrAboveThreshold(25.1) = true; want false")
	}
}

func TestThresholdsOnEmptyReadings(t *testing.T) {
	r := &Record{Date: "2025-04-01", Scale: ScaleCelsius}
	if r.IsAboveThreshold(0) {
		t.Error("IsAboveThreshold on empty readings = true; want false")
	}
	if r.IsAtOrAboveThreshold(0) {
		t.Error("IsAtOrAboveThreshold on empty readings = true; want false")
	}
}
