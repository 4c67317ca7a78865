package temperature

import (
	"github.com/montanaflynn/stats"
)

// Record holds one day's temperature readings. The date is an opaque label;
// it is never parsed as a calendar date. Every value in Readings is
// interpreted under Scale at all times.
//
// A Record is owned by a single logical caller; ConvertTo mutates the
// receiver and must not be called concurrently on the same instance.
type Record struct {
	Date     string    `json:"date"`
	Readings []float64 `json:"readings"`
	Scale    Scale     `json:"scale"`
}

// NewRecord builds a record from a textual scale identifier. Empty readings
// are legal and represent a day with no data.
func NewRecord(date string, readings []float64, scale string) (*Record, error) {
	normalized, err := ParseScale(scale)
	if err != nil {
		return nil, err
	}
	return &Record{
		Date:     date,
		Readings: readings,
		Scale:    normalized,
	}, nil
}

// Clone returns a deep copy of the record. The copy shares nothing with the
// receiver, so it can be read or mutated independently.
func (r *Record) Clone() *Record {
	readings := make([]float64, len(r.Readings))
	copy(readings, r.Readings)
	return &Record{
		Date:     r.Date,
		Readings: readings,
		Scale:    r.Scale,
	}
}

// ConvertTo converts every reading to the target scale and updates Scale.
// Readings and Scale always change together: the converted values are built
// into a fresh slice and swapped in at once.
func (r *Record) ConvertTo(target Scale) {
	converted := make([]float64, len(r.Readings))
	for i, v := range r.Readings {
		converted[i] = Convert(v, r.Scale, target)
	}
	r.Readings = converted
	r.Scale = target
}

// ConvertToScale is ConvertTo for textual scale identifiers. The record is
// left unmodified when the target does not normalize.
func (r *Record) ConvertToScale(target string) error {
	normalized, err := ParseScale(target)
	if err != nil {
		return err
	}
	r.ConvertTo(normalized)
	return nil
}

// Summary bundles the derived values for one day, expressed in Scale.
type Summary struct {
	Date  string  `json:"date"`
	Scale Scale   `json:"scale"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Avg   float64 `json:"avg"`
}

// Summary computes min, max and mean over the current readings. It fails
// with ErrNoData for a day with no readings; min/max/avg of nothing are
// undefined and zero values would be indistinguishable from real data.
func (r *Record) Summary() (Summary, error) {
	if len(r.Readings) == 0 {
		return Summary{}, ErrNoData
	}

	min, err := stats.Min(r.Readings)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(r.Readings)
	if err != nil {
		return Summary{}, err
	}
	mean, err := stats.Mean(r.Readings)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Date:  r.Date,
		Scale: r.Scale,
		Min:   roundTo2(min),
		Max:   roundTo2(max),
		Avg:   roundTo2(mean),
	}, nil
}

// IsAboveThreshold reports whether every reading is strictly greater than
// the threshold. A day with no readings is never above anything: the vacuous
// truth over an empty sequence is rejected here.
func (r *Record) IsAboveThreshold(threshold float64) bool {
	if len(r.Readings) == 0 {
		return false
	}
	for _, v := range r.Readings {
		if v <= threshold {
			return false
		}
	}
	return true
}

// IsAtOrAboveThreshold is IsAboveThreshold with >= comparison. The empty
// readings policy is the same.
func (r *Record) IsAtOrAboveThreshold(threshold float64) bool {
	if len(r.Readings) == 0 {
		return false
	}
	for _, v := range r.Readings {
		if v < threshold {
			return false
		}
	}
	return true
}
