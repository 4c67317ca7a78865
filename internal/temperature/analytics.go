package temperature

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
)

// Analytics functions treat the record slice as read-only input and perform
// no scale normalization themselves. Cross-day aggregates are only meaningful
// when all records share a scale; converting them first is the caller's job.

// Direction classifies the change between two consecutive readings.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionSame Direction = "same"
)

// DefaultSpikeThreshold is the adjacent-reading difference treated as a
// spike when the caller has no opinion.
const DefaultSpikeThreshold = 5.0

// AverageAcrossDays flattens every reading from every record into one
// sequence and returns its mean, rounded to two decimal places. It fails
// with ErrNoData when no record carries a reading.
func AverageAcrossDays(records []*Record) (float64, error) {
	var all []float64
	for _, r := range records {
		all = append(all, r.Readings...)
	}
	if len(all) == 0 {
		return 0, ErrNoData
	}
	mean, err := stats.Mean(all)
	if err != nil {
		return 0, err
	}
	return roundTo2(mean), nil
}

// HottestDay returns the date of the record with the highest per-day average.
// Records with no readings have no average and are skipped; ties go to the
// first occurrence in input order. It fails with ErrNoData when no record
// has readings.
func HottestDay(records []*Record) (string, error) {
	hottest := ""
	best := math.Inf(-1)
	found := false

	for _, r := range records {
		summary, err := r.Summary()
		if errors.Is(err, ErrNoData) {
			continue
		}
		if err != nil {
			return "", err
		}
		if !found || summary.Avg > best {
			best = summary.Avg
			hottest = r.Date
			found = true
		}
	}

	if !found {
		return "", ErrNoData
	}
	return hottest, nil
}

// DetectExtremeDays returns the dates of every record containing at least
// one reading strictly greater than the threshold, preserving input order.
// Each date appears at most once regardless of how many readings exceed it.
func DetectExtremeDays(records []*Record, threshold float64) []string {
	var days []string
	for _, r := range records {
		for _, v := range r.Readings {
			if v > threshold {
				days = append(days, r.Date)
				break
			}
		}
	}
	return days
}

// Range is the min/max pair for one day.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RangeForEachDay maps each date to its min/max pair, rounded to two decimal
// places. Records with no readings are omitted; an absent key means no data
// for that day.
func RangeForEachDay(records []*Record) map[string]Range {
	result := make(map[string]Range, len(records))
	for _, r := range records {
		summary, err := r.Summary()
		if err != nil {
			continue
		}
		result[r.Date] = Range{Min: summary.Min, Max: summary.Max}
	}
	return result
}

// Trend classifies each consecutive pair of temperatures as up, down or
// same. The result has len(temps)-1 elements; fewer than two temperatures
// yield an empty trend.
func Trend(temps []float64) []Direction {
	if len(temps) < 2 {
		return nil
	}
	trend := make([]Direction, 0, len(temps)-1)
	for i := 1; i < len(temps); i++ {
		switch {
		case temps[i] > temps[i-1]:
			trend = append(trend, DirectionUp)
		case temps[i] < temps[i-1]:
			trend = append(trend, DirectionDown)
		default:
			trend = append(trend, DirectionSame)
		}
	}
	return trend
}

// DetectSpike reports whether any adjacent pair of temperatures differs by
// at least the threshold. Sequences shorter than two never spike.
func DetectSpike(temps []float64, threshold float64) bool {
	for i := 1; i < len(temps); i++ {
		if math.Abs(temps[i]-temps[i-1]) >= threshold {
			return true
		}
	}
	return false
}
