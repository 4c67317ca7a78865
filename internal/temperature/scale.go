package temperature

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Scale represents a normalized temperature scale.
type Scale string

const (
	ScaleCelsius    Scale = "celsius"
	ScaleFahrenheit Scale = "fahrenheit"
	ScaleKelvin     Scale = "kelvin"
)

var (
	// ErrInvalidScale is returned when a scale identifier does not normalize
	// to celsius, fahrenheit or kelvin.
	ErrInvalidScale = errors.New("invalid temperature scale")

	// ErrNoData is returned when an aggregate is requested over an empty
	// sequence of readings.
	ErrNoData = errors.New("no temperature data")
)

// ParseScale normalizes a textual scale identifier. Matching is
// case-insensitive and accepts the common abbreviations "c", "f" and "k"
// as well as degree-sign forms like "°C".
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "celsius", "c", "°c":
		return ScaleCelsius, nil
	case "fahrenheit", "f", "°f":
		return ScaleFahrenheit, nil
	case "kelvin", "k":
		return ScaleKelvin, nil
	default:
		return "", fmt.Errorf("%w: %q (use celsius, fahrenheit or kelvin)", ErrInvalidScale, s)
	}
}

// String implements fmt.Stringer.
func (s Scale) String() string {
	return string(s)
}

// roundTo2 rounds half away from zero to two decimal places. This is the
// single rounding policy for every value the package produces.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
