package temperature

// Convert maps a value between two normalized scales. Celsius is the pivot:
// the value is first brought to celsius, then to the target scale. The result
// is rounded to two decimal places, identity conversions included.
func Convert(value float64, from, to Scale) float64 {
	if from == to {
		return roundTo2(value)
	}

	var celsius float64
	switch from {
	case ScaleFahrenheit:
		celsius = (value - 32) * 5 / 9
	case ScaleKelvin:
		celsius = value - 273.15
	default:
		celsius = value
	}

	var converted float64
	switch to {
	case ScaleFahrenheit:
		converted = celsius*9/5 + 32
	case ScaleKelvin:
		converted = celsius + 273.15
	default:
		converted = celsius
	}

	return roundTo2(converted)
}

// ConvertString converts between textual scale identifiers, normalizing both
// sides. It fails with ErrInvalidScale when either identifier is unknown.
func ConvertString(value float64, from, to string) (float64, error) {
	fromScale, err := ParseScale(from)
	if err != nil {
		return 0, err
	}
	toScale, err := ParseScale(to)
	if err != nil {
		return 0, err
	}
	return Convert(value, fromScale, toScale), nil
}
