package interpolate

import (
	"math"
)

func degToRad(angle float64) float64 {
	return angle * math.Pi / 180
}

func exp(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Exp(x)
}

func pow2(x float64) float64 {
	return x * x
}

func pow3(x float64) float64 {
	return x * x * x
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func checkSamples(samples []Sample) error {
	for i, s := range samples {
		switch {
		case !finite(s.Lon):
			return &NumericInputError{Index: i, Field: "lon", Value: s.Lon}
		case !finite(s.Lat):
			return &NumericInputError{Index: i, Field: "lat", Value: s.Lat}
		case !finite(s.Value):
			return &NumericInputError{Index: i, Field: "value", Value: s.Value}
		}
	}
	return nil
}

func checkQuery(lon, lat float64) error {
	if !finite(lon) {
		return &NumericInputError{Index: -1, Field: "lon", Value: lon}
	}
	if !finite(lat) {
		return &NumericInputError{Index: -1, Field: "lat", Value: lat}
	}
	return nil
}
