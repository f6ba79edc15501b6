package interpolate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Validation summarises leave-one-out residuals (estimate - observed).
type Validation struct {
	Residuals []float64
	MAE       float64
	RMSE      float64
}

// LeaveOneOut rebuilds a predictor once per sample without that sample and
// scores its estimate at the held-out location. factory receives a fresh
// slice each time.
func LeaveOneOut(samples []Sample, factory func([]Sample) (Interpolator, error)) (Validation, error) {
	if len(samples) < 2 {
		return Validation{}, &ConfigError{Field: "samples", Value: float64(len(samples)), Reason: "at least 2 samples are needed for cross-validation"}
	}

	residuals := make([]float64, len(samples))
	abs := make([]float64, len(samples))
	sq := make([]float64, len(samples))
	rest := make([]Sample, 0, len(samples)-1)
	for i, held := range samples {
		rest = append(rest[:0], samples[:i]...)
		rest = append(rest, samples[i+1:]...)

		interp, err := factory(append([]Sample(nil), rest...))
		if err != nil {
			return Validation{}, fmt.Errorf("leave-one-out sample %d: %w", i, err)
		}
		est, err := interp.Interpolate(held.Lon, held.Lat)
		if err != nil {
			return Validation{}, fmt.Errorf("leave-one-out sample %d: %w", i, err)
		}
		residuals[i] = est - held.Value
		abs[i] = math.Abs(residuals[i])
		sq[i] = pow2(residuals[i])
	}

	return Validation{
		Residuals: residuals,
		MAE:       stat.Mean(abs, nil),
		RMSE:      math.Sqrt(stat.Mean(sq, nil)),
	}, nil
}
