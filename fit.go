package interpolate

import (
	"gonum.org/v1/gonum/stat"
)

const (
	sillHeadroom  = 1.2
	rangeFraction = 0.3
	nuggetRatio   = 0.05
)

// FitVariogram estimates sill and range from the samples with a
// method-of-moments heuristic:
//
//	sill   = 1.2 * variance(values)
//	range  = 0.3 * max pairwise distance
//	nugget = 0.05 * sill
//
// The returned variogram has the requested model but is not validated;
// constant values or coincident positions yield a degenerate result that
// Validate rejects. Duplicates are not removed, see Thin.
func FitVariogram(samples []Sample, model Model, dist DistanceFunc) (Variogram, error) {
	if len(samples) < 2 {
		return Variogram{}, &ConfigError{Field: "samples", Value: float64(len(samples)), Reason: "at least 2 samples are needed to fit a variogram"}
	}
	if err := checkSamples(samples); err != nil {
		return Variogram{}, err
	}
	dist = distanceOrDefault(dist)

	sill := stat.PopVariance(sampleValues(samples), nil) * sillHeadroom

	pos := samplePositions(samples)
	var maxDist float64
	for i := range pos {
		for j := 0; j < i; j++ {
			if d := dist(pos[i], pos[j]); d > maxDist {
				maxDist = d
			}
		}
	}

	return Variogram{
		Model:  model,
		Nugget: sill * nuggetRatio,
		Sill:   sill,
		Range:  maxDist * rangeFraction,
	}, nil
}
