package interpolate

import (
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

const (
	DefaultPower       = 2.0
	DefaultMinDistance = 1e-4
)

type IDWOptions struct {
	Power       *float64
	MinDistance *float64
	Distance    DistanceFunc
}

// IDW is an inverse-distance-weighted predictor. Every query weighs the full
// sample set by 1/d^power.
type IDW struct {
	pos         []vec2d.T
	values      []float64
	power       float64
	minDistance float64
	distance    DistanceFunc
}

func NewIDW(samples []Sample, opts IDWOptions) (*IDW, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySamples
	}
	if err := checkSamples(samples); err != nil {
		return nil, err
	}

	idw := &IDW{
		pos:         samplePositions(samples),
		values:      sampleValues(samples),
		power:       DefaultPower,
		minDistance: DefaultMinDistance,
		distance:    distanceOrDefault(opts.Distance),
	}
	if opts.Power != nil {
		idw.power = *opts.Power
	}
	if opts.MinDistance != nil {
		idw.minDistance = *opts.MinDistance
	}

	if !finite(idw.power) || idw.power <= 0 {
		return nil, &ConfigError{Field: "power", Value: idw.power, Reason: "must be finite and > 0"}
	}
	if !finite(idw.minDistance) || idw.minDistance < 0 {
		return nil, &ConfigError{Field: "minDistance", Value: idw.minDistance, Reason: "must be finite and >= 0"}
	}
	return idw, nil
}

func (p *IDW) Power() float64 { return p.power }

func (p *IDW) MinDistance() float64 { return p.minDistance }

// Interpolate returns the weighted average at (lon, lat). A sample closer
// than the minimum distance is returned as is.
func (p *IDW) Interpolate(lon, lat float64) (float64, error) {
	if p == nil || len(p.pos) == 0 {
		return 0, ErrUninitialized
	}
	if err := checkQuery(lon, lat); err != nil {
		return 0, err
	}

	q := vec2d.T{lon, lat}
	var num, den float64
	for i := range p.pos {
		d := p.distance(q, p.pos[i])
		if d < p.minDistance {
			return p.values[i], nil
		}
		w := 1 / math.Pow(d, p.power)
		num += w * p.values[i]
		den += w
	}
	// den is +Inf when minDistance is 0 and q hits a sample, and 0 when
	// every weight underflows.
	if den == 0 || !finite(den) {
		return p.nearest(q), nil
	}
	return num / den, nil
}

func (p *IDW) nearest(q vec2d.T) float64 {
	best, bestDist := 0, math.Inf(1)
	for i := range p.pos {
		if d := p.distance(q, p.pos[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return p.values[best]
}
