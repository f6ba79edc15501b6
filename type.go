package interpolate

import (
	"strings"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

// Sample is a scalar measurement taken at a geographic location.
type Sample struct {
	Lat   float64 `json:"lat" yaml:"lat"`
	Lon   float64 `json:"lon" yaml:"lon"`
	Value float64 `json:"value" yaml:"value"`
}

// Pos returns the sample location as a (lon, lat) vector.
func (s Sample) Pos() vec2d.T {
	return vec2d.T{s.Lon, s.Lat}
}

// Model selects the variogram shape. The zero value is Exponential.
type Model int

const (
	Exponential Model = iota
	Gaussian
	Spherical
)

func (m Model) String() string {
	switch m {
	case Gaussian:
		return "gaussian"
	case Spherical:
		return "spherical"
	default:
		return "exponential"
	}
}

// ParseModel maps a model name to a Model. Unknown names fall back to
// Exponential and report ok == false.
func ParseModel(name string) (m Model, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exponential":
		return Exponential, true
	case "gaussian":
		return Gaussian, true
	case "spherical":
		return Spherical, true
	default:
		return Exponential, false
	}
}

func (m Model) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Model) UnmarshalText(text []byte) error {
	*m, _ = ParseModel(string(text))
	return nil
}

// Float64 returns a pointer to v, for optional option fields.
func Float64(v float64) *float64 {
	return &v
}

func samplePositions(samples []Sample) []vec2d.T {
	pos := make([]vec2d.T, len(samples))
	for i := range samples {
		pos[i] = samples[i].Pos()
	}
	return pos
}

func sampleValues(samples []Sample) []float64 {
	values := make([]float64, len(samples))
	for i := range samples {
		values[i] = samples[i].Value
	}
	return values
}
