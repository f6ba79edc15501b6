package interpolate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = []Sample{
	{Lon: 0, Lat: 0, Value: 1},
	{Lon: 1, Lat: 0, Value: 3},
	{Lon: 0, Lat: 1, Value: 5},
	{Lon: 1, Lat: 1, Value: 7},
}

func TestFitVariogram(t *testing.T) {
	a := assert.New(t)

	v, err := FitVariogram(square, Gaussian, nil)
	require.NoError(t, err)

	// population variance of 1,3,5,7 is 5
	a.Equal(Gaussian, v.Model)
	a.InDelta(6.0, v.Sill, 1e-12)
	a.InDelta(math.Sqrt2*0.3, v.Range, 1e-12)
	a.InDelta(0.3, v.Nugget, 1e-12)
	a.NoError(v.Validate())
}

func TestFitVariogramDeterministic(t *testing.T) {
	a := assert.New(t)

	k1, err := NewKriging(field, KrigingOptions{})
	require.NoError(t, err)
	k2, err := NewKriging(append([]Sample(nil), field...), KrigingOptions{})
	require.NoError(t, err)

	a.Equal(k1.Params(), k2.Params())
}

func TestFitVariogramTooFewSamples(t *testing.T) {
	a := assert.New(t)

	for _, s := range [][]Sample{nil, square[:1]} {
		_, err := FitVariogram(s, Exponential, nil)
		a.True(errors.Is(err, ErrConfiguration))
	}
}

func TestFitVariogramNonFinite(t *testing.T) {
	a := assert.New(t)

	bad := append([]Sample(nil), square...)
	bad[2].Value = math.Inf(-1)
	_, err := FitVariogram(bad, Exponential, nil)
	a.True(errors.Is(err, ErrNumericInput))

	var ne *NumericInputError
	if a.True(errors.As(err, &ne)) {
		a.Equal(2, ne.Index)
		a.Equal("value", ne.Field)
	}
}

func TestFitDegenerate(t *testing.T) {
	a := assert.New(t)

	coincident := []Sample{{Lon: 3, Lat: 4, Value: 1}, {Lon: 3, Lat: 4, Value: 2}}
	v, err := FitVariogram(coincident, Exponential, nil)
	a.NoError(err)
	a.Equal(0.0, v.Range)

	_, err = FitKriging(coincident, KrigingOptions{})
	a.True(errors.Is(err, ErrConfiguration))

	constant := []Sample{{Lon: 0, Lat: 0, Value: 5}, {Lon: 1, Lat: 1, Value: 5}}
	_, err = FitKriging(constant, KrigingOptions{})
	a.True(errors.Is(err, ErrConfiguration))
}

func TestFitVariogramHaversine(t *testing.T) {
	a := assert.New(t)

	s := []Sample{{Lon: 0, Lat: 0, Value: 1}, {Lon: 1, Lat: 0, Value: 2}}
	v, err := FitVariogram(s, Exponential, Haversine)
	require.NoError(t, err)

	// one degree of longitude on the equator
	a.InDelta(111.195*0.3, v.Range, 0.01)
}
