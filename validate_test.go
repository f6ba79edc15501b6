package interpolate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveOneOut(t *testing.T) {
	a := assert.New(t)

	idw := func(s []Sample) (Interpolator, error) {
		return NewIDW(s, IDWOptions{})
	}
	kri := func(s []Sample) (Interpolator, error) {
		return NewKriging(s, KrigingOptions{Model: Spherical})
	}

	for name, factory := range map[string]func([]Sample) (Interpolator, error){"idw": idw, "kriging": kri} {
		v, err := LeaveOneOut(field, factory)
		require.NoError(t, err, name)
		a.Len(v.Residuals, len(field), name)
		a.Greater(v.MAE, 0.0, name)
		a.GreaterOrEqual(v.RMSE, v.MAE, name)
	}
}

func TestLeaveOneOutDoesNotMutate(t *testing.T) {
	a := assert.New(t)

	orig := append([]Sample(nil), field...)
	_, err := LeaveOneOut(field, func(s []Sample) (Interpolator, error) {
		s[0].Value = -1
		return NewIDW(s, IDWOptions{})
	})
	a.NoError(err)
	a.Equal(orig, field)
}

func TestLeaveOneOutErrors(t *testing.T) {
	a := assert.New(t)

	_, err := LeaveOneOut(field[:1], nil)
	a.ErrorIs(err, ErrConfiguration)

	boom := errors.New("boom")
	_, err = LeaveOneOut(field, func(s []Sample) (Interpolator, error) {
		return nil, boom
	})
	a.ErrorIs(err, boom)
	a.Contains(err.Error(), "sample 0")
}
