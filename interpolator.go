package interpolate

// Interpolator estimates a scalar at a query location. Implementations are
// safe for concurrent use once constructed.
type Interpolator interface {
	Interpolate(lon, lat float64) (float64, error)
}

// Variancer is implemented by predictors that also report estimation
// uncertainty.
type Variancer interface {
	Variance(lon, lat float64) (float64, error)
}

var (
	_ Interpolator = &Kriging{}
	_ Interpolator = &IDW{}
	_ Variancer    = &Kriging{}
)

// InterpolatorFunc adapts a plain function to Interpolator.
type InterpolatorFunc func(lon, lat float64) (float64, error)

func (f InterpolatorFunc) Interpolate(lon, lat float64) (float64, error) {
	return f(lon, lat)
}
