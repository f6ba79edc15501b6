package interpolate

import (
	"io"
	"log/slog"
	"time"

	vec2d "github.com/flywave/go3d/float64/vec2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// KrigingOptions configures a simple-kriging predictor. Nil fields take
// their defaults.
type KrigingOptions struct {
	Model Model
	// Nugget defaults to 0.05*sill when the fitter runs, otherwise 0.
	Nugget *float64
	// Sill and Range are estimated from the samples when nil.
	Sill  *float64
	Range *float64
	// Distance defaults to Planar.
	Distance DistanceFunc
	// Strict makes Solve fail on a singular covariance matrix instead of
	// returning a degraded predictor.
	Strict bool
	Logger *slog.Logger
}

// Fitted holds validated samples and resolved variogram parameters. It has
// not solved its covariance system yet.
type Fitted struct {
	pos       []vec2d.T
	values    []float64
	variogram Variogram
	distance  DistanceFunc
	strict    bool
	logger    *slog.Logger
}

// FitKriging validates the samples and resolves the variogram, running the
// fitter for whichever of sill and range was not supplied.
func FitKriging(samples []Sample, opts KrigingOptions) (*Fitted, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySamples
	}
	if err := checkSamples(samples); err != nil {
		return nil, err
	}

	f := &Fitted{
		pos:      samplePositions(samples),
		values:   sampleValues(samples),
		distance: distanceOrDefault(opts.Distance),
		strict:   opts.Strict,
		logger:   opts.Logger,
	}
	if f.logger == nil {
		f.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	v := Variogram{Model: opts.Model}
	fitted := opts.Sill == nil || opts.Range == nil
	if fitted {
		est, err := FitVariogram(samples, opts.Model, f.distance)
		if err != nil {
			return nil, err
		}
		v = est
		f.logger.Debug("variogram estimated",
			"samples", len(samples),
			"model", est.Model.String(),
			"sill", est.Sill,
			"range", est.Range,
		)
	}
	if opts.Sill != nil {
		v.Sill = *opts.Sill
	}
	if opts.Range != nil {
		v.Range = *opts.Range
	}
	if opts.Nugget != nil {
		v.Nugget = *opts.Nugget
	} else if fitted {
		v.Nugget = v.Sill * nuggetRatio
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}
	f.variogram = v
	return f, nil
}

// Variogram returns the resolved parameters.
func (f *Fitted) Variogram() Variogram {
	return f.variogram
}

// Solve builds the covariance matrix and inverts it. The returned predictor
// is ready for queries.
func (f *Fitted) Solve() (*Kriging, error) {
	start := time.Now()
	K := CovarianceMatrix(f.pos, f.variogram, f.distance)

	inv, err := Invert(K)
	if err != nil {
		return nil, err
	}

	var singular *SingularMatrixError
	if len(inv.Skipped) > 0 {
		singular = &SingularMatrixError{Columns: inv.Skipped}
		for _, col := range inv.Skipped {
			f.logger.Warn("covariance pivot below tolerance, column skipped",
				"column", col,
				"samples", len(f.pos),
				"strict", f.strict,
			)
		}
		if f.strict {
			return nil, singular
		}
	}

	f.logger.Debug("kriging system solved",
		"samples", len(f.pos),
		"model", f.variogram.Model.String(),
		"nugget", f.variogram.Nugget,
		"sill", f.variogram.Sill,
		"range", f.variogram.Range,
		"elapsed", time.Since(start),
	)

	return &Kriging{
		pos:       f.pos,
		values:    f.values,
		variogram: f.variogram,
		distance:  f.distance,
		K:         K,
		M:         inv.Inverse,
		singular:  singular,
	}, nil
}

// Kriging is a simple-kriging predictor. Weights are not constrained to sum
// to one. A Kriging is immutable once returned by Solve and safe for
// concurrent queries. The zero value answers every query with
// ErrUninitialized.
type Kriging struct {
	pos       []vec2d.T
	values    []float64
	variogram Variogram
	distance  DistanceFunc

	K *mat.SymDense
	M *mat.Dense

	singular *SingularMatrixError
}

// NewKriging fits and solves in one step.
func NewKriging(samples []Sample, opts KrigingOptions) (*Kriging, error) {
	f, err := FitKriging(samples, opts)
	if err != nil {
		return nil, err
	}
	return f.Solve()
}

// Params returns the resolved variogram parameters.
func (kri *Kriging) Params() Variogram {
	return kri.variogram
}

// Len returns the number of samples.
func (kri *Kriging) Len() int {
	return len(kri.pos)
}

// Singular reports the skipped pivots of a degraded solve, or nil.
func (kri *Kriging) Singular() *SingularMatrixError {
	return kri.singular
}

func (kri *Kriging) ready() bool {
	return kri != nil && kri.M != nil
}

func (kri *Kriging) weights(lon, lat float64) (w, k []float64, err error) {
	if !kri.ready() {
		return nil, nil, ErrUninitialized
	}
	if err := checkQuery(lon, lat); err != nil {
		return nil, nil, err
	}
	n := len(kri.pos)
	k = make([]float64, n)
	covarianceVector(k, vec2d.T{lon, lat}, kri.pos, kri.variogram, kri.distance)

	var wv mat.VecDense
	wv.MulVec(kri.M, mat.NewVecDense(n, k))
	return wv.RawVector().Data, k, nil
}

// Interpolate returns the kriging estimate at (lon, lat).
func (kri *Kriging) Interpolate(lon, lat float64) (float64, error) {
	w, _, err := kri.weights(lon, lat)
	if err != nil {
		return 0, err
	}
	return floats.Dot(w, kri.values), nil
}

// Variance returns the kriging variance at (lon, lat), clamped at 0.
func (kri *Kriging) Variance(lon, lat float64) (float64, error) {
	w, k, err := kri.weights(lon, lat)
	if err != nil {
		return 0, err
	}
	return kri.variance(w, k), nil
}

// Predict returns the estimate and its variance from a single weight solve.
func (kri *Kriging) Predict(lon, lat float64) (value, variance float64, err error) {
	w, k, err := kri.weights(lon, lat)
	if err != nil {
		return 0, 0, err
	}
	return floats.Dot(w, kri.values), kri.variance(w, k), nil
}

func (kri *Kriging) variance(w, k []float64) float64 {
	v := kri.variogram.Sill - floats.Dot(w, k)
	if v < 0 {
		return 0
	}
	return v
}
