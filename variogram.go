package interpolate

// Variogram holds the parameters of a semivariance model.
type Variogram struct {
	Model  Model   `json:"model" yaml:"model"`
	Nugget float64 `json:"nugget" yaml:"nugget"`
	Sill   float64 `json:"sill" yaml:"sill"`
	Range  float64 `json:"range" yaml:"range"`
}

func variogramExponential(h, nugget, range_, sill float64) float64 {
	return nugget + (sill-nugget)*(1.0-exp(-3.0*h/range_))
}

func variogramGaussian(h, nugget, range_, sill float64) float64 {
	return nugget + (sill-nugget)*(1.0-exp(-3.0*pow2(h/range_)))
}

func variogramSpherical(h, nugget, range_, sill float64) float64 {
	if h >= range_ {
		return sill
	}
	x := h / range_
	return nugget + (sill-nugget)*(1.5*x-0.5*pow3(x))
}

// Gamma returns the semivariance at separation h. Gamma(0) is 0 for every
// model; models other than Gaussian and Spherical evaluate as Exponential.
func (v Variogram) Gamma(h float64) float64 {
	if h == 0 {
		return 0
	}
	switch v.Model {
	case Gaussian:
		return variogramGaussian(h, v.Nugget, v.Range, v.Sill)
	case Spherical:
		return variogramSpherical(h, v.Nugget, v.Range, v.Sill)
	default:
		return variogramExponential(h, v.Nugget, v.Range, v.Sill)
	}
}

// Covariance returns Sill - Gamma(h).
func (v Variogram) Covariance(h float64) float64 {
	return v.Sill - v.Gamma(h)
}

// Validate checks nugget >= 0, sill > nugget, range > 0, all finite.
func (v Variogram) Validate() error {
	switch {
	case !finite(v.Nugget) || v.Nugget < 0:
		return &ConfigError{Field: "nugget", Value: v.Nugget, Reason: "must be finite and >= 0"}
	case !finite(v.Sill) || v.Sill <= v.Nugget:
		return &ConfigError{Field: "sill", Value: v.Sill, Reason: "must be finite and greater than nugget"}
	case !finite(v.Range) || v.Range <= 0:
		return &ConfigError{Field: "range", Value: v.Range, Reason: "must be finite and > 0"}
	}
	return nil
}
