// Package config loads interpolation engine settings from YAML and builds
// the configured engine.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	interpolate "github.com/flywave/go-interpolate"
)

const (
	AlgorithmKriging = "kriging"
	AlgorithmIDW     = "idw"

	DistancePlanar    = "planar"
	DistanceHaversine = "haversine"
)

// Config is the YAML representation of an engine configuration.
type Config struct {
	// Algorithm is "kriging" or "idw".
	Algorithm string `yaml:"algorithm"`

	// Distance is "planar" or "haversine".
	Distance string `yaml:"distance"`

	Kriging struct {
		Model interpolate.Model `yaml:"model"`

		// Nil values are estimated from the samples.
		Nugget *float64 `yaml:"nugget,omitempty"`
		Sill   *float64 `yaml:"sill,omitempty"`
		Range  *float64 `yaml:"range,omitempty"`

		// Strict rejects singular covariance matrices.
		Strict bool `yaml:"strict"`
	} `yaml:"kriging"`

	IDW struct {
		Power       float64 `yaml:"power"`
		MinDistance float64 `yaml:"minDistance"`
	} `yaml:"idw"`

	Grid struct {
		Width      int     `yaml:"width"`
		Height     int     `yaml:"height"`
		Padding    float64 `yaml:"padding"`
		Workers    int     `yaml:"workers"`
		ClipToHull bool    `yaml:"clipToHull"`
	} `yaml:"grid"`
}

// DefaultConfig returns exponential kriging with fitted parameters.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Algorithm = AlgorithmKriging
	cfg.Distance = DistancePlanar

	cfg.Kriging.Model = interpolate.Exponential

	cfg.IDW.Power = interpolate.DefaultPower
	cfg.IDW.MinDistance = interpolate.DefaultMinDistance

	cfg.Grid.Width = 256
	cfg.Grid.Height = 256
	cfg.Grid.ClipToHull = true

	return cfg
}

// LoadConfig reads configPath over the defaults. A missing file yields the
// defaults.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to configPath, creating parent directories.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks the selectors and the grid settings. Numeric engine
// parameters are checked when the engine is built.
func (cfg *Config) Validate() error {
	switch strings.ToLower(cfg.Algorithm) {
	case AlgorithmKriging, AlgorithmIDW:
	default:
		return fmt.Errorf("unknown algorithm %q", cfg.Algorithm)
	}
	if _, err := cfg.distance(); err != nil {
		return err
	}
	if cfg.Grid.Width < 0 || cfg.Grid.Height < 0 {
		return fmt.Errorf("grid size must not be negative: %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	return nil
}

func (cfg *Config) distance() (interpolate.DistanceFunc, error) {
	switch strings.ToLower(cfg.Distance) {
	case "", DistancePlanar:
		return interpolate.Planar, nil
	case DistanceHaversine:
		return interpolate.Haversine, nil
	default:
		return nil, fmt.Errorf("unknown distance %q", cfg.Distance)
	}
}

// KrigingOptions converts the kriging section.
func (cfg *Config) KrigingOptions(logger *slog.Logger) (interpolate.KrigingOptions, error) {
	dist, err := cfg.distance()
	if err != nil {
		return interpolate.KrigingOptions{}, err
	}
	return interpolate.KrigingOptions{
		Model:    cfg.Kriging.Model,
		Nugget:   cfg.Kriging.Nugget,
		Sill:     cfg.Kriging.Sill,
		Range:    cfg.Kriging.Range,
		Distance: dist,
		Strict:   cfg.Kriging.Strict,
		Logger:   logger,
	}, nil
}

// IDWOptions converts the idw section.
func (cfg *Config) IDWOptions() (interpolate.IDWOptions, error) {
	dist, err := cfg.distance()
	if err != nil {
		return interpolate.IDWOptions{}, err
	}
	return interpolate.IDWOptions{
		Power:       interpolate.Float64(cfg.IDW.Power),
		MinDistance: interpolate.Float64(cfg.IDW.MinDistance),
		Distance:    dist,
	}, nil
}

// NewInterpolator builds the configured engine over samples.
func (cfg *Config) NewInterpolator(samples []interpolate.Sample, logger *slog.Logger) (interpolate.Interpolator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if strings.ToLower(cfg.Algorithm) == AlgorithmIDW {
		opts, err := cfg.IDWOptions()
		if err != nil {
			return nil, err
		}
		idw, err := interpolate.NewIDW(samples, opts)
		if err != nil {
			return nil, err
		}
		return idw, nil
	}
	opts, err := cfg.KrigingOptions(logger)
	if err != nil {
		return nil, err
	}
	kri, err := interpolate.NewKriging(samples, opts)
	if err != nil {
		return nil, err
	}
	return kri, nil
}

// NewGrid lays the configured grid over the sample bounds and returns it
// with its evaluation options.
func (cfg *Config) NewGrid(samples []interpolate.Sample) (*interpolate.Grid, interpolate.GridOptions, error) {
	grid, err := interpolate.NewGrid(interpolate.SampleBounds(samples, cfg.Grid.Padding), cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return nil, interpolate.GridOptions{}, err
	}
	opts := interpolate.GridOptions{Workers: cfg.Grid.Workers}
	if cfg.Grid.ClipToHull {
		opts.Hull = interpolate.NewConvex(samples)
	}
	return grid, opts, nil
}
