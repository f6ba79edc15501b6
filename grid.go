package interpolate

import (
	"context"
	"fmt"
	"math"
	"runtime"

	vec2d "github.com/flywave/go3d/float64/vec2"
	"golang.org/x/sync/errgroup"
)

// NoData marks grid cells that were not evaluated.
var NoData = math.NaN()

// Grid is a regular lattice of query points over a lon/lat rectangle.
// Values are stored row-major starting at the north-west corner; each value
// belongs to its cell centre.
type Grid struct {
	Width  int
	Height int
	Bounds vec2d.Rect
	Values []float64
}

type GridOptions struct {
	// Workers bounds the number of rows evaluated concurrently. Zero means
	// GOMAXPROCS.
	Workers int
	// Hull, when set, leaves cells outside it at NoData.
	Hull *Convex
}

func NewGrid(bounds vec2d.Rect, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigError{Field: "grid size", Value: float64(width * height), Reason: "width and height must be > 0"}
	}
	if !(bounds.Max[0] > bounds.Min[0]) || !(bounds.Max[1] > bounds.Min[1]) {
		return nil, &ConfigError{Field: "grid bounds", Value: bounds.Max[0] - bounds.Min[0], Reason: "must have positive extent"}
	}
	values := make([]float64, width*height)
	for i := range values {
		values[i] = NoData
	}
	return &Grid{Width: width, Height: height, Bounds: bounds, Values: values}, nil
}

// SampleBounds returns the bounding rectangle of the samples grown by pad
// on every side.
func SampleBounds(samples []Sample, pad float64) vec2d.Rect {
	r := vec2d.Rect{Min: vec2d.MaxVal, Max: vec2d.MinVal}
	for _, s := range samples {
		p := s.Pos()
		r.Extend(&p)
	}
	r.Min[0] -= pad
	r.Min[1] -= pad
	r.Max[0] += pad
	r.Max[1] += pad
	return r
}

func (g *Grid) pixelSize() (float64, float64) {
	return (g.Bounds.Max[0] - g.Bounds.Min[0]) / float64(g.Width),
		(g.Bounds.Max[1] - g.Bounds.Min[1]) / float64(g.Height)
}

// Coord returns the (lon, lat) centre of the cell at row, column.
func (g *Grid) Coord(row, column int) vec2d.T {
	dx, dy := g.pixelSize()
	return vec2d.T{
		g.Bounds.Min[0] + dx*(float64(column)+0.5),
		g.Bounds.Max[1] - dy*(float64(row)+0.5),
	}
}

func (g *Grid) Value(row, column int) float64 {
	return g.Values[row*g.Width+column]
}

// Evaluate fills Values with interp at every cell centre.
func (g *Grid) Evaluate(ctx context.Context, interp Interpolator, opts GridOptions) error {
	return g.evaluate(ctx, interp.Interpolate, opts)
}

// EvaluateVariance fills Values with the estimation variance.
func (g *Grid) EvaluateVariance(ctx context.Context, v Variancer, opts GridOptions) error {
	return g.evaluate(ctx, v.Variance, opts)
}

func (g *Grid) evaluate(ctx context.Context, f func(lon, lat float64) (float64, error), opts GridOptions) error {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if opts.Hull != nil {
		// computed lazily; resolve before the workers share it
		opts.Hull.Hull()
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for row := 0; row < g.Height; row++ {
		row := row
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for col := 0; col < g.Width; col++ {
				p := g.Coord(row, col)
				if opts.Hull != nil && !opts.Hull.Contains(p) {
					g.Values[row*g.Width+col] = NoData
					continue
				}
				v, err := f(p[0], p[1])
				if err != nil {
					return fmt.Errorf("grid cell (%d, %d): %w", row, col, err)
				}
				g.Values[row*g.Width+col] = v
			}
			return nil
		})
	}
	return eg.Wait()
}

// MinMax returns the extremes of the evaluated cells. ok is false when no
// cell holds a value.
func (g *Grid) MinMax() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range g.Values {
		if math.IsNaN(v) {
			continue
		}
		ok = true
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, ok
}
