package interpolate

import (
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

// Convex is the convex hull of a sample set, used to keep grid evaluation
// from extrapolating beyond the sampled area.
type Convex struct {
	vertices []vec2d.T
	hull     []vec2d.T
}

func NewConvex(samples []Sample) *Convex {
	return &Convex{vertices: samplePositions(samples)}
}

// Rect returns the bounding rectangle of the hull.
func (c *Convex) Rect() vec2d.Rect {
	r := vec2d.Rect{Min: vec2d.MaxVal, Max: vec2d.MinVal}
	hull := c.Hull()
	for i := range hull {
		r.Extend(&hull[i])
	}
	return r
}

// Hull returns the hull vertices in clockwise order.
func (c *Convex) Hull() []vec2d.T {
	if c.hull == nil && len(c.vertices) > 0 {
		minX, maxX := c.getExtremePoints()
		if minX == maxX {
			c.hull = []vec2d.T{minX}
			return c.hull
		}
		c.hull = append(quickHull(c.vertices, minX, maxX), quickHull(c.vertices, maxX, minX)...)
	}
	return c.hull
}

// Contains reports whether p lies inside or on the hull. Degenerate hulls
// with fewer than three vertices contain nothing.
func (c *Convex) Contains(p vec2d.T) bool {
	hull := c.Hull()
	if len(hull) < 3 {
		return false
	}
	var sign float64
	for i, start := range hull {
		end := hull[(i+1)%len(hull)]
		d := distanceIndicator(p, start, end)
		if d == 0 {
			continue
		}
		if sign == 0 {
			sign = d
		} else if (d > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// quickHull returns the hull chain strictly left of start->end, followed by
// end.
func quickHull(points []vec2d.T, start, end vec2d.T) []vec2d.T {
	var left []vec2d.T
	var farthest vec2d.T
	best := 0.0
	for _, p := range points {
		if d := distanceIndicator(p, start, end); d > 0 {
			left = append(left, p)
			if d > best {
				best = d
				farthest = p
			}
		}
	}
	if len(left) == 0 {
		return []vec2d.T{end}
	}
	return append(quickHull(left, start, farthest), quickHull(left, farthest, end)...)
}

func (c *Convex) getExtremePoints() (minX, maxX vec2d.T) {
	minX = vec2d.T{math.MaxFloat64, 0}
	maxX = vec2d.T{-math.MaxFloat64, 0}

	for _, p := range c.vertices {
		if p[0] < minX[0] || (p[0] == minX[0] && p[1] < minX[1]) {
			minX = p
		}
		if maxX[0] < p[0] || (p[0] == maxX[0] && p[1] > maxX[1]) {
			maxX = p
		}
	}
	return minX, maxX
}

func cross(lhs, rhs vec2d.T) float64 {
	return (lhs[0] * rhs[1]) - (lhs[1] * rhs[0])
}

// distanceIndicator is positive when point lies left of start->end.
func distanceIndicator(point, start, end vec2d.T) float64 {
	vLine := vec2d.Sub(&end, &start)
	vPoint := vec2d.Sub(&point, &start)
	return cross(vLine, vPoint)
}
