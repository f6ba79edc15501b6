package interpolate

import (
	"testing"

	vec2d "github.com/flywave/go3d/float64/vec2"

	"github.com/stretchr/testify/assert"
)

func points(pos ...vec2d.T) []Sample {
	s := make([]Sample, len(pos))
	for i, p := range pos {
		s[i] = Sample{Lon: p[0], Lat: p[1]}
	}
	return s
}

func TestNewConvex(t *testing.T) {
	a := assert.New(t)

	vertices := points(vec2d.T{0, 0}, vec2d.T{100, 0}, vec2d.T{100, -10}, vec2d.T{150, 100}, vec2d.T{100, 200}, vec2d.T{0, 210}, vec2d.T{-50, 100}, vec2d.T{30, 30}, vec2d.T{75, 30})
	hull := []vec2d.T{{0, 210}, {100, 200}, {150, 100}, {100, -10}, {0, 0}, {-50, 100}}

	c := NewConvex(vertices)

	a.Equal(hull, c.Hull())

	r := c.Rect()
	a.Equal(vec2d.T{-50, -10}, r.Min)
	a.Equal(vec2d.T{150, 210}, r.Max)
}

func TestConvexSquare(t *testing.T) {
	a := assert.New(t)

	c := NewConvex(points(vec2d.T{0, 0}, vec2d.T{100, 0}, vec2d.T{0, 100}, vec2d.T{100, 100}))

	a.Equal([]vec2d.T{{0, 100}, {100, 100}, {100, 0}, {0, 0}}, c.Hull())
}

func TestInHull(t *testing.T) {
	a := assert.New(t)

	c := NewConvex(points(vec2d.T{0, 0}, vec2d.T{100, 0}, vec2d.T{0, 100}, vec2d.T{100, 100}))

	a.True(c.Contains(vec2d.T{50, 50}))
	a.True(c.Contains(vec2d.T{100, 50}))
	a.True(c.Contains(vec2d.T{0, 0}))
	a.False(c.Contains(vec2d.T{50, -50}))
	a.False(c.Contains(vec2d.T{101, 50}))
}

func TestConvexDegenerate(t *testing.T) {
	a := assert.New(t)

	line := NewConvex(points(vec2d.T{0, 0}, vec2d.T{1, 1}, vec2d.T{2, 2}))
	a.Len(line.Hull(), 2)
	a.False(line.Contains(vec2d.T{1, 1}))

	single := NewConvex(points(vec2d.T{3, 3}, vec2d.T{3, 3}))
	a.Equal([]vec2d.T{{3, 3}}, single.Hull())

	a.Empty(NewConvex(nil).Hull())
}
