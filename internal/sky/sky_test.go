package sky

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestProjectCenter(t *testing.T) {
	x, y := Project(180, 0)
	assert.InDelta(t, 0, x, eps)
	assert.InDelta(t, 0, y, eps)
}

func TestProjectPoles(t *testing.T) {
	for _, ra := range []float64{0, 95, 180, 300} {
		x, y := Project(ra, 90)
		assert.InDelta(t, 0, x, eps)
		assert.InDelta(t, math.Sqrt2, y, eps)

		x, y = Project(ra, -90)
		assert.InDelta(t, 0, x, eps)
		assert.InDelta(t, -math.Sqrt2, y, eps)
	}
}

func TestProjectEdges(t *testing.T) {
	// RA grows to the left: RA 0 sits on the right edge, RA 360 on the left.
	x, y := Project(0, 0)
	assert.InDelta(t, MaxX, x, eps)
	assert.InDelta(t, 0, y, eps)

	x, _ = Project(360-1e-9, 0)
	assert.InDelta(t, -MaxX, x, 1e-6)

	x90, _ := Project(90, 0)
	x270, _ := Project(270, 0)
	assert.InDelta(t, MaxX/2, x90, eps)
	assert.InDelta(t, -MaxX/2, x270, eps)
}

func TestProjectInsideEllipse(t *testing.T) {
	for ra := 0.0; ra < 360; ra += 7.5 {
		for dec := -89.0; dec <= 89; dec += 4.5 {
			x, y := Project(ra, dec)
			r := x*x/(MaxX*MaxX) + y*y/(MaxY*MaxY)
			assert.LessOrEqual(t, r, 1+1e-9, "ra=%v dec=%v", ra, dec)
		}
	}
}

func TestAuxiliaryAngleSolvesEquation(t *testing.T) {
	for lat := -1.5; lat <= 1.5; lat += 0.1 {
		th := auxiliaryAngle(lat)
		assert.InDelta(t, math.Pi*math.Sin(lat), 2*th+math.Sin(2*th), 1e-9)
	}
}

func TestCelestialLonWraps(t *testing.T) {
	assert.InDelta(t, CelestialLon(10), CelestialLon(370), eps)
	assert.InDelta(t, CelestialLon(350), CelestialLon(-10), eps)
}

func TestProjectAll(t *testing.T) {
	xs, ys := ProjectAll([]float64{180, 0}, []float64{0, 0})
	require.Len(t, xs, 2)
	require.Len(t, ys, 2)
	assert.InDelta(t, 0, xs[0], eps)
	assert.InDelta(t, MaxX, xs[1], eps)
}

func TestWedge(t *testing.T) {
	assert.InDelta(t, 0, WedgeAngle(95, 95), eps)
	assert.InDelta(t, math.Pi/2, WedgeAngle(90, 0), eps)

	x, y := Polar(math.Pi/2, 0.05)
	assert.InDelta(t, 0, x, eps)
	assert.InDelta(t, 0.05, y, eps)
}

func TestDensity(t *testing.T) {
	xs := []float64{0, 0.1, 0.2, 9.9, 10}
	ys := []float64{0, 0, 0, 10, 10}

	g := Density(xs, ys, 10)
	require.NotNil(t, g)
	assert.Len(t, g.XEdges, 11)
	assert.Equal(t, 10.0, g.XEdges[10])
	assert.Equal(t, 5.0, g.Total())
	assert.Equal(t, 3.0, g.Counts.At(0, 0))
	assert.Equal(t, 2.0, g.Counts.At(9, 9))

	var cells int
	g.Cells(3, func(x0, x1, y0, y1, n float64) {
		cells++
		assert.Equal(t, 0.0, x0)
		assert.Equal(t, 1.0, x1)
		assert.Equal(t, 3.0, n)
	})
	assert.Equal(t, 1, cells)
}

func TestDensityDegenerate(t *testing.T) {
	assert.Nil(t, Density(nil, nil, 10))

	g := Density([]float64{1, 1}, []float64{2, 2}, 4)
	require.NotNil(t, g)
	assert.Equal(t, 2.0, g.Total())
}
