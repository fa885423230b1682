// Package sky turns sky positions into display coordinates: the Mollweide
// all-sky projection, the polar angle of the wedge diagram, and a binned sky
// density map.
package sky

import "math"

// Extent of the unit-radius Mollweide ellipse.
var (
	MaxX = 2 * math.Sqrt2
	MaxY = math.Sqrt2
)

const (
	newtonTol     = 1e-12
	newtonMaxIter = 50
)

// Mollweide projects (lon, lat) in radians onto the unit-radius Mollweide
// ellipse. lon is measured from the central meridian and must lie in [-π, π].
func Mollweide(lon, lat float64) (x, y float64) {
	theta := auxiliaryAngle(lat)
	x = 2 * math.Sqrt2 / math.Pi * lon * math.Cos(theta)
	y = math.Sqrt2 * math.Sin(theta)
	return x, y
}

// auxiliaryAngle solves 2θ + sin 2θ = π sin φ by Newton iteration.
func auxiliaryAngle(lat float64) float64 {
	if math.Abs(lat) >= math.Pi/2 {
		return math.Copysign(math.Pi/2, lat)
	}

	target := math.Pi * math.Sin(lat)
	t := 2 * lat // t = 2θ
	for i := 0; i < newtonMaxIter; i++ {
		den := 1 + math.Cos(t)
		if den < 1e-15 {
			break
		}
		delta := (t + math.Sin(t) - target) / den
		t -= delta
		if math.Abs(delta) < newtonTol {
			break
		}
	}
	return t / 2
}

// CelestialLon converts right ascension in degrees into a longitude in
// radians for a map centred on RA 180° with RA growing to the left, as the
// sky is seen from inside the sphere. RA is wrapped into [0, 360].
func CelestialLon(ra float64) float64 {
	ra = math.Mod(ra, 360)
	if ra < 0 {
		ra += 360
	}
	return math.Pi - ra*math.Pi/180
}

// Project maps equatorial coordinates in degrees onto the celestial
// Mollweide map.
func Project(ra, dec float64) (x, y float64) {
	return Mollweide(CelestialLon(ra), dec*math.Pi/180)
}

// ProjectAll projects parallel RA/Dec columns.
func ProjectAll(ra, dec []float64) (xs, ys []float64) {
	xs = make([]float64, len(ra))
	ys = make([]float64, len(ra))
	for i := range ra {
		xs[i], ys[i] = Project(ra[i], dec[i])
	}
	return xs, ys
}
