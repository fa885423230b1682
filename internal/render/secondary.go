package render

import (
	"image/color"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/palette/moreland"

	"lssgal/internal/catalog"
	"lssgal/internal/sky"
	"lssgal/internal/view"
	"lssgal/pkg/colorutil"
)

// Secondary panel parameters.
const (
	// Redshift mode: a thin equatorial strip of the background seen as a
	// wedge diagram out to wedgeRMax, rotated by wedgeOffset degrees of RA.
	stripDecMin = -1.0
	stripDecMax = 1.0
	wedgeOffset = 95.0
	wedgeRMax   = 0.1
	stripAlpha  = 0.1
	sliceAlpha  = 0.4

	// Declination mode: background sky density on a densityBins² grid,
	// shading cells holding at least densityLevel galaxies.
	densityBins  = 50
	densityLevel = 100.0
	densityAlpha = 0.3
	bandAlpha    = 0.5
)

// Secondary is the inset panel showing where the active slice sits. It is
// rebuilt from scratch for every state; only the mode-independent geometry
// is computed up front.
type Secondary struct {
	mode  view.Mode
	frame Scene

	// redshift mode
	stripZ      []float64
	stripPoints []Point
	stripColors []color.NRGBA

	// declination mode
	density []Polygon
}

// NewSecondary prepares the inset for mode from the background sample.
func NewSecondary(mode view.Mode, set catalog.Set) *Secondary {
	s := &Secondary{mode: mode}
	bg := set[catalog.Background]

	if mode.Axis == catalog.AxisZ {
		s.frame = polarFrame(wedgeRMax, ringStepFor(wedgeRMax))
		if bg != nil {
			s.prepareStrip(bg)
		}
	} else {
		s.frame = skyFrame()
		if bg != nil {
			s.prepareDensity(bg)
		}
	}
	return s
}

func (s *Secondary) prepareStrip(bg *catalog.Sample) {
	for j := 0; j < bg.Len(); j++ {
		if bg.Dec[j] > stripDecMin && bg.Dec[j] <= stripDecMax && bg.Z[j] <= wedgeRMax {
			x, y := sky.Polar(sky.WedgeAngle(bg.RA[j], wedgeOffset), bg.Z[j])
			s.stripZ = append(s.stripZ, bg.Z[j])
			s.stripPoints = append(s.stripPoints, Point{x, y})
		}
	}
	if len(s.stripZ) == 0 {
		return
	}

	s.stripColors = depthColors(s.stripZ)
}

// depthColors colours zs by depth over their own range with the Kindlmann
// luminance map.
func depthColors(zs []float64) []color.NRGBA {
	cm := moreland.Kindlmann()
	lo, hi := floats.Min(zs), floats.Max(zs)
	if hi <= lo {
		hi = lo + 1
	}
	cm.SetMax(hi)
	cm.SetMin(lo)

	out := make([]color.NRGBA, len(zs))
	for j, z := range zs {
		c, err := cm.At(z)
		if err != nil {
			logrus.Debugf("No depth colour for z=%v: %v", z, err)
			out[j] = colorutil.Gray
			continue
		}
		out[j] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return out
}

func (s *Secondary) prepareDensity(bg *catalog.Sample) {
	lon := make([]float64, bg.Len())
	lat := make([]float64, bg.Len())
	for j := range lon {
		lon[j] = sky.CelestialLon(bg.RA[j])
		lat[j] = bg.Dec[j] * math.Pi / 180
	}

	grid := sky.Density(lon, lat, densityBins)
	if grid == nil {
		return
	}
	fill := colorutil.WithAlpha(colorutil.Blue, densityAlpha)
	grid.Cells(densityLevel, func(x0, x1, y0, y1, _ float64) {
		corners := [][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
		ring := make([]Point, len(corners))
		for k, c := range corners {
			ring[k].X, ring[k].Y = sky.Mollweide(c[0], c[1])
		}
		s.density = append(s.density, Polygon{Rings: [][]Point{ring}, Fill: fill})
	})
	logrus.Debugf("Density grid: %.0f galaxies, %d cells at or above %.0f", grid.Total(), len(s.density), densityLevel)
}

// Mode returns the mode the panel was built for.
func (s *Secondary) Mode() view.Mode {
	return s.mode
}

// Scene builds the inset for st.
func (s *Secondary) Scene(st view.State) Scene {
	sc := s.frame
	sc.Grid = append([]Polyline(nil), s.frame.Grid...)
	sc.Labels = append([]Label(nil), s.frame.Labels...)

	if s.mode.Axis == catalog.AxisZ {
		s.redshiftScene(&sc, st)
	} else {
		s.declinationScene(&sc, st)
	}
	return sc
}

func (s *Secondary) redshiftScene(sc *Scene, st view.State) {
	if len(s.stripPoints) > 0 {
		all := &Layer{
			Name:    "strip",
			Colors:  s.stripColors,
			Alpha:   stripAlpha,
			Size:    1,
			Visible: true,
			Points:  s.stripPoints,
		}

		in := &Layer{Name: "slice", Color: colorutil.Red, Alpha: 1, Size: 1, Visible: true}
		for j, ok := range view.Mask(s.stripZ, st.Center, st.Width) {
			if ok {
				in.Points = append(in.Points, s.stripPoints[j])
			}
		}
		sc.Layers = []*Layer{all, in}
	}

	r0 := math.Min(st.Center, wedgeRMax)
	r1 := math.Min(st.Center+st.Width, wedgeRMax)
	if r1 > r0 {
		sc.Overlays = append(sc.Overlays, annulus(r0, r1, colorutil.WithAlpha(colorutil.Red, sliceAlpha)))
	}
}

func (s *Secondary) declinationScene(sc *Scene, st view.State) {
	sc.Underlays = s.density

	d0 := math.Max(st.Center, -90)
	d1 := math.Min(st.Center+st.Width, 90)
	if d1 > d0 {
		sc.Overlays = append(sc.Overlays, decBand(d0, d1, colorutil.WithAlpha(colorutil.Red, bandAlpha)))
	}
}
