package render

import (
	"image/color"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"lssgal/internal/catalog"
	"lssgal/internal/sky"
	"lssgal/internal/view"
	"lssgal/pkg/colorutil"
)

// Opacity of the foreground samples. The background follows the
// transparency slider.
const foregroundAlpha = 0.7

type sampleStyle struct {
	color color.NRGBA
	size  float64
}

var sampleStyles = [catalog.NumSamples]sampleStyle{
	catalog.Background: {colorutil.Black, 1},
	catalog.Isolated:   {colorutil.Red, 4},
	catalog.Pairs:      {colorutil.Green, 4},
	catalog.Triplets:   {colorutil.Blue, 4},
}

// Primary is the main panel: the four samples inside the active slice. In
// redshift mode it is the Mollweide map, in declination mode the wedge
// diagram.
//
// The four layers are created once. Update swaps their points in place and
// SetVisible flips their visibility, so a layer keeps its identity for the
// whole session. Scene may be called from the paint goroutine while the
// event goroutine updates the layers.
type Primary struct {
	mu sync.RWMutex

	mode   view.Mode
	frame  Scene
	coords [catalog.NumSamples][]Point
	layers [catalog.NumSamples]*Layer
}

// NewPrimary projects every sample once for mode and creates the layers with
// their default visibility. Call Update before the first draw.
func NewPrimary(mode view.Mode, set catalog.Set) *Primary {
	p := &Primary{mode: mode}

	if mode.Axis == catalog.AxisZ {
		p.frame = skyFrame()
	} else {
		rmax := depthLimit(set)
		p.frame = polarFrame(rmax, ringStepFor(rmax))
	}

	for i, s := range set {
		if s != nil {
			p.coords[i] = primaryCoords(mode, s)
		}
		p.layers[i] = &Layer{
			Name:    catalog.Labels[i],
			Color:   sampleStyles[i].color,
			Size:    sampleStyles[i].size,
			Alpha:   foregroundAlpha,
			Visible: view.DefaultVisibility[i],
		}
	}
	return p
}

// primaryCoords places a sample in the main panel: Mollweide position for
// redshift slices, (RA, z) polar position for declination slices.
func primaryCoords(mode view.Mode, s *catalog.Sample) []Point {
	pts := make([]Point, s.Len())
	for j := range pts {
		if mode.Axis == catalog.AxisZ {
			pts[j].X, pts[j].Y = sky.Project(s.RA[j], s.Dec[j])
		} else {
			pts[j].X, pts[j].Y = sky.Polar(sky.WedgeAngle(s.RA[j], 0), s.Z[j])
		}
	}
	return pts
}

// depthLimit is the outer radius of the wedge diagram: the largest redshift
// of any sample rounded up to 0.01.
func depthLimit(set catalog.Set) float64 {
	zmax := 0.0
	for _, s := range set {
		if s != nil && s.Len() > 0 {
			zmax = math.Max(zmax, floats.Max(s.Z))
		}
	}
	r := math.Ceil(zmax*100-1e-9) / 100
	if r <= 0 {
		r = 0.01
	}
	return r
}

// Mode returns the mode the panel was built for.
func (p *Primary) Mode() view.Mode {
	return p.mode
}

// Layer returns the layer of sample i.
func (p *Primary) Layer(i int) *Layer {
	return p.layers[i]
}

// Update replaces the points of every layer with the selected ones and
// applies the background opacity and visibility of st.
func (p *Primary) Update(st view.State, sel view.Selection) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, l := range p.layers {
		l.Points = l.Points[:0]
		for j, ok := range sel[i] {
			if ok && j < len(p.coords[i]) {
				l.Points = append(l.Points, p.coords[i][j])
			}
		}
		l.Visible = st.Visible[i]
	}
	p.layers[catalog.Background].Alpha = st.Alpha
}

// SetVisible shows or hides sample i without touching its points.
func (p *Primary) SetVisible(i int, visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i >= 0 && i < len(p.layers) {
		p.layers[i].Visible = visible
	}
}

// Scene returns the panel contents with a copy of every layer, so the
// result stays valid while later updates rewrite the layers.
func (p *Primary) Scene() Scene {
	p.mu.RLock()
	defer p.mu.RUnlock()

	sc := p.frame
	sc.Layers = make([]*Layer, len(p.layers))
	for i, l := range p.layers {
		snap := *l
		snap.Points = append([]Point(nil), l.Points...)
		sc.Layers[i] = &snap
	}
	return sc
}
