package render

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"lssgal/pkg/colorutil"
)

// Plotter draws scenes into images with gonum/plot.
type Plotter struct {
	DPI        float64
	Background color.Color
}

// NewPlotter returns a plotter drawing at screen resolution on white.
func NewPlotter() *Plotter {
	return &Plotter{DPI: 96, Background: colorutil.White}
}

// Render draws sc into a w×h pixel image. The scene keeps its aspect ratio
// and is centred; the rest is background.
func (pl *Plotter) Render(sc Scene, w, h int) (image.Image, error) {
	if w < 1 || h < 1 {
		return nil, errors.Errorf("invalid image size %dx%d", w, h)
	}

	p := plot.New()
	p.HideAxes()
	p.BackgroundColor = color.Transparent

	for _, g := range sc.Grid {
		if err := addPolyline(p, g); err != nil {
			return nil, err
		}
	}
	for _, poly := range sc.Underlays {
		if err := addPolygon(p, poly); err != nil {
			return nil, err
		}
	}
	for _, l := range sc.Layers {
		if err := addLayer(p, l); err != nil {
			return nil, errors.Wrapf(err, "layer %s", l.Name)
		}
	}
	for _, poly := range sc.Overlays {
		if err := addPolygon(p, poly); err != nil {
			return nil, err
		}
	}
	if err := addLabels(p, sc.Labels); err != nil {
		return nil, err
	}

	// Fixed bounds; set after Add, which widens them to the data.
	p.X.Min, p.X.Max = sc.XMin, sc.XMax
	p.Y.Min, p.Y.Max = sc.YMin, sc.YMax

	c := vgimg.NewWith(
		vgimg.UseWH(pl.toLength(w), pl.toLength(h)),
		vgimg.UseDPI(int(pl.DPI)),
		vgimg.UseBackgroundColor(pl.Background),
	)
	p.Draw(fitAspect(draw.New(c), sc.Aspect()))
	return c.Image(), nil
}

// toLength converts pixels to a vg length at the plotter's resolution.
func (pl *Plotter) toLength(px int) vg.Length {
	return vg.Length(float64(px) * float64(vg.Inch) / pl.DPI)
}

// fitAspect shrinks dc to the largest centred area with the given aspect.
func fitAspect(dc draw.Canvas, aspect float64) draw.Canvas {
	w := dc.Max.X - dc.Min.X
	h := dc.Max.Y - dc.Min.Y
	if w <= 0 || h <= 0 || aspect <= 0 {
		return dc
	}
	if float64(w)/float64(h) > aspect {
		pad := (w - vg.Length(float64(h)*aspect)) / 2
		return draw.Crop(dc, pad, -pad, 0, 0)
	}
	pad := (h - vg.Length(float64(w)/aspect)) / 2
	return draw.Crop(dc, 0, 0, pad, -pad)
}

func toXYs(pts []Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	return xys
}

func addPolyline(p *plot.Plot, pl Polyline) error {
	if len(pl.Points) < 2 {
		return nil
	}
	l, err := plotter.NewLine(toXYs(pl.Points))
	if err != nil {
		return errors.Wrap(err, "grid line")
	}
	l.LineStyle.Color = pl.Color
	l.LineStyle.Width = vg.Points(pl.Width)
	p.Add(l)
	return nil
}

func addPolygon(p *plot.Plot, poly Polygon) error {
	if len(poly.Rings) == 0 {
		return nil
	}
	rings := make([]plotter.XYer, len(poly.Rings))
	for i, r := range poly.Rings {
		rings[i] = toXYs(r)
	}
	pg, err := plotter.NewPolygon(rings...)
	if err != nil {
		return errors.Wrap(err, "polygon")
	}
	pg.Color = poly.Fill
	pg.LineStyle.Width = 0
	p.Add(pg)
	return nil
}

func addLayer(p *plot.Plot, l *Layer) error {
	if !l.Visible || len(l.Points) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(toXYs(l.Points))
	if err != nil {
		return err
	}
	s.GlyphStyle = glyphStyle(colorutil.WithAlpha(l.Color, l.Alpha), l.Size)
	if len(l.Colors) == len(l.Points) {
		colors, alpha, size := l.Colors, l.Alpha, l.Size
		s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			return glyphStyle(colorutil.WithAlpha(colors[i], alpha), size)
		}
	}
	p.Add(s)
	return nil
}

// glyphStyle draws pixel-sized markers as boxes and larger ones as circles.
func glyphStyle(c color.Color, size float64) draw.GlyphStyle {
	gs := draw.GlyphStyle{Color: c, Radius: vg.Points(size / 2)}
	if size <= 1 {
		gs.Shape = draw.BoxGlyph{}
	} else {
		gs.Shape = draw.CircleGlyph{}
	}
	return gs
}

func addLabels(p *plot.Plot, labels []Label) error {
	if len(labels) == 0 {
		return nil
	}
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(labels)),
		Labels: make([]string, len(labels)),
	}
	for i, l := range labels {
		xyl.XYs[i].X, xyl.XYs[i].Y = l.At.X, l.At.Y
		xyl.Labels[i] = l.Text
	}
	ls, err := plotter.NewLabels(xyl)
	if err != nil {
		return errors.Wrap(err, "labels")
	}
	for i := range ls.TextStyle {
		ls.TextStyle[i].Font.Size = vg.Points(8)
		ls.TextStyle[i].Color = colorutil.Black
	}
	p.Add(ls)
	return nil
}
