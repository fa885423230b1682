package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"lssgal/internal/catalog"
	"lssgal/internal/view"
)

// Smallest image the slice count chart is drawn into; below that the axis
// labels do not fit.
const (
	minCountsWidth  = 140
	minCountsHeight = 90
)

func chartColor(c color.NRGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// CountsChart draws a bar chart with the number of points of every sample
// inside the active slice. Hidden samples are drawn faded.
func CountsChart(sum [catalog.NumSamples]view.Summary, visible [catalog.NumSamples]bool, w, h int) (image.Image, error) {
	if w < minCountsWidth || h < minCountsHeight {
		return image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1))), nil
	}

	maxCount := 1.0
	bars := make([]chart.Value, 0, len(sum))
	for i, s := range sum {
		alpha := 255
		if !visible[i] {
			alpha = 70
		}
		fill := chartColor(sampleStyles[i].color).WithAlpha(uint8(alpha))
		bars = append(bars, chart.Value{
			Label: s.Name,
			Value: float64(s.Count),
			Style: chart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 1},
		})
		maxCount = math.Max(maxCount, float64(s.Count))
	}

	bc := chart.BarChart{
		Width:      w,
		Height:     h,
		BarWidth:   (w - 70) / 6,
		BarSpacing: (w - 70) / 12,
		Background: chart.Style{Padding: chart.Box{Top: 12, Left: 8, Right: 8, Bottom: 4}},
		XAxis:      chart.Style{FontSize: 8},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 7},
			Range: &chart.ContinuousRange{Min: 0, Max: maxCount * 1.1},
			ValueFormatter: func(v interface{}) string {
				return chart.FloatValueFormatterWithFormat(v, "%.0f")
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "rendering slice counts")
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "decoding slice counts")
	}
	return img, nil
}
