// Package canvas provides a raster widget showing a rendered plot panel.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

// RenderFunc produces the panel image for a w×h pixel area.
type RenderFunc func(w, h int) (image.Image, error)

// PlotCanvas draws whatever its RenderFunc returns at the widget's native
// pixel size. When rendering fails it keeps showing the last good image.
type PlotCanvas struct {
	widget.BaseWidget

	name    string
	render  RenderFunc
	raster  *fynecanvas.Raster
	minSize fyne.Size

	// Last successful output
	last    image.Image
	lastErr error

	// Callbacks
	onError func(err error)
}

// NewPlotCanvas creates a canvas named for log messages.
func NewPlotCanvas(name string, render RenderFunc, minSize fyne.Size) *PlotCanvas {
	pc := &PlotCanvas{
		name:    name,
		render:  render,
		minSize: minSize,
	}
	pc.raster = fynecanvas.NewRaster(pc.draw)
	pc.raster.ScaleMode = fynecanvas.ImageScaleSmooth
	pc.raster.SetMinSize(minSize)
	pc.ExtendBaseWidget(pc)
	return pc
}

func (pc *PlotCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.raster)
}

// MinSize returns the configured minimum size.
func (pc *PlotCanvas) MinSize() fyne.Size {
	return pc.minSize
}

// SetOnError registers a callback for render failures.
func (pc *PlotCanvas) SetOnError(fn func(err error)) {
	pc.onError = fn
}

// Redraw asks fyne to call the RenderFunc again.
func (pc *PlotCanvas) Redraw() {
	pc.raster.Refresh()
}

// draw is the raster generator.
func (pc *PlotCanvas) draw(w, h int) image.Image {
	img, err := pc.render(w, h)
	pc.lastErr = err
	if err != nil {
		logrus.Errorf("Rendering %s panel failed: %v", pc.name, err)
		if pc.onError != nil {
			pc.onError(err)
		}
		if pc.last != nil {
			return pc.last
		}
		return messageImage(w, h, "Rendering failed")
	}

	pc.last = img
	return img
}
