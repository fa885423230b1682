// Package panels provides the control widgets of the viewer.
package panels

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"lssgal/internal/app"
	"lssgal/internal/catalog"
	"lssgal/internal/render"
	"lssgal/internal/view"
	"lssgal/ui/canvas"
)

// alphaStep is the resolution of the transparency slider.
const alphaStep = 0.01

// Controls holds the sliders, the sample check group, the reset button and
// the slice count chart.
type Controls struct {
	state *app.State

	centerName  *widget.Label
	widthName   *widget.Label
	center      *widget.Slider
	width       *widget.Slider
	alpha       *widget.Slider
	centerValue *widget.Label
	widthValue  *widget.Label
	alphaValue  *widget.Label

	samples *widget.CheckGroup
	reset   *widget.Button
	counts  *canvas.PlotCanvas

	// syncing suppresses widget callbacks while values are pushed from the
	// state into the widgets.
	syncing bool
}

// NewControls creates the controls and subscribes them to state changes.
func NewControls(state *app.State) *Controls {
	c := &Controls{state: state}

	c.centerName = widget.NewLabel("")
	c.widthName = widget.NewLabel("")
	c.centerValue = widget.NewLabel("")
	c.widthValue = widget.NewLabel("")
	c.alphaValue = widget.NewLabel("")

	c.center = widget.NewSlider(0, 1)
	c.center.OnChanged = func(v float64) {
		if !c.syncing {
			state.SetCenter(v)
		}
	}
	c.width = widget.NewSlider(0, 1)
	c.width.OnChanged = func(v float64) {
		if !c.syncing {
			state.SetWidth(v)
		}
	}

	m := state.Mode()
	c.alpha = widget.NewSlider(m.Alpha.Min, m.Alpha.Max)
	c.alpha.Step = alphaStep
	c.alpha.OnChanged = func(v float64) {
		if !c.syncing {
			state.SetAlpha(v)
		}
	}

	c.samples = widget.NewCheckGroup(catalog.Labels[:], func(selected []string) {
		if !c.syncing {
			c.applyChecks(selected)
		}
	})

	c.reset = widget.NewButton("Reset", state.Reset)
	c.reset.Importance = widget.DangerImportance

	c.counts = canvas.NewPlotCanvas("slice counts", c.drawCounts, fyne.NewSize(180, 140))

	c.configure(m)
	c.sync()

	state.On(app.EventSliceChanged, func(data interface{}) {
		c.sync()
		c.counts.Redraw()
	})
	state.On(app.EventVisibilityChanged, func(data interface{}) {
		c.sync()
		c.counts.Redraw()
	})
	state.On(app.EventModeChanged, func(data interface{}) {
		if m, ok := data.(view.Mode); ok {
			c.configure(m)
		}
		c.sync()
		c.counts.Redraw()
	})

	return c
}

// SliderBar returns the center and width sliders, one row each.
func (c *Controls) SliderBar() fyne.CanvasObject {
	return container.NewVBox(
		container.NewBorder(nil, nil, c.centerName, c.centerValue, c.center),
		container.NewBorder(nil, nil, c.widthName, c.widthValue, c.width),
	)
}

// SidePanel returns the sample toggles, transparency slider, reset button
// and count chart.
func (c *Controls) SidePanel() fyne.CanvasObject {
	return container.NewVBox(
		widget.NewCard("Samples", "", c.samples),
		widget.NewCard("Transp.", "", container.NewBorder(nil, nil, nil, c.alphaValue, c.alpha)),
		c.reset,
		widget.NewCard("In slice", "", c.counts),
	)
}

// SetOnError forwards count chart render failures.
func (c *Controls) SetOnError(fn func(err error)) {
	c.counts.SetOnError(fn)
}

// configure sets slider bounds, step and names for mode m.
func (c *Controls) configure(m view.Mode) {
	c.syncing = true
	defer func() { c.syncing = false }()

	c.centerName.SetText(m.Axis.String())
	c.widthName.SetText("Range")

	c.center.Min, c.center.Max, c.center.Step = m.Center.Min, m.Center.Max, m.Step
	c.width.Min, c.width.Max, c.width.Step = m.Width.Min, m.Width.Max, m.Step
	c.center.Refresh()
	c.width.Refresh()
}

// sync pushes the state's values into the widgets.
func (c *Controls) sync() {
	c.syncing = true
	defer func() { c.syncing = false }()

	m := c.state.Mode()
	st := c.state.View()

	if c.center.Value != st.Center {
		c.center.SetValue(st.Center)
	}
	if c.width.Value != st.Width {
		c.width.SetValue(st.Width)
	}
	if c.alpha.Value != st.Alpha {
		c.alpha.SetValue(st.Alpha)
	}
	c.centerValue.SetText(m.Format(st.Center))
	c.widthValue.SetText(m.Format(st.Width))
	c.alphaValue.SetText(fmt.Sprintf("%.2f", st.Alpha))

	var selected []string
	for i, on := range st.Visible {
		if on {
			selected = append(selected, catalog.Labels[i])
		}
	}
	if !sameStrings(c.samples.Selected, selected) {
		c.samples.SetSelected(selected)
	}
}

// applyChecks turns the check group selection into visibility changes.
func (c *Controls) applyChecks(selected []string) {
	on := make(map[string]bool, len(selected))
	for _, name := range selected {
		on[name] = true
	}
	for i, name := range catalog.Labels {
		c.state.SetVisible(i, on[name])
	}
}

func (c *Controls) drawCounts(w, h int) (image.Image, error) {
	sum := view.Summarize(c.state.Catalogs, c.state.Selection())
	return render.CountsChart(sum, c.state.View().Visible, w, h)
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
