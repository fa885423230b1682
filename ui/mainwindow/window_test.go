package mainwindow

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"lssgal/internal/app"
	"lssgal/internal/catalog"
	"lssgal/internal/view"
)

func testCatalogs() catalog.Set {
	return catalog.Set{
		{Name: "LSS", RA: []float64{1, 2, 3}, Dec: []float64{-5, 0, 2.5}, Z: []float64{0.01, 0.03, 0.04}},
		{Name: "Isolated", RA: []float64{10}, Dec: []float64{20}, Z: []float64{0.031}},
		{Name: "Pairs", RA: []float64{20}, Dec: []float64{1}, Z: []float64{0.032}},
		{Name: "Triplets", RA: []float64{30}, Dec: []float64{30}, Z: []float64{0.09}},
	}
}

func newWindow(t *testing.T) (*MainWindow, *app.State) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	state := app.NewState(testCatalogs(), view.Redshift)
	return New(a, state), state
}

func TestWindowCaption(t *testing.T) {
	mw, state := newWindow(t)
	assert.Equal(t, "Mollweide projection within 0.030 < z < 0.035", mw.caption.Text)

	state.SetCenter(0.04)
	assert.Equal(t, "Mollweide projection within 0.040 < z < 0.045", mw.caption.Text)
	assert.Equal(t, 1, len(mw.primary.Layer(catalog.Background).Points))
}

func TestWindowVisibility(t *testing.T) {
	mw, state := newWindow(t)
	assert.False(t, mw.primary.Layer(catalog.Pairs).Visible)

	state.Toggle(catalog.Pairs)
	assert.True(t, mw.primary.Layer(catalog.Pairs).Visible)
	assert.Contains(t, mw.statusBar.Text, "Pairs: 1")
	assert.NotContains(t, mw.statusBar.Text, "[Pairs")
	// LSS z=0.03, Isolated z=0.031, Pairs z=0.032 are in [0.030, 0.035).
	assert.Contains(t, mw.statusBar.Text, "Shown: 3")

	state.Toggle(catalog.Background)
	assert.Contains(t, mw.statusBar.Text, "Shown: 2")
}

func TestWindowModeSwitch(t *testing.T) {
	mw, state := newWindow(t)
	state.Toggle(catalog.Triplets)

	state.SetMode(view.Declination)
	assert.Equal(t, view.Declination.Name, mw.primary.Mode().Name)
	assert.Equal(t, view.Declination.Name, mw.secondary.Mode().Name)
	assert.Equal(t, "Wedge diagram within 0.0° < Dec. < 5.0°", mw.caption.Text)
	assert.True(t, mw.modeItems[view.Declination.Name].Checked)
	assert.False(t, mw.modeItems[view.Redshift.Name].Checked)
	assert.True(t, mw.primary.Layer(catalog.Triplets).Visible)
}

func TestStatusText(t *testing.T) {
	sum := [catalog.NumSamples]view.Summary{
		{Name: "LSS", Count: 2, MeanZ: 0.0315},
		{Name: "Isolated", Count: 0},
		{Name: "Pairs", Count: 1, MeanZ: 0.032},
		{Name: "Triplets", Count: 0},
	}
	got := statusText(sum, [catalog.NumSamples]bool{true, true, false, false})
	assert.Equal(t, "LSS: 2 (mean z 0.0315)   Isolated: 0   [Pairs: 1 (mean z 0.0320)]   [Triplets: 0]", got)
}
