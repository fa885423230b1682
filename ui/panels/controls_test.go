package panels

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func newControls(t *testing.T) (*Controls, *app.State) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	state := app.NewState(testCatalogs(), view.Redshift)
	return NewControls(state), state
}

func TestControlsInitialValues(t *testing.T) {
	c, _ := newControls(t)

	assert.InDelta(t, 0.030, c.center.Value, 1e-9)
	assert.InDelta(t, 0.005, c.width.Value, 1e-9)
	assert.InDelta(t, 0.2, c.alpha.Value, 1e-9)
	assert.Equal(t, 0.1, c.center.Max)
	assert.Equal(t, "z", c.centerName.Text)
	assert.Equal(t, "0.030", c.centerValue.Text)
	assert.ElementsMatch(t, []string{"LSS", "Isolated"}, c.samples.Selected)
}

func TestControlsSliderUpdatesState(t *testing.T) {
	c, state := newControls(t)

	c.center.SetValue(0.04)
	assert.InDelta(t, 0.04, state.View().Center, 1e-9)
	assert.Equal(t, "0.040", c.centerValue.Text)

	c.alpha.SetValue(0.5)
	assert.InDelta(t, 0.5, state.View().Alpha, 1e-9)
}

func TestControlsReset(t *testing.T) {
	c, state := newControls(t)

	c.center.SetValue(0.06)
	c.width.SetValue(0.02)
	c.samples.OnChanged([]string{"Pairs"})
	require.Equal(t, [catalog.NumSamples]bool{false, false, true, false}, state.View().Visible)

	test.Tap(c.reset)

	st := state.View()
	assert.Equal(t, 0.030, st.Center)
	assert.Equal(t, 0.005, st.Width)
	assert.Equal(t, 0.2, st.Alpha)
	assert.Equal(t, [catalog.NumSamples]bool{false, false, true, false}, st.Visible)
	assert.InDelta(t, 0.030, c.center.Value, 1e-9)
}

func TestControlsFollowState(t *testing.T) {
	c, state := newControls(t)

	state.Toggle(catalog.Triplets)
	assert.Contains(t, c.samples.Selected, "Triplets")

	state.SetMode(view.Declination)
	assert.Equal(t, "Dec.", c.centerName.Text)
	assert.Equal(t, -20.0, c.center.Min)
	assert.Equal(t, 90.0, c.width.Max)
	assert.InDelta(t, 5, c.width.Value, 1e-9)
	assert.Equal(t, "5.0°", c.widthValue.Text)
	assert.Contains(t, c.samples.Selected, "Triplets")
}
