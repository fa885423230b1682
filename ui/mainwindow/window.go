// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"image"
	"strings"

	"lssgal/internal/app"
	"lssgal/internal/catalog"
	"lssgal/internal/render"
	"lssgal/internal/version"
	"lssgal/internal/view"
	"lssgal/ui/canvas"
	"lssgal/ui/panels"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

const appTitle = "LSS Galaxy Viewer"

// Panel sizes in device independent pixels.
var (
	windowSize    = fyne.NewSize(1304, 672)
	primarySize   = fyne.NewSize(640, 360)
	secondarySize = fyne.NewSize(280, 280)
)

// MainWindow is the primary application window: the large panel A with the
// smaller panel B inset at its lower right corner, controls around them.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State

	plotter   *render.Plotter
	primary   *render.Primary
	secondary *render.Secondary

	primaryCanvas   *canvas.PlotCanvas
	secondaryCanvas *canvas.PlotCanvas
	controls        *panels.Controls
	caption         *widget.Label
	statusBar       *widget.Label

	// Menu items that need state tracking
	mainMenu  *fyne.MainMenu
	modeItems map[string]*fyne.MenuItem
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window:  win,
		app:     fyneApp,
		state:   state,
		plotter: render.NewPlotter(),
	}

	mw.buildPanels()
	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.refreshText()

	mw.Resize(windowSize)
	return mw
}

// buildPanels creates the renderers for the active mode.
func (mw *MainWindow) buildPanels() {
	m := mw.state.Mode()
	mw.primary = render.NewPrimary(m, mw.state.Catalogs)
	mw.secondary = render.NewSecondary(m, mw.state.Catalogs)
	mw.primary.Update(mw.state.View(), mw.state.Selection())
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.primaryCanvas = canvas.NewPlotCanvas("primary", mw.drawPrimary, primarySize)
	mw.secondaryCanvas = canvas.NewPlotCanvas("secondary", mw.drawSecondary, secondarySize)
	mw.primaryCanvas.SetOnError(mw.onRenderError)
	mw.secondaryCanvas.SetOnError(mw.onRenderError)

	mw.controls = panels.NewControls(mw.state)
	mw.controls.SetOnError(mw.onRenderError)

	mw.caption = widget.NewLabel("")
	mw.caption.Alignment = fyne.TextAlignCenter
	mw.caption.TextStyle = fyne.TextStyle{Bold: true}

	mw.statusBar = widget.NewLabel("Ready")

	// Panel B sits on top of panel A, pinned to the lower right corner
	inset := container.NewBorder(nil,
		container.NewHBox(layout.NewSpacer(), mw.secondaryCanvas),
		nil, nil)
	panelArea := container.NewStack(mw.primaryCanvas, inset)

	bottom := container.NewVBox(
		mw.controls.SliderBar(),
		container.NewPadded(mw.statusBar),
	)

	content := container.NewBorder(
		mw.caption, // top
		bottom,     // bottom
		container.NewVScroll(mw.controls.SidePanel()), // left
		nil,       // right
		panelArea, // center
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	mw.modeItems = make(map[string]*fyne.MenuItem, len(view.Modes))
	var viewItems []*fyne.MenuItem
	for _, m := range view.Modes {
		m := m
		item := fyne.NewMenuItem(fmt.Sprintf("%s (%s slices)", m.Title, m.Axis), func() {
			mw.state.SetMode(m)
		})
		mw.modeItems[m.Name] = item
		viewItems = append(viewItems, item)
	}
	viewItems = append(viewItems,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset Sliders", mw.state.Reset),
	)
	viewMenu := fyne.NewMenu("View", viewItems...)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.mainMenu = fyne.NewMainMenu(fileMenu, viewMenu, helpMenu)
	mw.updateModeItems()
	mw.SetMainMenu(mw.mainMenu)
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventSliceChanged, func(data interface{}) {
		mw.primary.Update(mw.state.View(), mw.state.Selection())
		mw.refreshText()
		mw.primaryCanvas.Redraw()
		mw.secondaryCanvas.Redraw()
	})

	mw.state.On(app.EventVisibilityChanged, func(data interface{}) {
		if i, ok := data.(int); ok {
			mw.primary.SetVisible(i, mw.state.View().Visible[i])
		}
		mw.refreshText()
		mw.primaryCanvas.Redraw()
	})

	mw.state.On(app.EventModeChanged, func(data interface{}) {
		mw.buildPanels()
		mw.updateModeItems()
		mw.refreshText()
		mw.primaryCanvas.Redraw()
		mw.secondaryCanvas.Redraw()
	})
}

func (mw *MainWindow) drawPrimary(w, h int) (image.Image, error) {
	return mw.plotter.Render(mw.primary.Scene(), w, h)
}

func (mw *MainWindow) drawSecondary(w, h int) (image.Image, error) {
	return mw.plotter.Render(mw.secondary.Scene(mw.state.View()), w, h)
}

// refreshText updates caption, title and status bar from the state. The
// status bar ends with the number of markers drawn in panel A.
func (mw *MainWindow) refreshText() {
	m := mw.state.Mode()
	mw.caption.SetText(m.Caption(mw.state.View()))
	mw.SetTitle(appTitle + " - " + m.Title)
	status := statusText(view.Summarize(mw.state.Catalogs, mw.state.Selection()), mw.state.View().Visible)
	sc := mw.primary.Scene()
	mw.updateStatus(fmt.Sprintf("%s   Shown: %d", status, sc.VisiblePoints()))
}

// statusText lists the selected count and mean redshift of every sample;
// hidden samples are put in brackets.
func statusText(sum [catalog.NumSamples]view.Summary, visible [catalog.NumSamples]bool) string {
	parts := make([]string, 0, len(sum))
	for i, s := range sum {
		part := fmt.Sprintf("%s: %d", s.Name, s.Count)
		if s.Count > 0 {
			part += fmt.Sprintf(" (mean z %.4f)", s.MeanZ)
		}
		if !visible[i] {
			part = "[" + part + "]"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "   ")
}

func (mw *MainWindow) updateModeItems() {
	active := mw.state.Mode().Name
	for name, item := range mw.modeItems {
		item.Checked = name == active
	}
	if mw.mainMenu != nil {
		mw.mainMenu.Refresh()
	}
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) onRenderError(err error) {
	logrus.Warnf("Keeping previous image: %v", err)
	mw.updateStatus("Render failed: " + err.Error())
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+appTitle,
		fmt.Sprintf("%s v%s\n\n"+
			"Interactive slices through the SDSS DR10 large scale structure\n"+
			"with isolated galaxies, pairs and triplets.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			appTitle, version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
