// Package main provides the entry point for the LSS galaxy viewer.
package main

import (
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"lssgal/internal/app"
	"lssgal/internal/catalog"
	"lssgal/internal/conf"
	"lssgal/internal/version"
	"lssgal/internal/view"
	"lssgal/ui/mainwindow"
)

const (
	appName = "lssgal"
	appID   = "org.lssgal.viewer"
)

func main() {
	conf.SetAppName(appName)
	conf.SetVersion(version.String())
	check(conf.ParseFlags(), "parsing flags")

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := conf.LogLevel()
	check(err, "configuring logging")
	logrus.SetLevel(level)
	logrus.Infof("Starting %s v%s", appName, version.Version)

	mode, err := view.ModeByName(conf.Mode.Value())
	check(err, "selecting mode")

	files := catalog.Files{
		catalog.Background: conf.LSSFile.Value(),
		catalog.Isolated:   conf.IsolatedFile.Value(),
		catalog.Pairs:      conf.PairsFile.Value(),
		catalog.Triplets:   conf.TripletsFile.Value(),
	}
	catalogs, err := catalog.LoadSet(conf.DataDir.Value(), files)
	check(err, "loading catalogs")

	appState := app.NewState(catalogs, mode)

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.ViewerTheme{})

	win := mainwindow.New(fyneApp, appState)
	win.SetMaster()
	win.CenterOnScreen()
	win.ShowAndRun()
}

// check stops the process when err is set.
func check(err error, context string) {
	if err != nil {
		logrus.Fatalf("%v", errors.Wrap(err, context))
	}
}
