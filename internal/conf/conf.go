package conf

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const envPrefix = "LSSGAL"

var (
	app = kingpin.New("lssgal", "Interactive viewer for galaxy catalogs against the local large-scale structure.")

	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"info",
	)

	isParsed = false
)

// SetAppName sets application name for CLI output.
func SetAppName(name string) {
	app.Name = name
}

// SetVersion enables the --version flag.
func SetVersion(version string) {
	app.Version(version)
}

// LogLevel returns the configured log level.
func LogLevel() (logrus.Level, error) {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err != nil {
		return level, errors.Wrapf(err, "invalid --%s value", logLevelFlag.Model().Name)
	}
	return level, nil
}

// ParseFlags parses the process command line together with the environment.
func ParseFlags() error {
	return Parse(os.Args[1:])
}

// Parse parses args together with the environment.
func Parse(args []string) error {
	if _, err := app.Parse(args); err != nil {
		return errors.Wrap(err, "could not parse command line flags")
	}
	isParsed = true
	return nil
}

// ParseEnv parses only the environment.
func ParseEnv() error {
	if _, err := app.Parse([]string{}); err != nil {
		return errors.Wrap(err, "could not parse environment flags")
	}
	isParsed = true
	return nil
}
