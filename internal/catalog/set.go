package catalog

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Sample indices within a Set.
const (
	Background = iota
	Isolated
	Pairs
	Triplets

	NumSamples
)

// Labels are the display names of the samples, in Set order.
var Labels = [NumSamples]string{"LSS", "Isolated", "Pairs", "Triplets"}

// Set holds the background sample followed by the three foreground samples.
type Set [NumSamples]*Sample

// Files names the table of each sample, in Set order.
type Files [NumSamples]string

// DefaultFiles are the published catalog file names.
var DefaultFiles = Files{
	"SDSS_DR10_galaxy_local.txt",
	"table1.txt",
	"table2.txt",
	"table3.txt",
}

// LoadSet loads all four samples from dir. Any missing or malformed file is
// an error; there is no partial load.
func LoadSet(dir string, files Files) (Set, error) {
	var set Set
	for i, name := range files {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, name)
		}

		s, err := Load(path)
		if err != nil {
			return Set{}, errors.Wrapf(err, "loading %s sample", Labels[i])
		}
		s.Name = Labels[i]
		set[i] = s

		logrus.Infof("Loaded %s sample: %d objects from %s", Labels[i], s.Len(), path)
	}
	return set, nil
}
