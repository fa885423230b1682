package view

import (
	"gonum.org/v1/gonum/stat"

	"lssgal/internal/catalog"
)

// Mask selects the values in the half-open slice [center, center+width).
// A zero or negative width selects nothing.
func Mask(values []float64, center, width float64) []bool {
	mask := make([]bool, len(values))
	hi := center + width
	for i, v := range values {
		mask[i] = v >= center && v < hi
	}
	return mask
}

// Selection holds one mask per sample.
type Selection [catalog.NumSamples][]bool

// Select applies the slice of s along the mode's axis to every sample.
// A nil sample gets an empty mask.
func Select(set catalog.Set, m Mode, s State) Selection {
	var sel Selection
	for i, sample := range set {
		if sample == nil {
			continue
		}
		sel[i] = Mask(sample.Column(m.Axis), s.Center, s.Width)
	}
	return sel
}

// Count returns the number of selected points of sample i.
func (sel Selection) Count(i int) int {
	n := 0
	for _, ok := range sel[i] {
		if ok {
			n++
		}
	}
	return n
}

// Indices returns the positions of the selected points of sample i.
func (sel Selection) Indices(i int) []int {
	idx := make([]int, 0, sel.Count(i))
	for j, ok := range sel[i] {
		if ok {
			idx = append(idx, j)
		}
	}
	return idx
}

// Equal reports whether two selections pick the same points.
func (sel Selection) Equal(other Selection) bool {
	for i := range sel {
		if len(sel[i]) != len(other[i]) {
			return false
		}
		for j := range sel[i] {
			if sel[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Summary describes the selected part of one sample.
type Summary struct {
	Name  string
	Count int
	MeanZ float64 // mean redshift of the selected points, 0 if none
}

// Summarize reports count and mean redshift of the selected points of every
// sample.
func Summarize(set catalog.Set, sel Selection) [catalog.NumSamples]Summary {
	var out [catalog.NumSamples]Summary
	for i, sample := range set {
		out[i].Name = catalog.Labels[i]
		if sample == nil {
			continue
		}

		weights := make([]float64, sample.Len())
		for j, ok := range sel[i] {
			if ok {
				weights[j] = 1
			}
		}
		out[i].Count = sel.Count(i)
		if out[i].Count > 0 {
			out[i].MeanZ = stat.Mean(sample.Z, weights)
		}
	}
	return out
}
