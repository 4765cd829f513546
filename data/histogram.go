/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"io"
	"math"
	"os"
	"strings"

	"github.com/fentec-project/randutil/internal"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// BinEpsilon is added to the largest value so that it falls into the
// last bin instead of one past it. It assumes the data is of a scale
// comparable to 1; for large magnitudes the addition may be lost in
// rounding, in which case the largest values are clamped into the
// last bin.
const BinEpsilon = 1e-6

// Marker is the character printed once per counted element.
const Marker = "*"

// Histogram holds per-bin counts of equally wide bins covering
// [Start, End).
type Histogram struct {
	Start    float64
	End      float64
	Interval float64
	Counts   []int
}

// NewHistogram computes a histogram of s with bins equally wide bins
// spanning from the smallest element to the largest element plus
// BinEpsilon.
//
// It returns an error wrapping internal.ErrInvalidArgument if bins is
// not positive or s holds a NaN or infinite value, and one wrapping
// internal.ErrEmptyInput if s is empty.
func NewHistogram[T Number](s []T, bins int) (*Histogram, error) {
	if bins <= 0 {
		return nil, errors.Wrapf(internal.ErrInvalidArgument, "number of bins (%d) must be positive", bins)
	}
	if len(s) == 0 {
		return nil, errors.Wrap(internal.ErrEmptyInput, "cannot compute histogram")
	}

	sorted := make([]float64, len(s))
	for i, x := range s {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.Wrapf(internal.ErrInvalidArgument, "element %d (%v) is not finite", i, f)
		}
		sorted[i] = f
	}
	slices.Sort(sorted)

	start := sorted[0]
	end := sorted[len(sorted)-1] + BinEpsilon
	// each bound is divided first so that the width of a bin stays finite
	// when end-start exceeds math.MaxFloat64
	interval := end/float64(bins) - start/float64(bins)

	counts := make([]int, bins)
	for _, x := range sorted {
		// interval is 0 only if BinEpsilon was absorbed and all values are equal
		if interval == 0 {
			counts[0]++
			continue
		}
		pos := math.Floor(x/interval - start/interval)
		switch {
		case math.IsNaN(pos) || pos >= float64(bins):
			pos = float64(bins - 1)
		case pos < 0:
			pos = 0
		}
		counts[int(pos)]++
	}

	return &Histogram{
		Start:    start,
		End:      end,
		Interval: interval,
		Counts:   counts,
	}, nil
}

// Render writes one line per bin to w, in ascending bin order. Each line
// holds as many markers as there are elements in the bin.
func (h *Histogram) Render(w io.Writer) error {
	var sb strings.Builder
	for _, c := range h.Counts {
		sb.WriteString(strings.Repeat(Marker, c))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "cannot write histogram")
}

// Hist prints a histogram of s with bins bins to the standard output.
func Hist[T Number](s []T, bins int) error {
	h, err := NewHistogram(s, bins)
	if err != nil {
		return err
	}

	return h.Render(os.Stdout)
}
