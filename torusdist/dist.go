// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package torusdist

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// A Dist is a probability distribution on the Dim-dimensional
// hypertorus [0, 2π)^Dim.
type Dist interface {
	// Dim returns the number of angular coordinates.
	Dim() int

	// PDF returns the probability density at each column of
	// points. points is a Dim×k matrix whose columns are points
	// on the hypertorus; the result has length k.
	//
	// PDF must be deterministic and side-effect free, and must
	// treat every real input as periodically equivalent to its
	// reduction modulo 2π, so that callers may evaluate it
	// outside [0, 2π) (Shift relies on this). The density is
	// assumed non-negative and normalized over the hypertorus;
	// neither is checked, and violations surface as numerically
	// wrong results rather than errors.
	PDF(points *mat.Dense) []float64
}

// A Momenter is a Dist with closed-form trigonometric moments.
// TrigMoment uses it instead of numerical integration when present.
type Momenter interface {
	Dist

	// TrigMoment returns the n-th trigonometric moment
	// E[e^{i·n·x_j}] for each coordinate j.
	TrigMoment(n int) []complex128
}

// A Sampler is a Dist with a specialized sample generator. Sample
// uses it instead of the generic Metropolis-Hastings chain when
// present.
type Sampler interface {
	Dist

	// Sample draws n points, returned as the columns of a Dim×n
	// matrix. src may be nil, in which case a global source is
	// used. n is at least 1.
	Sample(n int, src rand.Source) (*mat.Dense, error)
}

// A Shifter is a Dist that can produce an exact shifted instance of
// itself, typically by adjusting a location parameter. Shift uses it
// instead of wrapping the density when present.
type Shifter interface {
	Dist

	// Shift returns the distribution of x+delta with x
	// distributed as the receiver. len(delta) equals Dim.
	Shift(delta []float64) Dist
}

var (
	// ErrDimensionMismatch is returned when a sample batch, shift
	// vector or second distribution does not have the
	// distribution's dimension.
	ErrDimensionMismatch = errors.New("torusdist: dimension mismatch")

	// ErrUnsupportedDimension is returned by integration-backed
	// operations for distributions of more than three dimensions.
	ErrUnsupportedDimension = errors.New("torusdist: numerical integration supports only 1 to 3 dimensions")

	// ErrInvalidSampleCount is returned when fewer than one
	// sample is supplied or requested.
	ErrInvalidSampleCount = errors.New("torusdist: need at least one sample")

	// ErrZeroDensity is returned by Sample when the chain's
	// starting point has zero density, which leaves the
	// Metropolis-Hastings acceptance ratio undefined.
	ErrZeroDensity = errors.New("torusdist: zero density at sampler start point")

	// ErrNoConverge is returned when an iterative numerical
	// routine fails to converge within its iteration limit.
	ErrNoConverge = errors.New("torusdist: numerical routine failed to converge")
)

// wrap reduces an angle to [0, 2π).
func wrap(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// pdfAt evaluates d's density at the single point x.
func pdfAt(d Dist, x []float64) float64 {
	pts := mat.NewDense(len(x), 1, append([]float64(nil), x...))
	return d.PDF(pts)[0]
}
