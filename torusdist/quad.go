// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package torusdist

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

// QuadTolerance is the convergence tolerance for the numerical
// integration behind TrigMoment, CircularMean and the distance
// functions. The estimate is accepted once two successive refinement
// levels agree to within this tolerance (relative for estimates of
// magnitude above one, absolute below).
var QuadTolerance = 1e-6

// quadStartNodes is the Gauss-Legendre node count per axis at the
// first refinement level. The count doubles each level up to
// quadMaxNodes for the integral's dimension; the per-dimension caps
// keep the tensor-product grid size bounded.
const quadStartNodes = 16

var quadMaxNodes = [4]int{0, 8192, 512, 96}

// An integrand is evaluated in batch: points is a dim×k quadrature
// grid and the result holds the integrand's value at each column.
type integrand func(points *mat.Dense) []complex128

// integrateTorus computes the integral of f over [0, 2π)^dim by
// tensor-product Gauss-Legendre quadrature, doubling the per-axis
// node count until two successive estimates agree to within
// QuadTolerance. Each refinement level evaluates f exactly once, on
// the full grid, so a Dist-backed integrand costs one batched PDF
// call per level and per distribution.
//
// Only dim 1 through 3 are supported.
func integrateTorus(dim int, f integrand) (complex128, error) {
	if dim < 1 || dim > 3 {
		return 0, ErrUnsupportedDimension
	}

	var prev complex128
	for nodes := quadStartNodes; nodes <= quadMaxNodes[dim]; nodes *= 2 {
		est := quadLevel(dim, nodes, f)
		if nodes > quadStartNodes && preciseEnough(est, prev) {
			return est, nil
		}
		prev = est
	}
	return 0, ErrNoConverge
}

// quadLevel computes one fixed-order estimate of the integral with
// the given per-axis node count.
func quadLevel(dim, nodes int, f integrand) complex128 {
	x := make([]float64, nodes)
	w := make([]float64, nodes)
	quad.Legendre{}.FixedLocations(x, w, 0, 2*math.Pi)

	// Column i of the grid is the point whose j-th coordinate is
	// x[digit j of i in base nodes]; its weight is the product of
	// the per-axis weights of those digits.
	k := 1
	for j := 0; j < dim; j++ {
		k *= nodes
	}
	points := mat.NewDense(dim, k, nil)
	weights := make([]float64, k)
	for i := 0; i < k; i++ {
		wi, rest := 1.0, i
		for j := 0; j < dim; j++ {
			digit := rest % nodes
			rest /= nodes
			points.Set(j, i, x[digit])
			wi *= w[digit]
		}
		weights[i] = wi
	}

	vals := f(points)
	var sum complex128
	for i, v := range vals {
		sum += complex(weights[i], 0) * v
	}
	return sum
}

// preciseEnough reports whether two successive integral estimates
// agree to within QuadTolerance, relative for large estimates and
// absolute for small ones.
func preciseEnough(est, prev complex128) bool {
	scale := cmplx.Abs(est)
	if scale < 1 {
		scale = 1
	}
	return cmplx.Abs(est-prev) < QuadTolerance*scale
}
