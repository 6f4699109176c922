// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package torusdist

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) < tol
}

func ceq(expect, got complex128, tol float64) bool {
	return cmplx.Abs(expect-got) < tol
}

// cardioid is a product of independent cardioid densities
// (1+2ρ·cos(x-μ))/(2π), one per coordinate. Its moments have closed
// forms (the n-th marginal moment is 1 for n=0, ρ·e^{i·n·μ} for
// n=±1 and 0 otherwise), which makes it a convenient exact
// reference, but it implements only Dist so that tests exercise the
// numerical paths.
type cardioid struct {
	mu, rho []float64
}

func (c cardioid) Dim() int { return len(c.mu) }

func (c cardioid) PDF(points *mat.Dense) []float64 {
	_, k := points.Dims()
	dens := make([]float64, k)
	for i := 0; i < k; i++ {
		f := 1.0
		for j := range c.mu {
			f *= (1 + 2*c.rho[j]*math.Cos(points.At(j, i)-c.mu[j])) / (2 * math.Pi)
		}
		dens[i] = f
	}
	return dens
}

// flat is the uniform density on the d-dimensional hypertorus with
// no closed-form overrides, so every derived quantity takes the
// generic numerical path.
type flat struct{ d int }

func (f flat) Dim() int { return f.d }

func (f flat) PDF(points *mat.Dense) []float64 {
	_, k := points.Dims()
	c := math.Pow(2*math.Pi, -float64(f.d))
	dens := make([]float64, k)
	for i := range dens {
		dens[i] = c
	}
	return dens
}
