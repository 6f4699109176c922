// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package torusdist

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// The distance functions integrate a pointwise combination of two
// densities over the hypertorus. They share one quadrature grid per
// refinement level, evaluated with one batched PDF call to each
// distribution.
//
// Each can fail with ErrDimensionMismatch if the dimensions of p and
// q disagree, ErrUnsupportedDimension above three dimensions, or
// ErrNoConverge.

// SquaredDistance returns the integrated squared difference
// ∫ (p-q)² between the densities of p and q.
func SquaredDistance(p, q Dist) (float64, error) {
	return integrateJoint(p, q, func(a, b float64) float64 {
		d := a - b
		return d * d
	})
}

// KLDivergence returns the Kullback-Leibler divergence ∫ p·log(p/q)
// of q from p.
//
// The divergence is asymmetric: KLDivergence(p, q) and
// KLDivergence(q, p) differ in general. It is non-negative for valid
// densities. Where p is positive and q is zero the integrand is
// infinite; such non-finite results propagate, they are not errors.
func KLDivergence(p, q Dist) (float64, error) {
	return integrateJoint(p, q, func(a, b float64) float64 {
		return a * math.Log(a/b)
	})
}

// HellingerDistance returns the squared Hellinger distance
// ½·∫ (√p-√q)² between p and q. It is symmetric and lies in [0, 1].
func HellingerDistance(p, q Dist) (float64, error) {
	return integrateJoint(p, q, func(a, b float64) float64 {
		d := math.Sqrt(a) - math.Sqrt(b)
		return d * d / 2
	})
}

// TotalVariation returns the total variation distance ½·∫ |p-q|
// between p and q. It is symmetric and lies in [0, 1].
func TotalVariation(p, q Dist) (float64, error) {
	return integrateJoint(p, q, func(a, b float64) float64 {
		return math.Abs(a-b) / 2
	})
}

// integrateJoint integrates combine(p(x), q(x)) over the hypertorus.
func integrateJoint(p, q Dist, combine func(fp, fq float64) float64) (float64, error) {
	if p.Dim() != q.Dim() {
		return 0, ErrDimensionMismatch
	}
	val, err := integrateTorus(p.Dim(), func(points *mat.Dense) []complex128 {
		fp := p.PDF(points)
		fq := q.PDF(points)
		out := make([]complex128, len(fp))
		for i := range fp {
			out[i] = complex(combine(fp[i], fq[i]), 0)
		}
		return out
	})
	if err != nil {
		return 0, err
	}
	return real(val), nil
}
