// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package torusdist

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// TrigMoment returns the n-th trigonometric moment of d: the complex
// vector whose j-th entry is E[e^{i·n·x_j}], the expectation of the
// n-th phase power of coordinate j.
//
// If d implements Momenter its closed form is used. Otherwise the
// moment is computed by numerical integration of pdf(x)·e^{i·n·x_j}
// over the hypertorus, one dim-dimensional integral per coordinate,
// which supports only one to three dimensions and can fail with
// ErrUnsupportedDimension or ErrNoConverge.
//
// For a normalized density TrigMoment(d, 0) is a vector of ones up
// to integration error.
func TrigMoment(d Dist, n int) ([]complex128, error) {
	if m, ok := d.(Momenter); ok {
		return m.TrigMoment(n), nil
	}

	dim := d.Dim()
	moment := make([]complex128, dim)
	for j := 0; j < dim; j++ {
		j := j
		val, err := integrateTorus(dim, func(points *mat.Dense) []complex128 {
			dens := d.PDF(points)
			out := make([]complex128, len(dens))
			for i, p := range dens {
				a := float64(n) * points.At(j, i)
				out[i] = complex(p*math.Cos(a), p*math.Sin(a))
			}
			return out
		})
		if err != nil {
			return nil, err
		}
		moment[j] = val
	}
	return moment, nil
}

// EmpiricalMoment returns the n-th trigonometric moment of a sample:
// the per-coordinate average of e^{i·n·x} over the columns of the
// dim×k matrix samples.
func EmpiricalMoment(samples *mat.Dense, n int) []complex128 {
	dim, k := samples.Dims()
	moment := make([]complex128, dim)
	for j := 0; j < dim; j++ {
		var sum complex128
		for i := 0; i < k; i++ {
			a := float64(n) * samples.At(j, i)
			sum += complex(math.Cos(a), math.Sin(a))
		}
		moment[j] = sum / complex(float64(k), 0)
	}
	return moment
}
