// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package torusdist

import "gonum.org/v1/gonum/mat"

// Shift returns the distribution of x+delta where x is distributed
// as d. This can fail with ErrDimensionMismatch if len(delta) is not
// d's dimension.
//
// If d implements Shifter its exact shifted instance is returned.
// Otherwise the result wraps d, evaluating d's density at translated
// arguments; the translation is not reduced modulo 2π, which is
// correct because PDF implementations are required to be periodic in
// every coordinate.
func Shift(d Dist, delta []float64) (Dist, error) {
	if len(delta) != d.Dim() {
		return nil, ErrDimensionMismatch
	}
	if s, ok := d.(Shifter); ok {
		return s.Shift(delta), nil
	}
	return &shiftDist{d, append([]float64(nil), delta...)}, nil
}

// shiftDist is the density of orig translated by delta. It holds a
// reference to orig and recomputes orig.PDF(x-delta) on every call.
type shiftDist struct {
	orig  Dist
	delta []float64
}

func (s *shiftDist) Dim() int { return len(s.delta) }

func (s *shiftDist) PDF(points *mat.Dense) []float64 {
	r, c := points.Dims()
	shifted := mat.NewDense(r, c, nil)
	for j := 0; j < r; j++ {
		for i := 0; i < c; i++ {
			shifted.Set(j, i, points.At(j, i)-s.delta[j])
		}
	}
	return s.orig.PDF(shifted)
}
