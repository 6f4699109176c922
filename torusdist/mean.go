// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package torusdist

import "math"

// CircularMean returns the mean direction of each coordinate of d:
// the phase angle of the first trigonometric moment, reduced to
// [0, 2π).
//
// If a coordinate's first moment vanishes (a uniform marginal, for
// example) the mean direction is undefined; by the atan2(0, 0)
// convention this returns 0 for that coordinate, which is a defined
// if arbitrary result, not an error.
func CircularMean(d Dist) ([]float64, error) {
	m, err := TrigMoment(d, 1)
	if err != nil {
		return nil, err
	}
	mean := make([]float64, len(m))
	for j, mj := range m {
		mean[j] = wrap(math.Atan2(imag(mj), real(mj)))
	}
	return mean, nil
}

// MeanDirection2D returns the first trigonometric moment of d as a
// real vector of length 2·dim with the real and imaginary parts
// interleaved: [Re m₁, Im m₁, Re m₂, Im m₂, …]. This is the
// embedding of the mean direction in the plane of each circle.
func MeanDirection2D(d Dist) ([]float64, error) {
	m, err := TrigMoment(d, 1)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 2*len(m))
	for j, mj := range m {
		out[2*j] = real(mj)
		out[2*j+1] = imag(mj)
	}
	return out, nil
}
