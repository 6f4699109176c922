// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package torusdist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is the uniform distribution on the D-dimensional
// hypertorus, with constant density (2π)^-D. It implements Momenter,
// Sampler and Shifter, so every derived quantity uses a closed form
// instead of the numerical fallback.
type Uniform struct {
	D int
}

func (u Uniform) Dim() int { return u.D }

func (u Uniform) PDF(points *mat.Dense) []float64 {
	_, k := points.Dims()
	c := math.Pow(2*math.Pi, -float64(u.D))
	dens := make([]float64, k)
	for i := range dens {
		dens[i] = c
	}
	return dens
}

// TrigMoment returns the n-th trigonometric moment: a vector of ones
// for n=0 and of zeros otherwise, since every phase averages out
// under a uniform density.
func (u Uniform) TrigMoment(n int) []complex128 {
	m := make([]complex128, u.D)
	if n == 0 {
		for j := range m {
			m[j] = 1
		}
	}
	return m
}

// Sample draws n points with every coordinate independently uniform
// on [0, 2π).
func (u Uniform) Sample(n int, src rand.Source) (*mat.Dense, error) {
	angle := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}
	out := mat.NewDense(u.D, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < u.D; j++ {
			out.Set(j, i, angle.Rand())
		}
	}
	return out, nil
}

// Shift returns the receiver: the uniform distribution is invariant
// under rotation of the torus.
func (u Uniform) Shift(delta []float64) Dist { return u }
