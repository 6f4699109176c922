// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package torusdist

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func constOne(points *mat.Dense) []complex128 {
	_, k := points.Dims()
	out := make([]complex128, k)
	for i := range out {
		out[i] = 1
	}
	return out
}

func TestIntegrateTorusVolume(t *testing.T) {
	for dim := 1; dim <= 3; dim++ {
		got, err := integrateTorus(dim, constOne)
		if err != nil {
			t.Fatalf("dim %d: %v", dim, err)
		}
		want := math.Pow(2*math.Pi, float64(dim))
		if !ceq(complex(want, 0), got, 1e-6*want) {
			t.Errorf("dim %d: want volume %v, got %v", dim, want, got)
		}
	}
}

func TestIntegrateTorusCosSquared(t *testing.T) {
	got, err := integrateTorus(1, func(points *mat.Dense) []complex128 {
		_, k := points.Dims()
		out := make([]complex128, k)
		for i := 0; i < k; i++ {
			c := math.Cos(points.At(0, i))
			out[i] = complex(c*c, 0)
		}
		return out
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ceq(complex(math.Pi, 0), got, 1e-6) {
		t.Errorf("want π, got %v", got)
	}
}

func TestIntegrateTorusUnsupportedDimension(t *testing.T) {
	for _, dim := range []int{0, 4, 10} {
		if _, err := integrateTorus(dim, constOne); !errors.Is(err, ErrUnsupportedDimension) {
			t.Errorf("dim %d: want ErrUnsupportedDimension, got %v", dim, err)
		}
	}
}
