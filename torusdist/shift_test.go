// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package torusdist

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestShift(t *testing.T) {
	d := cardioid{mu: []float64{1, 4}, rho: []float64{0.3, 0.45}}
	delta := []float64{2, 5}
	s, err := Shift(d, delta)
	if err != nil {
		t.Fatal(err)
	}
	if s.Dim() != d.Dim() {
		t.Fatalf("want dim %d, got %d", d.Dim(), s.Dim())
	}

	// The shifted density is the cardioid with translated modes.
	want := cardioid{mu: []float64{3, 9}, rho: d.rho}
	points := mat.NewDense(2, 3, []float64{
		0.5, 3.1, 6.0,
		1.0, 2.2, 0.1,
	})
	got := s.PDF(points)
	expect := want.PDF(points)
	for i := range got {
		if !aeq(expect[i], got[i]) {
			t.Errorf("point %d: want density %v, got %v", i, expect[i], got[i])
		}
	}
}

func TestShiftDoesNotMutate(t *testing.T) {
	d := cardioid{mu: []float64{1}, rho: []float64{0.3}}
	delta := []float64{2}
	s, err := Shift(d, delta)
	if err != nil {
		t.Fatal(err)
	}
	delta[0] = 100 // the wrapper must have copied the shift

	points := mat.NewDense(1, 1, []float64{3})
	if got, want := s.PDF(points)[0], pdfAt(d, []float64{1}); !aeq(want, got) {
		t.Errorf("want density %v, got %v", want, got)
	}
	if d.mu[0] != 1 {
		t.Errorf("shift mutated the original distribution")
	}
}

func TestShiftShifterOverride(t *testing.T) {
	s, err := Shift(Uniform{D: 2}, []float64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(Uniform); !ok {
		t.Errorf("want the uniform distribution's exact shift, got %T", s)
	}
}

func TestShiftDimensionMismatch(t *testing.T) {
	d := cardioid{mu: []float64{1}, rho: []float64{0.3}}
	if _, err := Shift(d, []float64{1, 2}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("want ErrDimensionMismatch, got %v", err)
	}
}
