// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package torusdist

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LogLikelihood returns the log-likelihood of d over the columns of
// the dim×n matrix samples, the sum of log pdf over all columns,
// evaluated with a single batched PDF call.
//
// This can fail with ErrInvalidSampleCount if samples is nil or has
// no columns, or ErrDimensionMismatch if its row count is not d's
// dimension. A zero density at any sample yields -Inf (or NaN for a
// negative density); such results propagate, they are not errors.
func LogLikelihood(d Dist, samples *mat.Dense) (float64, error) {
	if samples == nil {
		return 0, ErrInvalidSampleCount
	}
	r, c := samples.Dims()
	if c < 1 {
		return 0, ErrInvalidSampleCount
	}
	if r != d.Dim() {
		return 0, ErrDimensionMismatch
	}

	logs := d.PDF(samples)
	for i, p := range logs {
		logs[i] = math.Log(p)
	}
	return floats.Sum(logs), nil
}
