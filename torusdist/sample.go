// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package torusdist

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SampleBurnIn is the number of accepted Metropolis-Hastings draws
// discarded before any draw is retained, giving the chain time to
// reach its stationary distribution.
var SampleBurnIn = 10

// SampleThinning retains every SampleThinning-th accepted draw after
// burn-in, reducing autocorrelation between retained draws.
var SampleThinning = 5

// sampleMaxProposals bounds the number of proposals per retained
// draw. A chain stuck in a region where almost nothing is accepted
// fails with ErrNoConverge instead of looping forever.
const sampleMaxProposals = 10000

// Sample draws n points from d, returned as the columns of a dim×n
// matrix with every entry in [0, 2π). src seeds the randomness; it
// may be nil, in which case a global source is used.
//
// If d implements Sampler its specialized generator is used.
// Otherwise samples come from a random-walk Metropolis-Hastings
// chain: the chain starts at d's circular mean, proposes the current
// point plus an isotropic standard normal step wrapped onto the
// torus, and accepts with the usual density-ratio rule. The first
// SampleBurnIn accepted draws are discarded and every
// SampleThinning-th accepted draw is retained thereafter.
//
// This can fail with ErrInvalidSampleCount if n < 1, ErrZeroDensity
// if the density vanishes at the chain's starting point, any error
// of CircularMean, or ErrNoConverge if the chain's acceptance rate
// collapses.
func Sample(d Dist, n int, src rand.Source) (*mat.Dense, error) {
	if n < 1 {
		return nil, ErrInvalidSampleCount
	}
	if s, ok := d.(Sampler); ok {
		return s.Sample(n, src)
	}

	dim := d.Dim()
	cur, err := CircularMean(d)
	if err != nil {
		return nil, err
	}
	curDens := pdfAt(d, cur)
	if curDens == 0 {
		return nil, ErrZeroDensity
	}

	step := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	accept := distuv.Uniform{Min: 0, Max: 1, Src: src}

	// A proposal with zero density is never accepted (its ratio
	// is 0), so curDens stays positive for the whole chain.
	out := mat.NewDense(dim, n, nil)
	prop := make([]float64, dim)
	need := SampleBurnIn + n*SampleThinning
	accepted := 0
	for tries := 0; accepted < need; tries++ {
		if tries > need*sampleMaxProposals {
			return nil, ErrNoConverge
		}
		for j := range prop {
			prop[j] = wrap(cur[j] + step.Rand())
		}
		propDens := pdfAt(d, prop)
		ratio := propDens / curDens
		if ratio <= 1 && ratio <= accept.Rand() {
			continue
		}
		copy(cur, prop)
		curDens = propDens
		accepted++
		if accepted > SampleBurnIn && (accepted-SampleBurnIn)%SampleThinning == 0 {
			col := (accepted-SampleBurnIn)/SampleThinning - 1
			for j, v := range cur {
				out.Set(j, col, v)
			}
		}
	}
	return out, nil
}
