// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// torusdist implements probability distributions on the hypertorus,
// the Cartesian product of circles [0, 2π) with each coordinate
// periodic.
//
// A distribution is anything that implements Dist: a dimension and a
// batched probability density function. Everything else — moments,
// circular mean, likelihood, Metropolis-Hastings sampling, shifting,
// and statistical distances — is derived from the density by the
// package-level functions, which concrete distributions may override
// through the Momenter, Sampler and Shifter interfaces.
package torusdist // import "github.com/aclements/go-torus/torusdist"
