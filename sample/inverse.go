/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"math"

	"github.com/pkg/errors"

	"github.com/fentec-project/gomc/internal"
)

// InverseCDF samples an arbitrary distribution by applying its
// inverse cumulative distribution function to uniform draws:
// X = Q(U) for U uniform on [0, 1). Each sample costs one
// uniform draw and one quantile evaluation.
type InverseCDF struct {
	dist    Quantiler
	uniform *Uniform
}

// NewInverseCDF returns an instance of the InverseCDF sampler
// for a distribution with a closed-form inverse CDF. It consumes
// the provided uniform stream.
func NewInverseCDF(dist Quantiler, uniform *Uniform) (*InverseCDF, error) {
	if dist == nil || uniform == nil {
		return nil, errors.Wrap(internal.ErrBadConfig, "distribution and uniform stream must be given")
	}

	return &InverseCDF{
		dist:    dist,
		uniform: uniform,
	}, nil
}

// Sample samples a single value via the inverse transform.
func (s *InverseCDF) Sample() (float64, error) {
	u, err := s.uniform.Sample()
	if err != nil {
		return 0, err
	}

	return s.dist.Quantile(u), nil
}

// BisectInverseCDF samples a continuous distribution given only
// its CDF, inverting it numerically. For each uniform draw u it
// bisects the bracket [lo, hi] until |F(x) - u| < tol, so the
// bracket must contain essentially all of the distribution's mass.
type BisectInverseCDF struct {
	dist    CDFer
	lo      float64
	hi      float64
	tol     float64
	maxIter int
	uniform *Uniform
}

// Defaults for the numeric inversion. With a tolerance of 1e-9
// the bisection converges in well under 200 steps for any
// reasonably sized bracket.
const (
	DefaultInversionTolerance = 1e-9
	DefaultInversionMaxIter   = 200
)

// NewBisectInverseCDF returns an instance of the BisectInverseCDF
// sampler inverting dist.CDF on the bracket [lo, hi].
func NewBisectInverseCDF(dist CDFer, lo, hi float64, uniform *Uniform) (*BisectInverseCDF, error) {
	if dist == nil || uniform == nil {
		return nil, errors.Wrap(internal.ErrBadConfig, "distribution and uniform stream must be given")
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo >= hi {
		return nil, errors.Wrap(internal.ErrBadConfig, "bracket bounds must be finite and ordered")
	}

	return &BisectInverseCDF{
		dist:    dist,
		lo:      lo,
		hi:      hi,
		tol:     DefaultInversionTolerance,
		maxIter: DefaultInversionMaxIter,
		uniform: uniform,
	}, nil
}

// SetTolerance overrides the default inversion tolerance.
func (s *BisectInverseCDF) SetTolerance(tol float64) {
	s.tol = tol
}

// Sample draws u uniformly and bisects on x until |F(x) - u|
// falls below the tolerance. If the target is not reached within
// the iteration budget, or u lies outside the CDF's range on the
// bracket, it returns an error wrapping internal.ErrNoConvergence.
func (s *BisectInverseCDF) Sample() (float64, error) {
	u, err := s.uniform.Sample()
	if err != nil {
		return 0, err
	}
	if s.dist.CDF(s.lo) > u || s.dist.CDF(s.hi) < u {
		return 0, errors.Wrap(internal.ErrNoConvergence, "target quantile lies outside the bracket")
	}

	lo, hi := s.lo, s.hi
	for i := 0; i < s.maxIter; i++ {
		mid := (lo + hi) / 2
		f := s.dist.CDF(mid)
		if math.Abs(f-u) < s.tol {
			return mid, nil
		}
		if f < u {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 0, errors.Wrap(internal.ErrNoConvergence, "bisection iteration budget exhausted")
}
