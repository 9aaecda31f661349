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
	"context"
	"math"

	"github.com/pkg/errors"

	"github.com/fentec-project/gomc/internal"
)

// Rejection samples a bounded-support density through an
// accept/reject scheme with a uniform envelope: propose
// x ~ U(a, b) and y ~ U(0, maxDensity), accept x when
// y < density(x), otherwise retry. The expected number of
// proposals per accepted sample is
// (b-a) * maxDensity / integral(density).
//
// maxDensity must dominate the density on [a, b]. This is the
// caller's responsibility and is not verified; an envelope below
// the density's supremum silently clips the distribution and
// biases the output.
type Rejection struct {
	density      Density
	a            float64
	b            float64
	maxDensity   float64
	maxProposals int
	uniform      *Uniform
}

// DefaultMaxProposals bounds the accept/reject loop for a single
// sample. A correct envelope on any practical density accepts
// far earlier; hitting the bound signals a degenerate envelope.
const DefaultMaxProposals = 1000000

// NewRejection returns an instance of the Rejection sampler for
// the given density on support [a, b] with envelope height
// maxDensity.
func NewRejection(density Density, a, b, maxDensity float64, uniform *Uniform) (*Rejection, error) {
	if density == nil || uniform == nil {
		return nil, errors.Wrap(internal.ErrBadConfig, "density and uniform stream must be given")
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) || a >= b {
		return nil, errors.Wrap(internal.ErrBadConfig, "support bounds must be finite and ordered")
	}
	if maxDensity <= 0 || math.IsNaN(maxDensity) || math.IsInf(maxDensity, 0) {
		return nil, errors.Wrap(internal.ErrBadConfig, "envelope height must be positive and finite")
	}

	return &Rejection{
		density:      density,
		a:            a,
		b:            b,
		maxDensity:   maxDensity,
		maxProposals: DefaultMaxProposals,
		uniform:      uniform,
	}, nil
}

// SetMaxProposals overrides the per-sample proposal budget.
func (s *Rejection) SetMaxProposals(n int) {
	s.maxProposals = n
}

// Sample draws proposals until one is accepted. If the proposal
// budget runs out first, it returns an error wrapping
// internal.ErrRejectionExhausted.
func (s *Rejection) Sample() (float64, error) {
	return s.sample(context.Background())
}

// SampleN draws n values, checking ctx between proposals so a
// sampler spinning on a degenerate envelope can be cancelled.
func (s *Rejection) SampleN(ctx context.Context, n int) ([]float64, error) {
	if n < 1 {
		return nil, errors.Wrap(internal.ErrBadConfig, "sample size must be positive")
	}

	vec := make([]float64, n)
	var err error
	for i := 0; i < n; i++ {
		vec[i], err = s.sample(ctx)
		if err != nil {
			return nil, err
		}
	}

	return vec, nil
}

func (s *Rejection) sample(ctx context.Context) (float64, error) {
	for i := 0; i < s.maxProposals; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		u, err := s.uniform.Sample()
		if err != nil {
			return 0, err
		}
		v, err := s.uniform.Sample()
		if err != nil {
			return 0, err
		}

		x := s.a + (s.b-s.a)*u
		y := s.maxDensity * v
		if y < s.density(x) {
			return x, nil
		}
	}

	return 0, errors.Wrapf(internal.ErrRejectionExhausted, "no acceptance in %d proposals", s.maxProposals)
}
