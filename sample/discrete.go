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
	"sort"

	"github.com/pkg/errors"

	"github.com/fentec-project/gomc/internal"
)

// DiscreteInverse samples a discrete distribution over the
// non-negative integers given its cumulative mass function.
// For each uniform draw u it scans upward from 0 until
// F(k) >= u and returns the stopping k. The scan is bounded by
// maxSupport so that a malformed or truncated CMF cannot loop
// indefinitely.
type DiscreteInverse struct {
	cmf        CMF
	maxSupport int
	uniform    *Uniform
}

// NewDiscreteInverse returns an instance of the DiscreteInverse
// sampler. maxSupport is the largest value the scan may reach.
func NewDiscreteInverse(cmf CMF, maxSupport int, uniform *Uniform) (*DiscreteInverse, error) {
	if cmf == nil || uniform == nil {
		return nil, errors.Wrap(internal.ErrBadConfig, "cumulative mass function and uniform stream must be given")
	}
	if maxSupport < 0 {
		return nil, errors.Wrap(internal.ErrBadConfig, "support bound must be non-negative")
	}

	return &DiscreteInverse{
		cmf:        cmf,
		maxSupport: maxSupport,
		uniform:    uniform,
	}, nil
}

// Sample scans the cumulative mass function for the drawn
// quantile. If the CMF does not reach the target within the
// support bound, it returns an error wrapping
// internal.ErrNoConvergence.
func (s *DiscreteInverse) Sample() (float64, error) {
	u, err := s.uniform.Sample()
	if err != nil {
		return 0, err
	}

	for k := 0; k <= s.maxSupport; k++ {
		if s.cmf(k) >= u {
			return float64(k), nil
		}
	}

	return 0, errors.Wrap(internal.ErrNoConvergence, "cumulative mass function never reached the target quantile")
}

// DiscreteTable samples the same distributions as DiscreteInverse,
// but evaluates the cumulative mass function only once, at
// construction. Each draw is then a binary search over the
// precomputed table, which pays off for large supports.
type DiscreteTable struct {
	table   []float64
	uniform *Uniform
}

// NewDiscreteTable returns an instance of the DiscreteTable
// sampler with the CMF precomputed on [0, maxSupport].
func NewDiscreteTable(cmf CMF, maxSupport int, uniform *Uniform) (*DiscreteTable, error) {
	if cmf == nil || uniform == nil {
		return nil, errors.Wrap(internal.ErrBadConfig, "cumulative mass function and uniform stream must be given")
	}
	if maxSupport < 0 {
		return nil, errors.Wrap(internal.ErrBadConfig, "support bound must be non-negative")
	}

	table := make([]float64, maxSupport+1)
	prev := 0.0
	for k := 0; k <= maxSupport; k++ {
		table[k] = cmf(k)
		if table[k] < prev {
			return nil, errors.Wrap(internal.ErrBadConfig, "cumulative mass function is decreasing")
		}
		prev = table[k]
	}

	return &DiscreteTable{
		table:   table,
		uniform: uniform,
	}, nil
}

// Sample draws a quantile and binary-searches the precomputed
// table for the smallest k with F(k) >= u.
func (s *DiscreteTable) Sample() (float64, error) {
	u, err := s.uniform.Sample()
	if err != nil {
		return 0, err
	}

	k := sort.SearchFloat64s(s.table, u)
	if k == len(s.table) {
		return 0, errors.Wrap(internal.ErrNoConvergence, "cumulative mass function never reached the target quantile")
	}

	return float64(k), nil
}
