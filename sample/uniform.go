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
	"golang.org/x/exp/rand"

	"github.com/fentec-project/gomc/internal"
)

// UniformRange samples random values from the interval [min, max).
type UniformRange struct {
	min float64
	max float64
	rnd *rand.Rand
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values and a
// seed determining the stream: two samplers constructed with the
// same bounds and seed produce identical sequences.
func NewUniformRange(min, max float64, seed uint64) (*UniformRange, error) {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return nil, errors.Wrap(internal.ErrBadConfig, "bounds must be finite")
	}
	if min >= max {
		return nil, errors.Wrap(internal.ErrBadConfig, "lower bound must be smaller than upper bound")
	}

	return &UniformRange{
		min: min,
		max: max,
		rnd: rand.New(rand.NewSource(seed)),
	}, nil
}

// Sample samples a random value from the interval [min, max).
func (u *UniformRange) Sample() (float64, error) {
	return u.min + (u.max-u.min)*u.rnd.Float64(), nil
}

// Uniform samples random values from the interval [0, 1).
type Uniform struct {
	UniformRange
}

// NewUniform returns an instance of the Uniform sampler
// producing values in [0, 1) from the stream determined by seed.
func NewUniform(seed uint64) *Uniform {
	return &Uniform{UniformRange{
		min: 0,
		max: 1,
		rnd: rand.New(rand.NewSource(seed)),
	}}
}

// NewUniformFromSource returns a Uniform sampler drawing its
// randomness from the provided source.
func NewUniformFromSource(src rand.Source) *Uniform {
	return &Uniform{UniformRange{
		min: 0,
		max: 1,
		rnd: rand.New(src),
	}}
}

// Intn samples a random integer from the interval [0, n).
// It is used for drawing resampling indices.
func (u *Uniform) Intn(n int) (int, error) {
	if n < 1 {
		return 0, errors.Wrap(internal.ErrBadConfig, "interval must be non-empty")
	}
	v, err := u.Sample()
	if err != nil {
		return 0, err
	}

	return int(v * float64(n)), nil
}
