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

// Package data wraps sequences of numeric observations and
// derived summaries used throughout the library.
package data

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/fentec-project/gomc/internal"
	"github.com/fentec-project/gomc/sample"
)

// Vector wraps a slice of float64 observations.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	vec, err := sample.SampleN(sampler, len)
	if err != nil {
		return nil, err
	}

	return NewVector(vec), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Mean returns the arithmetic mean of the vector's elements.
func (v Vector) Mean() float64 {
	return stat.Mean(v, nil)
}

// Variance returns the sample variance of the vector's elements,
// with divisor len(v) - 1.
func (v Vector) Variance() float64 {
	return stat.Variance(v, nil)
}

// Sorted returns a new vector with the elements in ascending order.
func (v Vector) Sorted() Vector {
	res := v.Copy()
	sort.Float64s(res)

	return res
}

// EmpiricalCDF returns the fraction of elements smaller than
// or equal to x.
func (v Vector) EmpiricalCDF(x float64) float64 {
	count := 0
	for _, vi := range v {
		if vi <= x {
			count++
		}
	}

	return float64(count) / float64(len(v))
}

// Jackknife computes the leave-one-out values of the given
// statistic: element j of the result is the statistic evaluated
// on v with the j-th observation removed. It returns an error
// when the vector has fewer than two elements, since removing
// one would leave nothing to evaluate the statistic on.
func (v Vector) Jackknife(statistic func([]float64) float64) (Vector, error) {
	if len(v) < 2 {
		return nil, errors.Wrap(internal.ErrInsufficientData, "jackknife needs at least two observations")
	}

	res := make(Vector, len(v))
	loo := make([]float64, len(v)-1)
	for j := range v {
		copy(loo, v[:j])
		copy(loo[j:], v[j+1:])
		res[j] = statistic(loo)
	}

	return res, nil
}
