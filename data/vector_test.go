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

package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/fentec-project/gomc/data"
	"github.com/fentec-project/gomc/internal"
	"github.com/fentec-project/gomc/sample"
)

func TestVector_New(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3, 4})
	assert.Equal(t, 2.5, v.Mean())
	assert.InDelta(t, 5.0/3.0, v.Variance(), 1e-12)

	c := data.NewConstantVector(5, 3)
	assert.Equal(t, 3.0, c.Mean())
	assert.Equal(t, 0.0, c.Variance())
}

func TestVector_Random(t *testing.T) {
	v, err := data.NewRandomVector(10000, sample.NewUniform(3))
	assert.NoError(t, err)
	assert.Len(t, v, 10000)

	me := v.Mean()
	assert.True(t, me > 0.48, "mean value of the uniform vector is too small")
	assert.True(t, me < 0.52, "mean value of the uniform vector is too big")
}

func TestVector_CopyAndApply(t *testing.T) {
	v := data.NewVector([]float64{3, 1, 2})
	w := v.Copy()
	w[0] = 99
	assert.Equal(t, 3.0, v[0], "copy should not share storage")

	doubled := v.Apply(func(x float64) float64 { return 2 * x })
	assert.Equal(t, data.Vector{6, 2, 4}, doubled)

	assert.Equal(t, data.Vector{1, 2, 3}, v.Sorted())
	assert.Equal(t, data.Vector{3, 1, 2}, v, "sorting should not mutate the receiver")
}

func TestVector_EmpiricalCDF(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3, 4})
	assert.Equal(t, 0.0, v.EmpiricalCDF(0.5))
	assert.Equal(t, 0.5, v.EmpiricalCDF(2))
	assert.Equal(t, 1.0, v.EmpiricalCDF(4))
}

func TestVector_Jackknife(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3, 4})
	jack, err := v.Jackknife(func(xs []float64) float64 { return stat.Mean(xs, nil) })
	assert.NoError(t, err)

	// Leaving out observation j, the mean of the remaining three.
	assert.InDeltaSlice(t, []float64{3, 8.0 / 3.0, 7.0 / 3.0, 2}, jack, 1e-12)

	_, err = data.NewVector([]float64{1}).Jackknife(func(xs []float64) float64 { return 0 })
	assert.ErrorIs(t, err, internal.ErrInsufficientData)
}
