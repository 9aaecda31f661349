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

package sample_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fentec-project/gomc/internal"
	"github.com/fentec-project/gomc/sample"
)

func TestUniform_Reproducible(t *testing.T) {
	first, err := sample.SampleN(sample.NewUniform(42), 1000)
	assert.NoError(t, err)
	second, err := sample.SampleN(sample.NewUniform(42), 1000)
	assert.NoError(t, err)

	assert.Equal(t, first, second, "same seed should give the same stream")

	other, err := sample.SampleN(sample.NewUniform(43), 1000)
	assert.NoError(t, err)
	assert.NotEqual(t, first, other, "different seeds should give different streams")
}

func TestUniform_Range(t *testing.T) {
	vec, err := sample.SampleN(sample.NewUniform(1), 100000)
	assert.NoError(t, err)

	for _, v := range vec {
		if v < 0 || v >= 1 {
			t.Fatalf("sample %v outside [0, 1)", v)
		}
	}
}

func TestUniformRange(t *testing.T) {
	u, err := sample.NewUniformRange(-2, 3, 7)
	assert.NoError(t, err)

	vec, err := sample.SampleN(u, 100000)
	assert.NoError(t, err)

	sum := 0.0
	for _, v := range vec {
		if v < -2 || v >= 3 {
			t.Fatalf("sample %v outside [-2, 3)", v)
		}
		sum += v
	}
	me := sum / float64(len(vec))
	assert.True(t, me > 0.4, "mean value of the uniform distribution is too small")
	assert.True(t, me < 0.6, "mean value of the uniform distribution is too big")
}

func TestUniformRange_BadConfig(t *testing.T) {
	var tests = []struct {
		name string
		min  float64
		max  float64
	}{
		{name: "inverted bounds", min: 1, max: 0},
		{name: "equal bounds", min: 2, max: 2},
		{name: "nan bound", min: math.NaN(), max: 1},
		{name: "infinite bound", min: 0, max: math.Inf(1)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := sample.NewUniformRange(test.min, test.max, 0)
			assert.ErrorIs(t, err, internal.ErrBadConfig)
		})
	}
}

func TestUniform_Intn(t *testing.T) {
	u := sample.NewUniform(5)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v, err := u.Intn(10)
		assert.NoError(t, err)
		assert.True(t, v >= 0 && v < 10)
		seen[v] = true
	}
	assert.Len(t, seen, 10, "all indices should be reachable")

	_, err := u.Intn(0)
	assert.ErrorIs(t, err, internal.ErrBadConfig)
}

func TestSampleN_BadSize(t *testing.T) {
	_, err := sample.SampleN(sample.NewUniform(0), 0)
	assert.ErrorIs(t, err, internal.ErrBadConfig)
}
