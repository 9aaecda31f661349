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
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fentec-project/gomc/internal"
	"github.com/fentec-project/gomc/sample"
)

func TestDiscreteInverse_Binomial(t *testing.T) {
	binom := distuv.Binomial{N: 10, P: 0.25}
	s, err := sample.NewDiscreteInverse(sample.DiscreteCMF(binom), 10, sample.NewUniform(23))
	assert.NoError(t, err)

	draws := 100000
	vec, err := sample.SampleN(s, draws)
	assert.NoError(t, err)

	observed := make([]float64, 11)
	for _, v := range vec {
		k := int(v)
		if k < 0 || k > 10 {
			t.Fatalf("sample %v outside the binomial support", v)
		}
		observed[k]++
	}

	// Chi-square goodness of fit against the binomial pmf.
	chiSq := 0.0
	for k := 0; k <= 10; k++ {
		expected := float64(draws) * binom.Prob(float64(k))
		d := observed[k] - expected
		chiSq += d * d / expected
	}
	p := distuv.ChiSquared{K: 10}.Survival(chiSq)
	assert.True(t, p > 0.01, "chi-square goodness of fit rejected, p = %v", p)
}

func TestDiscreteTable_AgreesWithScan(t *testing.T) {
	binom := distuv.Binomial{N: 10, P: 0.25}
	scan, err := sample.NewDiscreteInverse(sample.DiscreteCMF(binom), 10, sample.NewUniform(29))
	assert.NoError(t, err)
	table, err := sample.NewDiscreteTable(sample.DiscreteCMF(binom), 10, sample.NewUniform(29))
	assert.NoError(t, err)

	// Same stream, same observable behavior.
	for i := 0; i < 10000; i++ {
		x, err := scan.Sample()
		assert.NoError(t, err)
		y, err := table.Sample()
		assert.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestDiscreteInverse_TruncatedCMF(t *testing.T) {
	// A malformed cumulative mass function that never reaches 1
	// must fail instead of scanning forever.
	truncated := func(k int) float64 {
		return 0.2
	}
	s, err := sample.NewDiscreteInverse(truncated, 100, sample.NewUniform(31))
	assert.NoError(t, err)

	sawFailure := false
	for i := 0; i < 100; i++ {
		if _, err := s.Sample(); err != nil {
			assert.ErrorIs(t, err, internal.ErrNoConvergence)
			sawFailure = true
			break
		}
	}
	assert.True(t, sawFailure, "a quantile above the truncated CMF should fail")
}

func TestDiscreteTable_BadConfig(t *testing.T) {
	decreasing := func(k int) float64 {
		return 1 / float64(k+1)
	}
	_, err := sample.NewDiscreteTable(decreasing, 10, sample.NewUniform(0))
	assert.ErrorIs(t, err, internal.ErrBadConfig)

	_, err = sample.NewDiscreteInverse(nil, 10, sample.NewUniform(0))
	assert.ErrorIs(t, err, internal.ErrBadConfig)

	_, err = sample.NewDiscreteInverse(decreasing, -1, sample.NewUniform(0))
	assert.ErrorIs(t, err, internal.ErrBadConfig)
}
