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
	"github.com/pkg/errors"

	"github.com/fentec-project/gomc/internal"
)

// Sampler is an interface for samplers of probability
// distributions. A Sampler is stateful: successive calls to
// Sample advance its underlying random stream.
type Sampler interface {
	Sample() (float64, error)
}

// SampleN draws n values from the given sampler and returns
// them in the order they were produced.
func SampleN(s Sampler, n int) ([]float64, error) {
	if n < 1 {
		return nil, errors.Wrap(internal.ErrBadConfig, "sample size must be positive")
	}

	vec := make([]float64, n)
	var err error
	for i := 0; i < n; i++ {
		vec[i], err = s.Sample()
		if err != nil {
			return nil, err
		}
	}

	return vec, nil
}
