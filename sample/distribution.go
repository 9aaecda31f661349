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

// Quantiler describes a distribution through its inverse
// cumulative distribution function. The distributions in
// gonum.org/v1/gonum/stat/distuv satisfy this interface.
type Quantiler interface {
	Quantile(p float64) float64
}

// CDFer describes a distribution through its cumulative
// distribution function, for cases where no closed-form
// inverse is available. The distuv distributions satisfy
// this interface as well.
type CDFer interface {
	CDF(x float64) float64
}

// CMF is a cumulative mass function of a discrete distribution
// over the non-negative integers: CMF(k) = Pr(X <= k).
type CMF func(k int) float64

// DiscreteCMF adapts a continuous-signature CDF, such as the
// one of distuv.Binomial, to a cumulative mass function over
// the integers.
func DiscreteCMF(dist CDFer) CMF {
	return func(k int) float64 {
		return dist.CDF(float64(k))
	}
}

// Density is a probability density function on some bounded
// support, used by the rejection sampler.
type Density func(x float64) float64
