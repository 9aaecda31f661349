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

package bootstrap

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fentec-project/gomc/internal"
)

// IntervalEstimate is a confidence interval over the bootstrap
// replicates. It is a value and is never mutated after
// construction.
type IntervalEstimate struct {
	Lower float64
	Upper float64
	// Level is the nominal confidence level, e.g. 0.95.
	Level float64
}

// PercentileInterval returns the plain percentile bootstrap
// interval with nominal coverage 1 - alpha: the replicates at
// ranks ceil((R+1) * alpha/2) and ceil((R+1) * (1 - alpha/2)) of
// the ascending order, 1-indexed and clamped to [1, R].
func (e *Engine) PercentileInterval(alpha float64) (IntervalEstimate, error) {
	if alpha <= 0 || alpha >= 1 {
		return IntervalEstimate{}, errors.Wrap(internal.ErrBadConfig, "alpha must lie in (0, 1)")
	}

	sorted, err := e.sortedReplicates()
	if err != nil {
		return IntervalEstimate{}, err
	}

	r := len(sorted)
	loRank := clampRank(int(math.Ceil(float64(r+1)*alpha/2)), r)
	hiRank := clampRank(int(math.Ceil(float64(r+1)*(1-alpha/2))), r)

	return IntervalEstimate{
		Lower: sorted[loRank-1],
		Upper: sorted[hiRank-1],
		Level: 1 - alpha,
	}, nil
}

// BCaInterval returns the bias-corrected and accelerated interval
// with nominal coverage 1 - alpha. observedStat is the statistic's
// value on the original dataset; jackknife holds its leave-one-out
// values, used to estimate the acceleration (see data.Vector's
// Jackknife). The quantile positions follow Efron and Tibshirani:
//
//	z0 = Phi^-1(#{T* <= observedStat} / (R+1))
//	a  = sum(d^3) / (6 * sum(d^2)^1.5), d_j = mean(jack) - jack_j
//	a1 = Phi(z0 + (z0 - z_a)/(1 - a*(z0 - z_a))), z_a = Phi^-1(1 - alpha/2)
//	a2 = Phi(z0 + (z0 + z_a)/(1 - a*(z0 + z_a)))
//
// with endpoints at ranks round(R*a1) and round(R*a2), clamped to
// [1, R]. When all jackknife values coincide the acceleration is
// undefined and an error wrapping internal.ErrDegenerateJackknife
// is returned.
func (e *Engine) BCaInterval(alpha, observedStat float64, jackknife []float64) (IntervalEstimate, error) {
	if alpha <= 0 || alpha >= 1 {
		return IntervalEstimate{}, errors.Wrap(internal.ErrBadConfig, "alpha must lie in (0, 1)")
	}
	if len(jackknife) == 0 {
		return IntervalEstimate{}, errors.Wrap(internal.ErrBadConfig, "jackknife values must be given")
	}

	sorted, err := e.sortedReplicates()
	if err != nil {
		return IntervalEstimate{}, err
	}

	r := len(sorted)
	below := 0
	for _, t := range sorted {
		if t <= observedStat {
			below++
		}
	}
	z0 := distuv.UnitNormal.Quantile(float64(below) / float64(r+1))

	accel, err := acceleration(jackknife)
	if err != nil {
		return IntervalEstimate{}, err
	}

	zAlpha := distuv.UnitNormal.Quantile(1 - alpha/2)
	adjusted := func(w float64) float64 {
		return distuv.UnitNormal.CDF(z0 + w/(1-accel*w))
	}
	a1 := adjusted(z0 - zAlpha)
	a2 := adjusted(z0 + zAlpha)

	loRank := clampRank(int(math.Round(float64(r)*a1)), r)
	hiRank := clampRank(int(math.Round(float64(r)*a2)), r)

	return IntervalEstimate{
		Lower: sorted[loRank-1],
		Upper: sorted[hiRank-1],
		Level: 1 - alpha,
	}, nil
}

// acceleration estimates the BCa acceleration constant from the
// jackknife leave-one-out values.
func acceleration(jackknife []float64) (float64, error) {
	mean := stat.Mean(jackknife, nil)
	var sum2, sum3 float64
	for _, v := range jackknife {
		d := mean - v
		sum2 += d * d
		sum3 += d * d * d
	}

	den := math.Pow(sum2, 1.5)
	if den == 0 {
		return 0, errors.Wrap(internal.ErrDegenerateJackknife, "acceleration is undefined")
	}

	return sum3 / (6 * den), nil
}

func clampRank(rank, r int) int {
	if rank < 1 {
		return 1
	}
	if rank > r {
		return r
	}

	return rank
}
