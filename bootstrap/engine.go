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

// Package bootstrap estimates the sampling distribution of a
// statistic by resampling an observed dataset with replacement.
// It provides bias, variance and confidence interval estimates
// (percentile and bias-corrected accelerated) over the bootstrap
// replicates.
package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/fentec-project/gomc/data"
	"github.com/fentec-project/gomc/internal"
	"github.com/fentec-project/gomc/sample"
)

// Statistic maps a sample to a single numeric summary, e.g. its
// mean or median. It must be a pure function of its argument and
// must not retain the slice, which is reused between calls.
type Statistic func(observations []float64) float64

// Engine resamples a dataset with replacement and aggregates the
// replicate statistics. It starts out configured but idle; the
// replicates are computed by Run or RunParallel, or implicitly by
// the first aggregation query. Once computed they are never
// recomputed, so repeated queries return identical results.
//
// Replicate i draws its resampling indices from a private uniform
// stream seeded seed + i. This makes the replicate sequence a
// function of the seed alone, identical for sequential and
// parallel runs and for any worker count.
type Engine struct {
	data      data.Vector
	statistic Statistic
	r         int
	seed      uint64

	replicates data.Vector
	sorted     data.Vector
}

// New returns an engine configured to compute the given number of
// bootstrap replicates of the statistic over the dataset.
func New(dataset []float64, statistic Statistic, replicates int, seed uint64) (*Engine, error) {
	if len(dataset) == 0 {
		return nil, errors.Wrap(internal.ErrBadConfig, "dataset must not be empty")
	}
	if statistic == nil {
		return nil, errors.Wrap(internal.ErrBadConfig, "statistic must be given")
	}
	if replicates < 1 {
		return nil, errors.Wrap(internal.ErrBadConfig, "replicate count must be positive")
	}

	return &Engine{
		data:      data.NewVector(dataset).Copy(),
		statistic: statistic,
		r:         replicates,
		seed:      seed,
	}, nil
}

// FromReplicates returns an engine whose replicates were computed
// elsewhere, skipping the resampling stage. Only the aggregation
// queries are available on such an engine.
func FromReplicates(replicates []float64) (*Engine, error) {
	if len(replicates) == 0 {
		return nil, errors.Wrap(internal.ErrBadConfig, "replicates must not be empty")
	}

	reps := data.NewVector(replicates).Copy()

	return &Engine{
		r:          len(reps),
		replicates: reps,
	}, nil
}

// Run computes all replicates sequentially. It is a no-op when
// the replicates already exist.
func (e *Engine) Run() error {
	if e.replicates != nil {
		return nil
	}

	reps := make(data.Vector, e.r)
	buf := make([]float64, len(e.data))
	for i := 0; i < e.r; i++ {
		v, err := e.replicate(i, buf)
		if err != nil {
			return err
		}
		reps[i] = v
	}
	e.replicates = reps

	return nil
}

// RunParallel computes the replicates on up to workers goroutines.
// The result is identical to Run because every replicate owns a
// private stream derived from its index.
func (e *Engine) RunParallel(ctx context.Context, workers int) error {
	if workers < 1 {
		return errors.Wrap(internal.ErrBadConfig, "worker count must be positive")
	}
	if e.replicates != nil {
		return nil
	}

	reps := make(data.Vector, e.r)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < e.r; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := e.replicate(i, make([]float64, len(e.data)))
			if err != nil {
				return err
			}
			reps[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	e.replicates = reps

	return nil
}

// replicate resamples the dataset with replacement into buf and
// evaluates the statistic on it.
func (e *Engine) replicate(i int, buf []float64) (float64, error) {
	uniform := sample.NewUniform(e.seed + uint64(i))
	n := len(e.data)
	for j := 0; j < n; j++ {
		idx, err := uniform.Intn(n)
		if err != nil {
			return 0, err
		}
		buf[j] = e.data[idx]
	}

	return e.statistic(buf), nil
}

// Replicates returns a copy of the replicate statistics in the
// order they were produced.
func (e *Engine) Replicates() (data.Vector, error) {
	if err := e.Run(); err != nil {
		return nil, err
	}

	return e.replicates.Copy(), nil
}

// MeanEstimate returns the arithmetic mean of the replicates.
func (e *Engine) MeanEstimate() (float64, error) {
	if err := e.Run(); err != nil {
		return 0, err
	}

	return e.replicates.Mean(), nil
}

// VarianceEstimate returns the sample variance of the replicates,
// with divisor R - 1.
func (e *Engine) VarianceEstimate() (float64, error) {
	if err := e.Run(); err != nil {
		return 0, err
	}
	if len(e.replicates) < 2 {
		return 0, errors.Wrap(internal.ErrInsufficientData, "variance needs at least two replicates")
	}

	return e.replicates.Variance(), nil
}

// BiasEstimate returns the difference between the replicate mean
// and the statistic's value on the original dataset.
func (e *Engine) BiasEstimate(observedStat float64) (float64, error) {
	m, err := e.MeanEstimate()
	if err != nil {
		return 0, err
	}

	return m - observedStat, nil
}

// sortedReplicates returns the replicates in ascending order,
// computing and caching the ordering on first use.
func (e *Engine) sortedReplicates() (data.Vector, error) {
	if err := e.Run(); err != nil {
		return nil, err
	}
	if e.sorted == nil {
		e.sorted = e.replicates.Sorted()
	}

	return e.sorted, nil
}

// StdDev is a convenience statistic: the sample standard
// deviation of the observations.
func StdDev(observations []float64) float64 {
	return stat.StdDev(observations, nil)
}

// Mean is a convenience statistic: the arithmetic mean of the
// observations.
func Mean(observations []float64) float64 {
	return stat.Mean(observations, nil)
}
