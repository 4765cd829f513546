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
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal samples random values from the Normal (Gaussian)
// probability distribution.
//
// The spread parameter is named variance but is used as the standard
// deviation of the distribution: Normal(0, 4) yields values with a
// standard deviation of 4, not 2. Callers wanting a true variance v
// should pass math.Sqrt(v).
type Normal[T constraints.Float] struct {
	dist distuv.Normal
}

// NewNormal returns an instance of Normal sampler with the given
// mean and spread. It returns an error wrapping ErrInvalidArgument
// if variance is not positive.
func NewNormal[T constraints.Float](g *Generator, mean, variance T) (*Normal[T], error) {
	if !(variance > 0) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"variance (%v) must be positive", variance)
	}

	return &Normal[T]{
		dist: distuv.Normal{
			Mu:    float64(mean),
			Sigma: float64(variance),
			Src:   orDefault(g).Source(),
		},
	}, nil
}

// Sample samples a value from the distribution.
func (n *Normal[T]) Sample() (T, error) {
	return T(n.dist.Rand()), nil
}

// Randn returns a random value from the Gaussian distribution with the
// given mean and spread. See Normal for how variance is interpreted.
func Randn[T constraints.Float](g *Generator, mean, variance T) (T, error) {
	n, err := NewNormal(g, mean, variance)
	if err != nil {
		return 0, err
	}
	return n.Sample()
}

// Randns returns n values drawn independently from the Gaussian
// distribution with the given mean and spread.
func Randns[T constraints.Float](g *Generator, mean, variance T, n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "number of elements (%d) cannot be negative", n)
	}
	s, err := NewNormal(g, mean, variance)
	if err != nil {
		return nil, err
	}
	return fill[T](s, n)
}
