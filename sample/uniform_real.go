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
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformReal samples random floating point values from the
// interval [min, max) with equal probability.
type UniformReal[T constraints.Float] struct {
	dist distuv.Uniform
	max  T
}

// NewUniformReal returns an instance of the UniformReal sampler.
// It returns an error wrapping ErrInvalidArgument unless min < max and
// the width of the interval is finite.
func NewUniformReal[T constraints.Float](g *Generator, min, max T) (*UniformReal[T], error) {
	if !(max > min) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"high (%v) must be larger than low (%v)", max, min)
	}
	if math.IsInf(float64(max)-float64(min), 0) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"interval [%v, %v) is too wide", min, max)
	}

	return &UniformReal[T]{
		dist: distuv.Uniform{
			Min: float64(min),
			Max: float64(max),
			Src: orDefault(g).Source(),
		},
		max: max,
	}, nil
}

// Sample samples a random value from [min, max).
func (u *UniformReal[T]) Sample() (T, error) {
	for {
		// rounding to T can land on max, such values are drawn again
		v := T(u.dist.Rand())
		if v < u.max {
			return v, nil
		}
	}
}

// RandReal returns a floating point value from [low, high) with equal
// probability. For instance RandReal(g, 0.0, 1.0) returns a float64
// from [0.0, 1.0).
func RandReal[T constraints.Float](g *Generator, low, high T) (T, error) {
	u, err := NewUniformReal(g, low, high)
	if err != nil {
		return 0, err
	}
	return u.Sample()
}

// RandReals returns n floating point values drawn independently
// from [low, high).
func RandReals[T constraints.Float](g *Generator, low, high T, n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "number of elements (%d) cannot be negative", n)
	}
	u, err := NewUniformReal(g, low, high)
	if err != nil {
		return nil, err
	}
	return fill[T](u, n)
}
