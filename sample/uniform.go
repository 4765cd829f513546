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
)

// UniformRange samples random integers from the interval [min, max)
// with equal probability.
type UniformRange[T constraints.Integer] struct {
	g    *Generator
	min  T
	span uint64
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values and returns
// an error wrapping ErrInvalidArgument if max <= min.
func NewUniformRange[T constraints.Integer](g *Generator, min, max T) (*UniformRange[T], error) {
	if max <= min {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"high (%v) must be larger than low (%v)", max, min)
	}

	// The difference is taken modulo 2^64, which gives the width of the
	// interval for signed and unsigned types alike.
	return &UniformRange[T]{
		g:    orDefault(g),
		min:  min,
		span: uint64(max) - uint64(min),
	}, nil
}

// Sample samples a random value from [min, max).
func (u *UniformRange[T]) Sample() (T, error) {
	return T(uint64(u.min) + u.g.Uint64n(u.span)), nil
}

// NewBit returns a sampler of a single random bit (value 0 or 1).
func NewBit(g *Generator) *UniformRange[int] {
	return &UniformRange[int]{
		g:    orDefault(g),
		min:  0,
		span: 2,
	}
}

// RandInt returns a random integer from [low, high) with equal
// probability. For instance RandInt(g, 0, 5) returns one of 0, 1, 2, 3, 4.
func RandInt[T constraints.Integer](g *Generator, low, high T) (T, error) {
	u, err := NewUniformRange(g, low, high)
	if err != nil {
		return 0, err
	}
	return u.Sample()
}

// RandInts returns n integers drawn independently from [low, high).
// The range is validated even when n is 0.
func RandInts[T constraints.Integer](g *Generator, low, high T, n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "number of elements (%d) cannot be negative", n)
	}
	u, err := NewUniformRange(g, low, high)
	if err != nil {
		return nil, err
	}
	return fill[T](u, n)
}
