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

package data

import (
	"fmt"
	"io"
	"strings"

	"github.com/fentec-project/randutil/internal"
	"github.com/fentec-project/randutil/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Vector can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector wraps a slice of numeric elements.
type Vector[T Number] []T

// NewVector returns a new Vector instance.
func NewVector[T Number](coordinates []T) Vector[T] {
	return Vector[T](coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector[T Number](len int, sampler sample.Sampler[T]) (Vector[T], error) {
	if len < 0 {
		return nil, errors.Wrapf(internal.ErrInvalidArgument, "vector length (%d) cannot be negative", len)
	}

	vec := make([]T, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, errors.Wrap(err, "error while sampling")
		}
	}

	return NewVector(vec), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector[T Number](len int, c T) Vector[T] {
	vec := make([]T, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector[T]) Copy() Vector[T] {
	newVec := make(Vector[T], len(v))
	copy(newVec, v)

	return newVec
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector[T]) MulScalar(x T) Vector[T] {
	res := make(Vector[T], len(v))
	for i, vi := range v {
		res[i] = x * vi
	}

	return res
}

// CheckBound checks whether the absolute values of all vector elements
// are strictly smaller than the provided bound.
// It returns error if at least one element's absolute value is >= bound.
func (v Vector[T]) CheckBound(bound T) error {
	for _, c := range v {
		abs := c
		if abs < 0 {
			abs = -abs
		}
		if abs >= bound {
			return errors.Wrapf(internal.ErrInvalidArgument,
				"all coordinates of a vector should be smaller than %v", bound)
		}
	}

	return nil
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector[T]) Apply(f func(T) T) Vector[T] {
	res := make(Vector[T], len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

func (v Vector[T]) checkLen(other Vector[T]) error {
	if len(v) != len(other) {
		return errors.Wrapf(internal.ErrInvalidArgument,
			"vectors should be of same length (%d != %d)", len(v), len(other))
	}
	return nil
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector[T]) Add(other Vector[T]) (Vector[T], error) {
	if err := v.checkLen(other); err != nil {
		return nil, err
	}

	sum := make(Vector[T], len(v))
	for i, c := range v {
		sum[i] = c + other[i]
	}

	return sum, nil
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
func (v Vector[T]) Sub(other Vector[T]) (Vector[T], error) {
	if err := v.checkLen(other); err != nil {
		return nil, err
	}

	sub := make(Vector[T], len(v))
	for i, c := range v {
		sub[i] = c - other[i]
	}

	return sub, nil
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector[T]) Dot(other Vector[T]) (T, error) {
	var prod T

	if err := v.checkLen(other); err != nil {
		return prod, err
	}

	for i, c := range v {
		prod += c * other[i]
	}

	return prod, nil
}

// Sum returns the sum of the elements of v.
func (v Vector[T]) Sum() T {
	var sum T
	for _, c := range v {
		sum += c
	}

	return sum
}

// Hist writes a histogram of the elements of v with bins bins to w.
// See NewHistogram.
func (v Vector[T]) Hist(w io.Writer, bins int) error {
	h, err := NewHistogram(v, bins)
	if err != nil {
		return err
	}

	return h.Render(w)
}

// String produces a string representation of a vector.
func (v Vector[T]) String() string {
	parts := make([]string, len(v))
	for i, yi := range v {
		parts[i] = fmt.Sprint(yi)
	}
	return strings.Join(parts, " ")
}
