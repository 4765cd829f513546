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
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Shuffle permutes s in place uniformly at random. Each call uses a
// fresh time-seeded Generator, so the result is not reproducible;
// use ShuffleWith for a reproducible permutation.
func Shuffle[T any](s []T) {
	ShuffleWith(NewTimeSeeded(), s)
}

// ShuffleWith permutes s in place using the values of g.
func ShuffleWith[T any](g *Generator, s []T) {
	orDefault(g).rnd.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Perm returns a random permutation of the integers [0, n).
func Perm(g *Generator, n int) ([]int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "number of elements (%d) cannot be negative", n)
	}
	return orDefault(g).rnd.Perm(n), nil
}

func checkSampleSize(size, n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidArgument, "number of elements (%d) cannot be negative", n)
	}
	if n > size {
		return errors.Wrapf(ErrInvalidArgument,
			"cannot sample %d elements from a sequence of %d", n, size)
	}
	return nil
}

// UniqueSample returns n elements of s chosen without replacement.
// Uniqueness is by position: if s holds duplicate values the result may
// hold them too. The positions are permuted with Shuffle and the first
// n are gathered in that order, so UniqueSample(s, len(s)) is a random
// permutation of s.
func UniqueSample[T any](s []T, n int) ([]T, error) {
	if err := checkSampleSize(len(s), n); err != nil {
		return nil, err
	}

	indices := make([]int, len(s))
	for i := range indices {
		indices[i] = i
	}
	Shuffle(indices)

	res := make([]T, n)
	for i := 0; i < n; i++ {
		res[i] = s[indices[i]]
	}

	return res, nil
}

// Choose returns n elements of s chosen without replacement using the
// values of g. It accepts the same arguments as UniqueSample but its
// result is reproducible for a seeded Generator.
func Choose[T any](g *Generator, s []T, n int) ([]T, error) {
	if err := checkSampleSize(len(s), n); err != nil {
		return nil, err
	}

	res := make([]T, n)
	if n == 0 {
		return res, nil
	}

	indices := make([]int, n)
	sampleuv.WithoutReplacement(indices, len(s), orDefault(g).Source())
	for i, idx := range indices {
		res[i] = s[idx]
	}

	return res, nil
}
