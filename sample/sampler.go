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

import "github.com/pkg/errors"

// Sampler samples random values of type T from some distribution.
type Sampler[T any] interface {
	Sample() (T, error)
}

// fill draws n values from s. It returns ErrInvalidArgument for a
// negative n and an empty, non-nil slice for n == 0.
func fill[T any](s Sampler[T], n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "number of elements (%d) cannot be negative", n)
	}

	res := make([]T, n)
	var err error
	for i := 0; i < n; i++ {
		res[i], err = s.Sample()
		if err != nil {
			return nil, errors.Wrap(err, "error while sampling")
		}
	}

	return res, nil
}
