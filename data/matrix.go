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
	"github.com/fentec-project/randutil/internal"
	"github.com/fentec-project/randutil/sample"
	"github.com/pkg/errors"
)

// Matrix wraps a slice of Vector elements. It represents a row-major.
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix[T Number] []Vector[T]

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix[T Number](vectors []Vector[T]) (Matrix[T], error) {
	l := -1
	newVectors := make([]Vector[T], len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, errors.Wrap(internal.ErrInvalidArgument, "all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix[T](newVectors), nil
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomMatrix[T Number](rows, cols int, sampler sample.Sampler[T]) (Matrix[T], error) {
	if rows < 0 {
		return nil, errors.Wrapf(internal.ErrInvalidArgument, "number of rows (%d) cannot be negative", rows)
	}
	mat := make([]Vector[T], rows)

	for i := 0; i < rows; i++ {
		vec, err := NewRandomVector(cols, sampler)
		if err != nil {
			return nil, err
		}

		mat[i] = vec
	}

	return NewMatrix(mat)
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix[T Number](rows, cols int, c T) Matrix[T] {
	mat := make([]Vector[T], rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewConstantVector(cols, c)
	}

	return mat
}

// Rows returns the number of rows of matrix m.
func (m Matrix[T]) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix[T]) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix[T]) DimsMatch(other Matrix[T]) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix[T]) GetCol(i int) (Vector[T], error) {
	if i < 0 || i >= m.Cols() {
		return nil, errors.Wrapf(internal.ErrInvalidArgument, "column index %d exceeds matrix dimensions", i)
	}

	column := make([]T, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return NewVector(column), nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix[T]) Transpose() Matrix[T] {
	transposed := make([]Vector[T], m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	return transposed
}

// Flatten returns the elements of m in row-major order.
func (m Matrix[T]) Flatten() Vector[T] {
	flat := make(Vector[T], 0, m.Rows()*m.Cols())
	for _, row := range m {
		flat = append(flat, row...)
	}

	return flat
}

// MulVec multiplies matrix m and vector v.
// It returns the resulting vector.
// Error is returned if the number of columns of m differs from the number
// of elements of v.
func (m Matrix[T]) MulVec(v Vector[T]) (Vector[T], error) {
	if m.Cols() != len(v) {
		return nil, errors.Wrap(internal.ErrInvalidArgument, "cannot multiply matrix by a vector")
	}

	res := make(Vector[T], m.Rows())
	for i, row := range m {
		var err error
		res[i], err = row.Dot(v)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
	}

	return res, nil
}
