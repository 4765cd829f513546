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

package data_test

import (
	"bytes"
	"testing"

	"github.com/fentec-project/randutil/data"
	"github.com/fentec-project/randutil/internal"
	"github.com/fentec-project/randutil/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	l := 3
	sampler, err := sample.NewUniformRange(sample.NewSeeded(0), int64(-1000), int64(1000))
	require.NoError(t, err)

	x, err := data.NewRandomVector[int64](l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	y, err := data.NewRandomVector[int64](l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	add, err := x.Add(y)
	require.NoError(t, err)
	sub, err := x.Sub(y)
	require.NoError(t, err)
	mul, err := x.Dot(y)
	require.NoError(t, err)

	innerProd := int64(0)
	for i := 0; i < l; i++ {
		assert.Equal(t, x[i]+y[i], add[i], "coordinates should sum correctly")
		assert.Equal(t, x[i]-y[i], sub[i], "coordinates should subtract correctly")
		innerProd += x[i] * y[i]
	}

	assert.Equal(t, innerProd, mul, "inner product should calculate correctly")
	assert.NoError(t, x.CheckBound(1001))
}

func TestVector_InvalidArguments(t *testing.T) {
	x := data.NewVector([]float64{1, 2, 3})
	y := data.NewVector([]float64{1, 2})

	_, err := x.Add(y)
	assert.ErrorIs(t, err, internal.ErrInvalidArgument)
	_, err = x.Sub(y)
	assert.ErrorIs(t, err, internal.ErrInvalidArgument)
	_, err = x.Dot(y)
	assert.ErrorIs(t, err, internal.ErrInvalidArgument)

	assert.ErrorIs(t, x.CheckBound(3), internal.ErrInvalidArgument)
	assert.ErrorIs(t, data.NewVector([]int{-5}).CheckBound(5), internal.ErrInvalidArgument)

	sampler := sample.NewBit(nil)
	_, err = data.NewRandomVector[int](-1, sampler)
	assert.ErrorIs(t, err, internal.ErrInvalidArgument)
}

func TestVector_Ops(t *testing.T) {
	v := data.NewVector([]int{1, 2, 3})

	c := v.Copy()
	c[0] = 10
	assert.Equal(t, 1, v[0])

	assert.Equal(t, data.Vector[int]{2, 4, 6}, v.MulScalar(2))
	assert.Equal(t, data.Vector[int]{1, 4, 9}, v.Apply(func(x int) int { return x * x }))
	assert.Equal(t, 6, v.Sum())
	assert.Equal(t, "1 2 3", v.String())
	assert.Equal(t, data.Vector[int]{7, 7}, data.NewConstantVector(2, 7))
}

func TestVector_Gaussian(t *testing.T) {
	sampler, err := sample.NewNormal(sample.NewSeeded(0), 0.0, 1.0)
	require.NoError(t, err)

	v, err := data.NewRandomVector[float64](500, sampler)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, v.Hist(&buf, 11))
	assert.Equal(t, 11, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Equal(t, 500, bytes.Count(buf.Bytes(), []byte("*")))
}

func TestMatrix(t *testing.T) {
	sampler, err := sample.NewUniformReal(sample.NewSeeded(0), 0.0, 1.0)
	require.NoError(t, err)

	m, err := data.NewRandomMatrix[float64](3, 4, sampler)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())

	tr := m.Transpose()
	assert.Equal(t, 4, tr.Rows())
	assert.Equal(t, 3, tr.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			assert.Equal(t, m[i][j], tr[j][i])
		}
	}
	assert.False(t, m.DimsMatch(tr))
	assert.Len(t, m.Flatten(), 12)

	_, err = m.GetCol(4)
	assert.ErrorIs(t, err, internal.ErrInvalidArgument)

	ones := data.NewConstantMatrix(2, 3, 1)
	prod, err := ones.MulVec(data.NewVector([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, data.Vector[int]{6, 6}, prod)

	_, err = ones.MulVec(data.NewVector([]int{1}))
	assert.ErrorIs(t, err, internal.ErrInvalidArgument)

	_, err = data.NewMatrix([]data.Vector[int]{{1, 2}, {3}})
	assert.ErrorIs(t, err, internal.ErrInvalidArgument)

	// a ragged literal bypasses NewMatrix
	ragged := data.Matrix[int]{{1, 2}, {3}}
	_, err = ragged.MulVec(data.NewVector([]int{1, 1}))
	assert.ErrorIs(t, err, internal.ErrInvalidArgument)
}
