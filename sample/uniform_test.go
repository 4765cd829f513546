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

package sample_test

import (
	"math"
	"testing"

	"github.com/fentec-project/randutil/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandInt(t *testing.T) {
	var tests = []struct {
		name string
		low  int
		high int
		n    int
	}{
		{name: "0 to 10", low: 0, high: 10, n: 10000},
		{name: "negative range", low: -5, high: 5, n: 10000},
		{name: "single value", low: 0, high: 1, n: 100},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := sample.NewSeeded(1)
			seen := make(map[int]bool)
			for i := 0; i < test.n; i++ {
				v, err := sample.RandInt(g, test.low, test.high)
				require.NoError(t, err)
				assert.True(t, v >= test.low && v < test.high, "value %d out of range", v)
				seen[v] = true
			}
			// every value of the range should appear
			assert.Len(t, seen, test.high-test.low)
		})
	}
}

func TestRandInt_SingleValue(t *testing.T) {
	g := sample.NewSeeded(0)
	for i := 0; i < 100; i++ {
		v, err := sample.RandInt(g, 0, 1)
		assert.NoError(t, err)
		assert.Equal(t, 0, v)
	}
}

func TestRandInt_FullRange(t *testing.T) {
	g := sample.NewSeeded(7)

	vec8, err := sample.RandInts(g, int8(math.MinInt8), int8(math.MaxInt8), 5000)
	require.NoError(t, err)
	var sawNegative, sawPositive bool
	for _, v := range vec8 {
		assert.True(t, v < math.MaxInt8)
		sawNegative = sawNegative || v < 0
		sawPositive = sawPositive || v > 0
	}
	assert.True(t, sawNegative)
	assert.True(t, sawPositive)

	vecU, err := sample.RandInts(g, uint64(0), uint64(math.MaxUint64), 1000)
	require.NoError(t, err)
	var big int
	for _, v := range vecU {
		assert.True(t, v < math.MaxUint64)
		if v > math.MaxUint64/2 {
			big++
		}
	}
	assert.Greater(t, big, 400)
	assert.Less(t, big, 600)
}

func TestRandInts(t *testing.T) {
	g := sample.NewSeeded(0)

	vec, err := sample.RandInts(g, int16(0), int16(10), 10)
	require.NoError(t, err)
	assert.Len(t, vec, 10)
	for _, v := range vec {
		assert.True(t, v >= 0 && v <= 9)
	}

	vec, err = sample.RandInts(g, int16(0), int16(10), 0)
	assert.NoError(t, err)
	assert.NotNil(t, vec)
	assert.Empty(t, vec)
}

func TestRandInt_InvalidArguments(t *testing.T) {
	g := sample.NewSeeded(0)

	_, err := sample.RandInt(g, 5, 5)
	assert.ErrorIs(t, err, sample.ErrInvalidArgument)

	_, err = sample.RandInt(g, uint(6), uint(5))
	assert.ErrorIs(t, err, sample.ErrInvalidArgument)

	_, err = sample.RandInts(g, 0, 10, -1)
	assert.ErrorIs(t, err, sample.ErrInvalidArgument)

	// the range is checked even if nothing is drawn
	_, err = sample.RandInts(g, 5, 5, 0)
	assert.ErrorIs(t, err, sample.ErrInvalidArgument)

	_, err = sample.NewUniformRange(g, 3, 2)
	assert.ErrorIs(t, err, sample.ErrInvalidArgument)
}

func TestBit(t *testing.T) {
	b := sample.NewBit(sample.NewSeeded(3))
	var ones int
	for i := 0; i < 1000; i++ {
		v, err := b.Sample()
		assert.NoError(t, err)
		assert.True(t, v == 0 || v == 1)
		ones += v
	}
	assert.Greater(t, ones, 400)
	assert.Less(t, ones, 600)
}

func TestRandReal(t *testing.T) {
	g := sample.NewSeeded(0)

	vec, err := sample.RandReals(g, 0.0, 10.0, 10000)
	require.NoError(t, err)
	assert.Len(t, vec, 10000)
	for _, v := range vec {
		assert.True(t, v >= 0 && v < 10, "value %v out of range", v)
	}

	vec32, err := sample.RandReals(g, float32(-1), float32(1), 10000)
	require.NoError(t, err)
	for _, v := range vec32 {
		assert.True(t, v >= -1 && v < 1, "value %v out of range", v)
	}

	// the interval is narrower than float32 resolution allows to split
	low := float32(1)
	high := math.Nextafter32(low, 2)
	for i := 0; i < 100; i++ {
		v, err := sample.RandReal(g, low, high)
		assert.NoError(t, err)
		assert.Equal(t, low, v)
	}
}

func TestRandReal_InvalidArguments(t *testing.T) {
	g := sample.NewSeeded(0)

	_, err := sample.RandReal(g, 1.0, 1.0)
	assert.ErrorIs(t, err, sample.ErrInvalidArgument)

	_, err = sample.RandReal(g, 1.0, math.NaN())
	assert.ErrorIs(t, err, sample.ErrInvalidArgument)

	_, err = sample.RandReal(g, -math.MaxFloat64, math.MaxFloat64)
	assert.ErrorIs(t, err, sample.ErrInvalidArgument)

	_, err = sample.RandReals(g, 0.0, 1.0, -3)
	assert.ErrorIs(t, err, sample.ErrInvalidArgument)

	vec, err := sample.RandReals(g, 0.0, 1.0, 0)
	assert.NoError(t, err)
	assert.Empty(t, vec)
}
