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
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// Generator is a source of pseudo-random bits consumed by all samplers
// of this package. Access to the underlying source is serialized, so a
// Generator can be shared between goroutines, although the order in which
// they receive values is then not reproducible. For reproducible results
// give each goroutine its own Generator.
type Generator struct {
	src *lockedSource
	rnd *rand.Rand
}

// lockedSource guards a rand.Source with a mutex.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	v := s.src.Uint64()
	s.mu.Unlock()
	return v
}

func (s *lockedSource) Seed(seed uint64) {
	s.mu.Lock()
	s.src.Seed(seed)
	s.mu.Unlock()
}

// NewGenerator returns a Generator drawing its bits from src.
func NewGenerator(src rand.Source) *Generator {
	ls := &lockedSource{src: src}
	return &Generator{
		src: ls,
		rnd: rand.New(ls),
	}
}

// NewSeeded returns a reproducible Generator backed by a PCG source.
// Two generators created with the same seed produce the same values.
func NewSeeded(seed uint64) *Generator {
	return NewGenerator(rand.NewSource(seed))
}

// NewTimeSeeded returns a Generator seeded from the wall clock.
// Its values are not reproducible across runs.
func NewTimeSeeded() *Generator {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

// Default returns the process-wide Generator. It is created on first
// use with seed 0 and never reseeded by this package. Calling Seed on it
// is left to the caller and changes the values seen by every other user
// of Default; prefer NewSeeded for a private reproducible stream.
func Default() *Generator {
	defaultOnce.Do(func() {
		defaultGen = NewSeeded(0)
	})
	return defaultGen
}

// orDefault resolves a nil generator to Default.
func orDefault(g *Generator) *Generator {
	if g == nil {
		return Default()
	}
	return g
}

// Source returns the source of g. It can be handed to libraries
// accepting a rand.Source, such as gonum distributions.
func (g *Generator) Source() rand.Source {
	return g.src
}

// Seed resets the state of g as if it was created with seed.
// On the Generator returned by Default it affects all of its users.
func (g *Generator) Seed(seed uint64) {
	g.src.Seed(seed)
}

// Uint64n returns a value from [0, n). It panics if n == 0.
func (g *Generator) Uint64n(n uint64) uint64 {
	return g.rnd.Uint64n(n)
}

// Float64 returns a value from [0.0, 1.0).
func (g *Generator) Float64() float64 {
	return g.rnd.Float64()
}
