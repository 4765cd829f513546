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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// blockSize is the number of keystream bytes produced per refill.
const blockSize = 64

// keyedSource is a deterministic rand.Source reading values from the
// Salsa20 keystream under a fixed key. Each refill encrypts a block of
// zeros with the block counter as nonce.
type keyedSource struct {
	key     *[32]byte
	counter uint64
	buf     [blockSize]byte
	pos     int
}

// NewKeyed returns a reproducible Generator whose bits are taken from
// the Salsa20 keystream determined by key. The same key always yields
// the same sequence of values.
func NewKeyed(key *[32]byte) *Generator {
	return NewGenerator(newKeyedSource(key))
}

func newKeyedSource(key *[32]byte) *keyedSource {
	k := new([32]byte)
	*k = *key
	return &keyedSource{
		key: k,
		pos: blockSize,
	}
}

func (s *keyedSource) refill() {
	in := make([]byte, blockSize) // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.counter)

	salsa20.XORKeyStream(s.buf[:], in, nonce, s.key)
	s.counter++
	s.pos = 0
}

func (s *keyedSource) Uint64() uint64 {
	if s.pos+8 > blockSize {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos : s.pos+8])
	s.pos += 8
	return v
}

// Seed restarts the keystream at block number seed.
func (s *keyedSource) Seed(seed uint64) {
	s.counter = seed
	s.pos = blockSize
}
