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

// DeterministicSource is a pseudo-random source whose output is
// a function of a 32-byte key. It generates the salsa20 keystream
// for the key block by block, so the same key always yields the
// same stream. It implements rand.Source from golang.org/x/exp/rand
// and can therefore back any sampler in this package.
type DeterministicSource struct {
	key   [32]byte
	block uint64
	buf   [64]byte
	off   int
}

// NewDeterministicSource returns an instance of the
// DeterministicSource generator for the given key.
func NewDeterministicSource(key *[32]byte) *DeterministicSource {
	s := &DeterministicSource{key: *key}
	s.refill()

	return s
}

// Seed resets the source and mixes the given seed into the
// first bytes of the key.
func (s *DeterministicSource) Seed(seed uint64) {
	binary.LittleEndian.PutUint64(s.key[:8], seed)
	s.block = 0
	s.refill()
}

// Uint64 returns the next 8 bytes of the keystream as an integer.
func (s *DeterministicSource) Uint64() uint64 {
	if s.off == len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off : s.off+8])
	s.off += 8

	return v
}

func (s *DeterministicSource) refill() {
	in := make([]byte, len(s.buf))
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.block)

	salsa20.XORKeyStream(s.buf[:], in, nonce, &s.key)
	s.block++
	s.off = 0
}
