// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package ethash implements the memory-hard, Keccak-seeded proof-of-work
// mix described in SPEC_FULL.md: a RandMemoHash cache expansion, an
// on-demand DAG-node oracle, and a hash pipeline that threads a
// Blum-Blum-Shub word stream and an FNV-style mixer through a double
// Keccak-256 envelope.
package ethash

import "fmt"

// Evaluator is one (params, seed) instance of the proof-of-work core.
// Cache and rand1 are immutable after NewEvaluator returns and may be
// shared read-only across goroutines; Hash itself allocates a fresh
// scratch buffer per call and performs no shared mutation.
type Evaluator struct {
	params Params
	hasher Hasher
	cache  Cache
	rand1  uint32
}

// NewEvaluator runs Setup: it validates params, packs seed into
// little-endian words, expands the cache, and derives rand1 from
// cache[0]. The seed may be any length that is a multiple of 4 bytes.
func NewEvaluator(params Params, seed []byte, hasher Hasher) (*Evaluator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(seed)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSeed, len(seed))
	}
	if hasher == nil {
		hasher = NewKeccak()
	}

	seedWords := make([]uint32, len(seed)/4)
	bytesToWordsLE(seedWords, seed)

	cache := buildCache(params, seedWords, hasher)
	rand1 := clamp(cache.words[0], p1)

	return &Evaluator{
		params: params,
		hasher: hasher,
		cache:  cache,
		rand1:  rand1,
	}, nil
}

// Params returns the configuration this evaluator was built with.
func (e *Evaluator) Params() Params { return e.params }

// Cache returns the evaluator's immutable cache, e.g. for comparing it
// with the cache of another evaluator built from the same (params, seed)
// pair. NewEvaluator always builds its own cache; none is accepted as input.
func (e *Evaluator) Cache() Cache { return e.cache }

// Hash runs the hash pipeline (C6) for one (header, nonce) pair and
// returns the 32-byte final digest. header must be 32 bytes and nonce 8
// bytes; Hash does not validate lengths beyond the type system because
// the array types make mis-sized inputs a compile error.
func (e *Evaluator) Hash(header [32]byte, nonce [8]byte) [32]byte {
	mixWordCount := e.params.MixWordCount()
	mixNodeCount := e.params.MixNodeCount()
	dagPageCount := uint32(e.params.DagPageCount())

	buf := make([]uint32, int(mixWordCount)+16)

	// Step 1-2: seed buffer + initial Keccak-512.
	var seedBytes [64]byte
	copy(seedBytes[0:32], header[:])
	copy(seedBytes[32:40], nonce[:])
	bytesToWordsLE(buf[0:16], seedBytes[:])
	e.hasher.DigestWords(buf, 0, 16, buf, 0, 16)

	// Step 3: replicate s across the working area.
	for w := 16; w < len(buf); w++ {
		buf[w] = buf[w%16]
	}

	// Step 4: seed the outer-mix BBS stream.
	rand2 := clamp(buf[0], p2)

	// Step 5: outer mix, mixNodeCount DAG-node lookups per iteration.
	for a := uint32(0); a < e.params.MixParents; a++ {
		idx := a % mixWordCount
		d := uint64(mod32(buf[idx]^rand2, dagPageCount)) * uint64(mixNodeCount)

		for n := uint64(0); n < uint64(mixNodeCount); n++ {
			node := e.dagNode(d + n)
			base := 16 + int(n)*16
			for v := 0; v < 16; v++ {
				buf[base+v] = fnv(buf[base+v], node[v])
			}
		}
		rand2 = step(rand2, p2)
	}

	// Step 6: compress the whole buffer into words [16,24).
	e.hasher.DigestWords(buf, 16, 8, buf, 0, len(buf))

	// Step 7: final digest over s ++ compressed_mix.
	var outWords [8]uint32
	e.hasher.DigestWords(outWords[:], 0, 8, buf, 0, 24)

	var digest [32]byte
	wordsToBytesLE(digest[:], outWords[:])
	return digest
}

// CacheDigest returns Keccak-256 over the entire cache's byte image, for
// diagnostic equivalence checks between evaluator instances.
func (e *Evaluator) CacheDigest() [32]byte {
	var outWords [8]uint32
	e.hasher.DigestWords(outWords[:], 0, 8, e.cache.words, 0, len(e.cache.words))

	var digest [32]byte
	wordsToBytesLE(digest[:], outWords[:])
	return digest
}
