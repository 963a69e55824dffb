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

package ethash

// Cache is the immutable, once-built array of 64-byte nodes a single
// evaluator derives all of its DAG nodes from. It is safe to share
// across goroutines after construction; nothing ever mutates it again.
type Cache struct {
	words []uint32 // cacheNodeCount*16 words
}

// Words exposes the cache's raw word image, little-endian per word.
// Callers must not modify the returned slice.
func (c Cache) Words() []uint32 { return c.words }

// buildCache expands seedWords into a Cache: a sequential Keccak-512
// chain (Phase A) followed by params.CacheRounds passes of RandMemoHash
// (Phase B).
func buildCache(params Params, seedWords []uint32, h Hasher) Cache {
	n := params.CacheNodeCount()
	words := make([]uint32, uint64(n)*16)

	// Phase A: sequential fill.
	node := keccak512Node(h, seedWords)
	copy(words[0:16], node[:])
	for i := uint32(1); i < n; i++ {
		prev := words[(i-1)*16 : (i-1)*16+16]
		node = keccak512Node(h, prev)
		copy(words[i*16:i*16+16], node[:])
	}

	// Phase B: RandMemoHash. The join buffer concatenates (not XORs)
	// the two parent nodes into 32 words before hashing; this departs
	// from the canonical Ethash spec deliberately, see DESIGN.md.
	var join [32]uint32
	for round := uint32(0); round < params.CacheRounds; round++ {
		for i := uint32(0); i < n; i++ {
			p0 := ((i + n - 1) % n) * 16
			p1 := mod64(words[i*16], words[i*16+1], n) * 16

			copy(join[0:16], words[p0:p0+16])
			copy(join[16:32], words[p1:p1+16])

			mixed := keccak512Node(h, join[:])
			copy(words[i*16:i*16+16], mixed[:])
		}
	}

	return Cache{words: words}
}
