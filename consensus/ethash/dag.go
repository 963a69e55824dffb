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

// dagNode derives DAG node nodeIndex on demand from the cache. Unlike
// the canonical Ethash dataset generator, it does not apply a final
// Keccak-512 envelope to the result; this is intentional, see
// DESIGN.md.
func (e *Evaluator) dagNode(nodeIndex uint64) [16]uint32 {
	cacheNodeCount := e.params.CacheNodeCount()

	rand2 := clamp(advance(e.rand1, uint32(nodeIndex), p1), p2)

	base := uint32(nodeIndex%uint64(cacheNodeCount)) * 16
	var mix [16]uint32
	copy(mix[:], e.cache.words[base:base+16])

	for p := uint32(0); p < e.params.DagParents; p++ {
		c := mod32(mix[p%16]^rand2, cacheNodeCount) * 16
		for w := uint32(0); w < 16; w++ {
			mix[w] = fnv(mix[w], e.cache.words[c+w])
		}
		rand2 = step(rand2, p2)
	}
	return mix
}
