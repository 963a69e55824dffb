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

// fnvPrime is the one-word FNV-style mixing constant used by DAG-node
// derivation and the hash pipeline.
const fnvPrime uint32 = 0x01000193

// fnv mixes x into y the way the DAG and hash-pipeline stages do: a
// 32-bit wrapping multiply by fnvPrime, XORed with y. Go's uint32
// multiplication already wraps at 2^32, so no split-multiply is needed
// the way the source's float arithmetic required.
func fnv(x, y uint32) uint32 {
	return (x * fnvPrime) ^ y
}
