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

// step advances a Blum-Blum-Shub residue by one term: n -> n^3 mod P.
func step(n, p uint32) uint32 {
	return modMul32(modMul32(n, n, p), n, p)
}

// advance seeks i steps ahead in the BBS stream in O(log^2 i) time by
// exponentiating the exponent itself modulo P-1 (Euler/Fermat for prime
// P), then raising n to that reduced exponent mod P. It yields the same
// residue as calling step i times in a row.
func advance(n, i, p uint32) uint32 {
	e := modPow32(3, i, p-1)
	return modPow32(n, e, p)
}

// clamp coerces a 32-bit residue into the BBS-safe range [2, P-2].
func clamp(n, p uint32) uint32 {
	if n < 2 {
		return 2
	}
	if n > p-2 {
		return p - 2
	}
	return n
}
