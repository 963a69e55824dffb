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

// The two BBS moduli. Both are prime and just under 2^32.
const (
	p1 uint32 = 4294967087
	p2 uint32 = 4294963787
)

// modMul32 returns (a*b) mod m. Go's uint64 multiply never overflows a
// 32-bit product, so unlike the 53-bit-float source this needs no
// split-multiplication trick.
func modMul32(a, b, m uint32) uint32 {
	return uint32((uint64(a) * uint64(b)) % uint64(m))
}

// modPow32 returns b^e mod m via left-to-right square-and-multiply over
// the 32 bits of e.
func modPow32(b, e, m uint32) uint32 {
	r := uint32(1)
	base := b % m
	for bit := uint32(1) << 31; bit != 0; bit >>= 1 {
		r = modMul32(r, r, m)
		if e&bit != 0 {
			r = modMul32(r, base, m)
		}
	}
	return r
}

// mod32 reduces x modulo n. n need not be a power of two; callers that
// can guarantee a power-of-two n (dagPageCount) get an exact result
// whether or not they exploit it for AND-masking.
func mod32(x, n uint32) uint32 {
	return x % n
}

// mod64 reduces the 64-bit unsigned value (hi<<32 | lo) modulo n,
// working entirely in 64-bit arithmetic since n fits comfortably in
// 32 bits.
func mod64(lo, hi, n uint32) uint32 {
	return uint32(((uint64(hi)<<32)%uint64(n) + uint64(lo)) % uint64(n))
}
