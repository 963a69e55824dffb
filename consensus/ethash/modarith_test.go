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

import "testing"

func TestModMul32(t *testing.T) {
	tests := []struct{ a, b, m, want uint32 }{
		{2, 3, 7, 6},
		{0, 100, 7, 0},
		{p1 - 1, p1 - 1, p1, 1}, // (-1)*(-1) == 1 mod p1
		{6, 6, 7, 1},
	}
	for _, tt := range tests {
		if got := modMul32(tt.a, tt.b, tt.m); got != tt.want {
			t.Errorf("modMul32(%d,%d,%d) = %d, want %d", tt.a, tt.b, tt.m, got, tt.want)
		}
	}
}

func TestModPow32(t *testing.T) {
	tests := []struct{ b, e, m, want uint32 }{
		{2, 10, 1000, 24},
		{3, 0, 7, 1},
		{5, 1, 13, 5},
	}
	for _, tt := range tests {
		if got := modPow32(tt.b, tt.e, tt.m); got != tt.want {
			t.Errorf("modPow32(%d,%d,%d) = %d, want %d", tt.b, tt.e, tt.m, got, tt.want)
		}
	}
}

func TestMod32(t *testing.T) {
	if got := mod32(10, 4); got != 2 {
		t.Errorf("mod32(10,4) = %d, want 2", got)
	}
}

func TestMod64Boundary(t *testing.T) {
	// mod64(lo, 0, n) = lo mod n.
	if got := mod64(17, 0, 5); got != 2 {
		t.Errorf("mod64(17,0,5) = %d, want 2", got)
	}
	// mod64(0, 1, n) = 2^32 mod n.
	n := uint32(7)
	want := uint32((uint64(1) << 32) % uint64(n))
	if got := mod64(0, 1, n); got != want {
		t.Errorf("mod64(0,1,%d) = %d, want %d", n, got, want)
	}
}
