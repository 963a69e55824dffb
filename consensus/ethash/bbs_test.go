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

func TestClampBoundaries(t *testing.T) {
	tests := []struct {
		n, p, want uint32
	}{
		{0, p1, 2},
		{1, p1, 2},
		{2, p1, 2},
		{p1 - 2, p1, p1 - 2},
		{p1 - 1, p1, p1 - 2},
		{p1, p1, p1 - 2},
	}
	for _, tt := range tests {
		if got := clamp(tt.n, tt.p); got != tt.want {
			t.Errorf("clamp(%d,%d) = %d, want %d", tt.n, tt.p, got, tt.want)
		}
	}
}

// TestAdvanceMatchesRepeatedStep checks the core seekability invariant:
// i applications of step must equal one call to advance(_, i, _).
func TestAdvanceMatchesRepeatedStep(t *testing.T) {
	n := clamp(123456789, p2)
	got := n
	for i := 0; i < 50; i++ {
		if adv := advance(n, uint32(i), p2); adv != got {
			t.Fatalf("advance(n,%d,p2) = %d, want %d (repeated step)", i, adv, got)
		}
		got = step(got, p2)
	}
}

func TestStepStaysInRange(t *testing.T) {
	n := clamp(42, p2)
	for i := 0; i < 1000; i++ {
		n = step(n, p2)
		if n >= p2 {
			t.Fatalf("step result %d out of range for modulus %d", n, p2)
		}
	}
}
