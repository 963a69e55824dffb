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

import "github.com/holiman/uint256"

// spec.md scopes "consensus-level validation of the resulting digest
// against a target threshold" out of the core on purpose (§1). A driver
// that wants to decide whether a digest is an accepted proof of work
// still needs that comparison, the way go-ethereum's verifySeal divides
// 2^256 by the difficulty; it is supplied here, beside the core, not
// inside it.

// DifficultyToTarget converts a difficulty value into the maximum digest
// (interpreted as a big-endian 256-bit integer) that satisfies it:
// target = maxUint256 / difficulty. difficulty must be non-zero.
func DifficultyToTarget(difficulty *uint256.Int) *uint256.Int {
	max := new(uint256.Int).SetAllOne()
	target := new(uint256.Int)
	target.Div(max, difficulty)
	return target
}

// MeetsDifficulty reports whether digest, read as a big-endian 256-bit
// integer, is at or below the target implied by difficulty.
func MeetsDifficulty(digest [32]byte, difficulty *uint256.Int) bool {
	target := DifficultyToTarget(difficulty)
	var got uint256.Int
	got.SetBytes(digest[:])
	return got.Cmp(target) <= 0
}
