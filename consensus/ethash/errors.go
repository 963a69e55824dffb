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

import "errors"

// ErrInvalidSeed is returned by Setup/NewEvaluator when the seed byte
// string cannot be packed into 32-bit little-endian words.
var ErrInvalidSeed = errors.New("ethash: seed length is not a multiple of 4 bytes")

// ErrInvalidParams is returned when a Params value fails validation.
var ErrInvalidParams = errors.New("ethash: invalid params")
