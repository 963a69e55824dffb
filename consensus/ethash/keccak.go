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

import (
	"encoding/binary"
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"
)

// Hasher is the Keccak-f[1600] sponge capability the core consumes. It
// absorbs inLenWords little-endian 32-bit words from inBuf[inOffWords:]
// and squeezes outLenWords words into outBuf[outOffWords:]. An 8-word
// output is Keccak-256; a 16-word output is Keccak-512. Implementations
// must tolerate outBuf and inBuf being the same backing array.
type Hasher interface {
	DigestWords(outBuf []uint32, outOffWords, outLenWords int, inBuf []uint32, inOffWords, inLenWords int)
}

// sha3Hasher implements Hasher on top of golang.org/x/crypto/sha3's
// legacy (non-NIST-padded) Keccak, the variant Ethereum itself uses.
type sha3Hasher struct{}

// NewKeccak returns the Hasher used by production evaluators.
func NewKeccak() Hasher { return sha3Hasher{} }

func (sha3Hasher) DigestWords(outBuf []uint32, outOff, outLen int, inBuf []uint32, inOff, inLen int) {
	in := make([]byte, inLen*4)
	for i := 0; i < inLen; i++ {
		binary.LittleEndian.PutUint32(in[i*4:], inBuf[inOff+i])
	}

	var h hash.Hash
	switch outLen {
	case 8:
		h = sha3.NewLegacyKeccak256()
	case 16:
		h = sha3.NewLegacyKeccak512()
	default:
		panic(fmt.Sprintf("ethash: unsupported keccak output width: %d words", outLen))
	}
	h.Write(in)
	sum := h.Sum(nil)

	// The local copy above means writing outBuf (even when it aliases
	// inBuf) cannot clobber data we still need to read.
	for i := 0; i < outLen; i++ {
		outBuf[outOff+i] = binary.LittleEndian.Uint32(sum[i*4:])
	}
}

// keccak512Node hashes all of in (any number of words) through h with
// Keccak-512, returning a freshly computed 16-word node. It never reuses caller storage so that
// callers can safely pass overlapping regions of a larger cache slice.
func keccak512Node(h Hasher, in []uint32) [16]uint32 {
	var out [16]uint32
	h.DigestWords(out[:], 0, 16, in, 0, len(in))
	return out
}

// bytesToWordsLE packs a little-endian byte slice into dst, 4 bytes per
// word. len(src) must be a multiple of 4 and dst must have len(src)/4
// capacity.
func bytesToWordsLE(dst []uint32, src []byte) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(src[i*4:])
	}
}

// wordsToBytesLE unpacks src into a little-endian byte slice dst; dst
// must have len(src)*4 capacity.
func wordsToBytesLE(dst []byte, src []uint32) {
	for i, w := range src {
		binary.LittleEndian.PutUint32(dst[i*4:], w)
	}
}
