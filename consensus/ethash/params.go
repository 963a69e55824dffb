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

import "fmt"

// Params is the immutable configuration of one evaluator instance. All
// fields are byte counts unless noted otherwise; see the derived
// quantities below for the word-count views the core actually operates
// on.
type Params struct {
	CacheSize   uint32 // bytes, multiple of 64 and of MixSize
	CacheRounds uint32 // number of RandMemoHash passes, may be 0
	DagSize     uint64 // bytes, multiple of MixSize; never allocated
	DagParents  uint32 // FNV-mix iterations per DAG-node derivation
	MixSize     uint32 // bytes, multiple of 64
	MixParents  uint32 // outer mix iterations
}

// CacheNodeCount returns the number of 64-byte nodes held in the cache.
func (p Params) CacheNodeCount() uint32 { return p.CacheSize / 64 }

// MixWordCount returns the width of the working mix area, in 32-bit words.
func (p Params) MixWordCount() uint32 { return p.MixSize / 4 }

// MixNodeCount returns how many 64-byte nodes fit in one working mix slab.
func (p Params) MixNodeCount() uint32 { return p.MixWordCount() / 16 }

// DagPageCount returns the number of mix-sized pages in the virtual DAG.
func (p Params) DagPageCount() uint64 { return p.DagSize / uint64(p.MixSize) }

// Validate checks the structural constraints required for the core's
// arithmetic to be total: every size must divide evenly into the next
// coarser unit, and DagPageCount must be a positive power of two, so the
// hash pipeline's page bucketing (mod32 by DagPageCount) gives the same
// result as masking with DagPageCount-1.
func (p Params) Validate() error {
	if p.MixSize == 0 || p.MixSize%64 != 0 {
		return fmt.Errorf("%w: mixSize %d is not a positive multiple of 64", ErrInvalidParams, p.MixSize)
	}
	if p.CacheSize == 0 || p.CacheSize%64 != 0 {
		return fmt.Errorf("%w: cacheSize %d is not a positive multiple of 64", ErrInvalidParams, p.CacheSize)
	}
	if p.CacheSize%p.MixSize != 0 {
		return fmt.Errorf("%w: cacheSize %d is not a multiple of mixSize %d", ErrInvalidParams, p.CacheSize, p.MixSize)
	}
	if p.DagSize == 0 || p.DagSize%uint64(p.MixSize) != 0 {
		return fmt.Errorf("%w: dagSize %d is not a positive multiple of mixSize %d", ErrInvalidParams, p.DagSize, p.MixSize)
	}
	if p.DagParents == 0 {
		return fmt.Errorf("%w: dagParents must be positive", ErrInvalidParams)
	}
	if p.MixParents == 0 {
		return fmt.Errorf("%w: mixParents must be positive", ErrInvalidParams)
	}
	pages := p.DagPageCount()
	if pages == 0 || pages&(pages-1) != 0 {
		return fmt.Errorf("%w: dagPageCount %d is not a positive power of two", ErrInvalidParams, pages)
	}
	return nil
}
