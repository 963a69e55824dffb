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
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

// EpochCacheStore bounds how many expanded Caches are held in memory at
// once, evicting the least recently used epoch once the configured
// capacity is exceeded. This is purely a driver-level convenience: the
// core itself never caches DAG nodes or caches across calls (see
// spec.md's Non-goals) and an EpochCacheStore never appears inside
// Evaluator.Hash.
type EpochCacheStore struct {
	params Params
	hasher Hasher

	mu    sync.Mutex
	cache *lru.Cache
}

// NewEpochCacheStore creates a store that keeps at most size expanded
// evaluators in memory, one per distinct epoch key.
func NewEpochCacheStore(params Params, hasher Hasher, size int) (*EpochCacheStore, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if hasher == nil {
		hasher = NewKeccak()
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &EpochCacheStore{params: params, hasher: hasher, cache: c}, nil
}

// Evaluator returns the cached evaluator for epoch, building it from
// seed (via Setup) on first use.
func (s *EpochCacheStore) Evaluator(epoch uint64, seed []byte) (*Evaluator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.cache.Get(epoch); ok {
		return v.(*Evaluator), nil
	}
	e, err := NewEvaluator(s.params, seed, s.hasher)
	if err != nil {
		return nil, err
	}
	s.cache.Add(epoch, e)
	return e, nil
}

// Len reports how many epochs are currently resident.
func (s *EpochCacheStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
