// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package memory - bounded in-memory relation tier
//
// Holds the relation lists of the most recently used keys.  Both
// reading and merging count as a use; checking for a key does not.
// Evicted lists are simply dropped, the persistent tier below still
// has them.
package memory

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/citationcache/bibentry"
	"github.com/bitmark-inc/citationcache/counter"
	"github.com/bitmark-inc/citationcache/fault"
)

// DefaultCapacity - number of keys held if not configured
const DefaultCapacity = 128

// Tier - LRU map of DOI to relation set
type Tier struct {
	sync.RWMutex // merges are exclusive, reads are shared

	log       *logger.L
	cache     *lru.Cache
	clearing  bool
	lookups   counter.HitMiss
	evictions counter.Counter
}

// Statistics - snapshot of the tier counters
type Statistics struct {
	Entries   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// New - create a tier holding at most capacity keys
//
// the name is used as the log channel tag
func New(name string, capacity int) (*Tier, error) {
	if capacity <= 0 {
		return nil, fault.ErrInvalidCapacity
	}

	t := &Tier{
		log: logger.New(name),
	}
	cache, err := lru.NewWithEvict(capacity, t.evicted)
	if nil != err {
		return nil, err
	}
	t.cache = cache

	t.log.Infof("capacity: %d", capacity)
	return t, nil
}

// called by the LRU with the tier write lock held
func (t *Tier) evicted(key interface{}, value interface{}) {
	if t.clearing {
		return
	}
	t.evictions.Increment()
	if set, ok := value.(*bibentry.Set); ok {
		t.log.Debugf("evict: %v  entries: %d", key, set.Len())
	}
}

// GetRelations - relation list for key, empty if absent
func (t *Tier) GetRelations(key bibentry.DOI) []bibentry.Entry {
	t.RLock()
	defer t.RUnlock()

	value, ok := t.cache.Get(key)
	t.lookups.Record(ok)
	if !ok {
		return []bibentry.Entry{}
	}
	return value.(*bibentry.Set).Entries()
}

// AddRelations - union entries into the set for key
//
// an absent key gets a new set, even when entries is empty
func (t *Tier) AddRelations(key bibentry.DOI, entries []bibentry.Entry) {
	t.Lock()
	defer t.Unlock()

	if value, ok := t.cache.Get(key); ok {
		value.(*bibentry.Set).Merge(entries)
		return
	}
	t.cache.Add(key, bibentry.NewSet(entries...))
}

// ContainsKey - check for a key without counting as a use
func (t *Tier) ContainsKey(key bibentry.DOI) bool {
	return t.cache.Contains(key)
}

// IsUpdatable - always true
//
// the memory tier keeps no insertion times, so freshness is decided
// by the tiers below it
func (t *Tier) IsUpdatable(key bibentry.DOI) bool {
	return true
}

// Clear - drop every key
func (t *Tier) Clear() {
	t.Lock()
	defer t.Unlock()

	t.clearing = true
	t.cache.Purge()
	t.clearing = false
	t.log.Info("cleared")
}

// Len - number of keys held
func (t *Tier) Len() int {
	return t.cache.Len()
}

// Statistics - current counters
func (t *Tier) Statistics() Statistics {
	return Statistics{
		Entries:   t.cache.Len(),
		Hits:      t.lookups.Hits.Uint64(),
		Misses:    t.lookups.Misses.Uint64(),
		Evictions: t.evictions.Uint64(),
	}
}
