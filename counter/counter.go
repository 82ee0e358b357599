// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free counters for cache statistics
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer that is safe to update from
// several goroutines
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(ic), n)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return ic.Uint64() == 0
}

// Reset - set back to zero, returns the value before the reset
func (ic *Counter) Reset() uint64 {
	return atomic.SwapUint64((*uint64)(ic), 0)
}

// HitMiss - a pair of counters for a cache
type HitMiss struct {
	Hits   Counter
	Misses Counter
}

// Record - count a lookup result
func (hm *HitMiss) Record(hit bool) {
	if hit {
		hm.Hits.Increment()
	} else {
		hm.Misses.Increment()
	}
}

// Ratio - fraction of lookups that were hits, zero if no lookups
func (hm *HitMiss) Ratio() float64 {
	hits := hm.Hits.Uint64()
	total := hits + hm.Misses.Uint64()
	if 0 == total {
		return 0
	}
	return float64(hits) / float64(total)
}
