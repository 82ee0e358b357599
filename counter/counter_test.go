// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/citationcache/counter"
)

// test incrementing and resetting a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Add(3)

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}

	if old := c1.Reset(); 5 != old {
		t.Errorf("reset did not return old value: %d", old)
	}

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}
}

// test concurrent increments are not lost
func TestConcurrentIncrement(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if 8000 != c.Uint64() {
		t.Errorf("lost increments: %d", c.Uint64())
	}
}

func TestHitMiss(t *testing.T) {
	var hm counter.HitMiss

	if 0 != hm.Ratio() {
		t.Errorf("ratio without lookups: %f", hm.Ratio())
	}

	hm.Record(true)
	hm.Record(true)
	hm.Record(true)
	hm.Record(false)

	if 0.75 != hm.Ratio() {
		t.Errorf("ratio expected: 0.75  actual: %f", hm.Ratio())
	}
}
