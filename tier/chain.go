// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tier

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/citationcache/bibentry"
	"github.com/bitmark-inc/citationcache/fault"
)

// Chain - a sequence of tiers, fastest first
//
// A chain is itself a Tier so chains can be nested.  A chain with no
// tiers holds nothing and always reports updatable.
type Chain struct {
	tiers []Tier
	log   *logger.L
}

// NewChain - compose tiers, fastest first
//
// the name is used as the log channel tag
func NewChain(name string, tiers ...Tier) (*Chain, error) {
	for _, t := range tiers {
		if nil == t {
			return nil, fault.ErrNilTier
		}
	}
	c := &Chain{
		tiers: make([]Tier, len(tiers)),
		log:   logger.New(name),
	}
	copy(c.tiers, tiers)
	return c, nil
}

// Len - number of tiers
func (c *Chain) Len() int {
	return len(c.tiers)
}

// GetRelations - read from the fastest tier holding the key
//
// every faster tier is then filled from the one below it and re-read,
// so the result is whatever the fastest tier now holds
func (c *Chain) GetRelations(key bibentry.DOI) []bibentry.Entry {
	found := -1
scan_tiers:
	for i, t := range c.tiers {
		if t.ContainsKey(key) {
			found = i
			break scan_tiers
		}
	}

	if found < 0 {
		return []bibentry.Entry{}
	}

	relations := c.tiers[found].GetRelations(key)
	for i := found - 1; i >= 0; i -= 1 {
		c.log.Debugf("backfill tier: %d  key: %s  count: %d", i, key, len(relations))
		c.tiers[i].AddRelations(key, relations)
		relations = c.tiers[i].GetRelations(key)
	}
	return relations
}

// AddRelations - merge into every tier, slowest first
//
// a failure part way leaves the slower tiers holding the data, which
// the next read backfills upwards
func (c *Chain) AddRelations(key bibentry.DOI, entries []bibentry.Entry) {
	if nil == entries {
		entries = []bibentry.Entry{}
	}
	for i := len(c.tiers) - 1; i >= 0; i -= 1 {
		c.tiers[i].AddRelations(key, entries)
	}
}

// ContainsKey - true if any tier holds the key
func (c *Chain) ContainsKey(key bibentry.DOI) bool {
	for _, t := range c.tiers {
		if t.ContainsKey(key) {
			return true
		}
	}
	return false
}

// IsUpdatable - true only if every tier considers the key updatable
func (c *Chain) IsUpdatable(key bibentry.DOI) bool {
	for _, t := range c.tiers {
		if !t.IsUpdatable(key) {
			return false
		}
	}
	return true
}

// Clear - clear every tier that supports it
func (c *Chain) Clear() {
	for _, t := range c.tiers {
		if clearer, ok := t.(Clearer); ok {
			clearer.Clear()
		}
	}
}
