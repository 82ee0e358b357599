// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bibentry

// Set - an insertion ordered set of entries
//
// uniqueness is by canonical form, the first occurrence keeps its
// position.  Not safe for concurrent use.
type Set struct {
	entries []Entry
	index   map[string]struct{}
}

// NewSet - create a set from a list, dropping duplicates
func NewSet(entries ...Entry) *Set {
	s := &Set{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]struct{}, len(entries)),
	}
	s.Merge(entries)
	return s
}

// Add - append an entry if not already present
func (s *Set) Add(e Entry) bool {
	c := e.Canonical()
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = struct{}{}
	s.entries = append(s.entries, e)
	return true
}

// Merge - union a list into the set, returns the number of new entries
func (s *Set) Merge(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if s.Add(e) {
			n += 1
		}
	}
	return n
}

// Contains - check for an equal entry
func (s *Set) Contains(e Entry) bool {
	_, ok := s.index[e.Canonical()]
	return ok
}

// Len - number of entries
func (s *Set) Len() int {
	return len(s.entries)
}

// Entries - copy of the entries in insertion order, never nil
func (s *Set) Entries() []Entry {
	result := make([]Entry, len(s.entries))
	copy(result, s.entries)
	return result
}
