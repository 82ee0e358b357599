// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package repository - citation and reference lists of bibliographic
// entries
//
// Each kind has its own cache chain, so the two kinds never share
// memory capacity or database files.  Entries without a DOI cannot be
// keys: reads give an empty list and writes are ignored.
package repository

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/citationcache/bibentry"
	"github.com/bitmark-inc/citationcache/fault"
	"github.com/bitmark-inc/citationcache/memory"
	"github.com/bitmark-inc/citationcache/storage"
	"github.com/bitmark-inc/citationcache/tier"
)

// Options - parameters for Open
type Options struct {
	Directory      string        // holds one database per kind
	TTLDays        int           // age at which a list should be fetched again
	MemoryCapacity int           // keys held in memory per kind
	Clock          storage.Clock // nil for the system clock
}

// Repository - relation lists by kind
type Repository struct {
	log    *logger.L
	chains [2]tier.Tier

	// only set by Open
	memories [2]*memory.Tier
	stores   [2]*storage.Store
}

// Statistics - counters of one kind, zero if built with New
type Statistics struct {
	Memory  memory.Statistics
	Storage storage.Statistics
}

// New - repository over the given tiers
func New(citations tier.Tier, references tier.Tier) (*Repository, error) {
	if nil == citations || nil == references {
		return nil, fault.ErrNilTier
	}
	return &Repository{
		log:    logger.New("repository"),
		chains: [2]tier.Tier{citations, references},
	}, nil
}

// Open - repository with a memory tier in front of a persistent tier
// for each kind
func Open(options Options) (*Repository, error) {
	if options.TTLDays < 0 {
		return nil, fault.ErrInvalidTTL
	}
	if options.MemoryCapacity <= 0 {
		return nil, fault.ErrInvalidCapacity
	}

	r := &Repository{
		log: logger.New("repository"),
	}

	for _, kind := range Kinds {
		m, err := memory.New("memory-"+kind.String(), options.MemoryCapacity)
		if nil != err {
			r.Close()
			return nil, err
		}

		fileName := filepath.Join(options.Directory, kind.FileName())
		s := storage.New("storage-"+kind.String(), fileName, options.TTLDays, options.Clock)
		r.stores[kind] = s

		c, err := tier.NewChain("chain-"+kind.String(), m, s)
		if nil != err {
			r.Close()
			return nil, err
		}

		r.memories[kind] = m
		r.chains[kind] = c
	}

	r.log.Infof("directory: %q  ttl: %d days  capacity: %d", options.Directory, options.TTLDays, options.MemoryCapacity)
	return r, nil
}

// Close - release the persistent stores
func (r *Repository) Close() {
	for _, s := range r.stores {
		if nil != s {
			s.Close()
		}
	}
}

func (r *Repository) chain(kind Kind) tier.Tier {
	if kind != Citations && kind != References {
		fault.Panicf("repository: invalid kind: %d", kind)
	}
	return r.chains[kind]
}

// Read - cached list of kind for entry, empty if entry has no DOI or
// nothing is cached
func (r *Repository) Read(kind Kind, entry bibentry.Entry) []bibentry.Entry {
	key, ok := entry.Key()
	if !ok {
		return []bibentry.Entry{}
	}
	return r.chain(kind).GetRelations(key)
}

// Insert - merge records into the list of kind for entry
//
// nil records are an empty list, so the key is still recorded
func (r *Repository) Insert(kind Kind, entry bibentry.Entry, records []bibentry.Entry) {
	key, ok := entry.Key()
	if !ok {
		r.log.Debugf("insert %s: %s", kind, fault.ErrMissingDOI)
		return
	}
	if nil == records {
		records = []bibentry.Entry{}
	}
	r.chain(kind).AddRelations(key, records)
}

// Contains - true if a list of kind is cached for entry
func (r *Repository) Contains(kind Kind, entry bibentry.Entry) bool {
	key, ok := entry.Key()
	if !ok {
		return false
	}
	return r.chain(kind).ContainsKey(key)
}

// IsUpdatable - true if the list of kind for entry should be fetched
// again; always false for an entry without a DOI
func (r *Repository) IsUpdatable(kind Kind, entry bibentry.Entry) bool {
	key, ok := entry.Key()
	if !ok {
		return false
	}
	return r.chain(kind).IsUpdatable(key)
}

// Clear - drop every list of kind
func (r *Repository) Clear(kind Kind) {
	c, ok := r.chain(kind).(tier.Clearer)
	if !ok {
		r.log.Warnf("clear %s: tier cannot be cleared", kind)
		return
	}
	c.Clear()
	r.log.Infof("cleared: %s", kind)
}

// Keys - keys stored on disk for kind
func (r *Repository) Keys(kind Kind) ([]storage.KeyInfo, error) {
	r.chain(kind)
	s := r.stores[kind]
	if nil == s {
		return nil, fault.ErrStoreNotOpen
	}
	return s.Keys()
}

// Statistics - counters of kind
func (r *Repository) Statistics(kind Kind) Statistics {
	r.chain(kind)
	stats := Statistics{}
	if m := r.memories[kind]; nil != m {
		stats.Memory = m.Statistics()
	}
	if s := r.stores[kind]; nil != s {
		stats.Storage = s.Statistics()
	}
	return stats
}

// ReadCitations - cached works citing entry
func (r *Repository) ReadCitations(entry bibentry.Entry) []bibentry.Entry {
	return r.Read(Citations, entry)
}

// ReadReferences - cached works cited by entry
func (r *Repository) ReadReferences(entry bibentry.Entry) []bibentry.Entry {
	return r.Read(References, entry)
}

// InsertCitations - merge works citing entry
func (r *Repository) InsertCitations(entry bibentry.Entry, records []bibentry.Entry) {
	r.Insert(Citations, entry, records)
}

// InsertReferences - merge works cited by entry
func (r *Repository) InsertReferences(entry bibentry.Entry, records []bibentry.Entry) {
	r.Insert(References, entry, records)
}

func (r *Repository) ContainsCitations(entry bibentry.Entry) bool {
	return r.Contains(Citations, entry)
}

func (r *Repository) ContainsReferences(entry bibentry.Entry) bool {
	return r.Contains(References, entry)
}

func (r *Repository) IsCitationsUpdatable(entry bibentry.Entry) bool {
	return r.IsUpdatable(Citations, entry)
}

func (r *Repository) IsReferencesUpdatable(entry bibentry.Entry) bool {
	return r.IsUpdatable(References, entry)
}

func (r *Repository) ClearCitations() {
	r.Clear(Citations)
}

func (r *Repository) ClearReferences() {
	r.Clear(References)
}
