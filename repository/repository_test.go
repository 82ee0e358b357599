// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository_test

import (
	"io/ioutil"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/citationcache/bibentry"
	"github.com/bitmark-inc/citationcache/fault"
	"github.com/bitmark-inc/citationcache/repository"
	"github.com/bitmark-inc/citationcache/tier/mocks"
)

func openRepository(t *testing.T, ttlDays int, clock *fakeClock) (*repository.Repository, string) {
	dir, err := ioutil.TempDir(testDirectory, "relations")
	require.Nil(t, err, "temp dir")

	r, err := repository.Open(repository.Options{
		Directory:      dir,
		TTLDays:        ttlDays,
		MemoryCapacity: capacity,
		Clock:          clock,
	})
	require.Nil(t, err, "open repository")
	return r, dir
}

func TestNewRejectsNilTier(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, err := repository.New(mocks.NewMockTier(ctl), nil)
	assert.Equal(t, fault.ErrNilTier, err, "nil references")

	_, err = repository.New(nil, mocks.NewMockTier(ctl))
	assert.Equal(t, fault.ErrNilTier, err, "nil citations")
}

func TestOpenRejectsBadOptions(t *testing.T) {
	_, err := repository.Open(repository.Options{Directory: testDirectory, TTLDays: -1, MemoryCapacity: 1})
	assert.Equal(t, fault.ErrInvalidTTL, err, "negative ttl")

	_, err = repository.Open(repository.Options{Directory: testDirectory, TTLDays: 1, MemoryCapacity: 0})
	assert.Equal(t, fault.ErrInvalidCapacity, err, "zero capacity")
}

func TestEntryWithoutDOINeverTouchesTiers(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no expectations: any tier call fails the test
	r, err := repository.New(mocks.NewMockTier(ctl), mocks.NewMockTier(ctl))
	require.Nil(t, err, "new repository")

	assert.Equal(t, []bibentry.Entry{}, r.ReadCitations(noDOI), "citations")
	assert.Equal(t, []bibentry.Entry{}, r.ReadReferences(noDOI), "references")
	assert.False(t, r.ContainsCitations(noDOI), "contains citations")
	assert.False(t, r.ContainsReferences(noDOI), "contains references")
	assert.False(t, r.IsCitationsUpdatable(noDOI), "citations updatable")
	assert.False(t, r.IsReferencesUpdatable(noDOI), "references updatable")

	r.InsertCitations(noDOI, []bibentry.Entry{recordA})
	r.InsertReferences(noDOI, nil)
}

func TestDelegatesToKindTier(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	citations := mocks.NewMockTier(ctl)
	references := mocks.NewMockTier(ctl)

	citations.EXPECT().GetRelations(testKey).Return([]bibentry.Entry{recordA}).Times(1)
	citations.EXPECT().ContainsKey(testKey).Return(true).Times(1)
	citations.EXPECT().IsUpdatable(testKey).Return(false).Times(1)
	citations.EXPECT().AddRelations(testKey, []bibentry.Entry{recordB}).Times(1)

	references.EXPECT().AddRelations(testKey, []bibentry.Entry{}).Times(1)
	references.EXPECT().IsUpdatable(testKey).Return(true).Times(1)

	r, err := repository.New(citations, references)
	require.Nil(t, err, "new repository")

	assert.Equal(t, []bibentry.Entry{recordA}, r.ReadCitations(source), "read citations")
	assert.True(t, r.ContainsCitations(source), "contains citations")
	assert.False(t, r.IsCitationsUpdatable(source), "citations updatable")
	r.InsertCitations(source, []bibentry.Entry{recordB})

	r.InsertReferences(source, nil)
	assert.True(t, r.IsReferencesUpdatable(source), "references updatable")
}

func TestFetchAndInsertScenario(t *testing.T) {
	clock := newFakeClock()
	r, _ := openRepository(t, 30, clock)
	defer r.Close()

	assert.False(t, r.ContainsCitations(source), "contains before insert")
	assert.True(t, r.IsCitationsUpdatable(source), "not updatable before insert")

	r.InsertCitations(source, []bibentry.Entry{recordA, recordB})
	assert.Equal(t, []bibentry.Entry{recordA, recordB}, r.ReadCitations(source), "first insert")

	clock.Advance(time.Minute)
	assert.True(t, r.ContainsCitations(source), "not contained after insert")
	assert.False(t, r.IsCitationsUpdatable(source), "updatable after insert")

	r.InsertCitations(source, []bibentry.Entry{recordB, recordC})
	assert.Equal(t, []bibentry.Entry{recordA, recordB, recordC}, r.ReadCitations(source), "second insert")
}

func TestKindsAreIndependent(t *testing.T) {
	r, _ := openRepository(t, 30, newFakeClock())
	defer r.Close()

	r.InsertCitations(source, []bibentry.Entry{recordA})

	assert.True(t, r.ContainsCitations(source), "citations missing")
	assert.False(t, r.ContainsReferences(source), "references share citations")
	assert.Equal(t, []bibentry.Entry{}, r.ReadReferences(source), "references returned citations")

	r.InsertReferences(source, []bibentry.Entry{recordC})
	r.ClearCitations()

	assert.False(t, r.ContainsCitations(source), "citations survived clear")
	assert.Equal(t, []bibentry.Entry{recordC}, r.ReadReferences(source), "clear crossed kinds")

	r.ClearReferences()
	assert.False(t, r.ContainsReferences(source), "references survived clear")
}

func TestInsertNilRecordsIsRecorded(t *testing.T) {
	clock := newFakeClock()
	r, _ := openRepository(t, 30, clock)
	defer r.Close()

	r.InsertReferences(source, nil)
	clock.Advance(time.Second)

	assert.True(t, r.ContainsReferences(source), "empty list not recorded")
	assert.Equal(t, []bibentry.Entry{}, r.ReadReferences(source), "empty list has entries")
	assert.False(t, r.IsReferencesUpdatable(source), "just looked up list is updatable")
}

func TestPersistsAcrossOpen(t *testing.T) {
	clock := newFakeClock()
	r, dir := openRepository(t, 7, clock)

	r.InsertCitations(source, []bibentry.Entry{recordA, recordB})
	r.Close()

	clock.Advance(oneDay)
	r, err := repository.Open(repository.Options{
		Directory:      dir,
		TTLDays:        7,
		MemoryCapacity: capacity,
		Clock:          clock,
	})
	require.Nil(t, err, "reopen")
	defer r.Close()

	assert.Equal(t, []bibentry.Entry{recordA, recordB}, r.ReadCitations(source), "citations after reopen")
	assert.False(t, r.IsCitationsUpdatable(source), "fresh list updatable after reopen")

	stats := r.Statistics(repository.Citations)
	assert.Equal(t, 1, stats.Memory.Entries, "read did not backfill memory")

	clock.Advance(7 * oneDay)
	assert.True(t, r.IsCitationsUpdatable(source), "old list not updatable")
	assert.Equal(t, []bibentry.Entry{recordA, recordB}, r.ReadCitations(source), "stale list not served")
}

func TestKeys(t *testing.T) {
	r, _ := openRepository(t, 30, newFakeClock())
	defer r.Close()

	r.InsertReferences(source, []bibentry.Entry{recordA})

	keys, err := r.Keys(repository.References)
	require.Nil(t, err, "keys")
	require.Equal(t, 1, len(keys), "key count")
	assert.Equal(t, testKey, keys[0].DOI, "key")

	keys, err = r.Keys(repository.Citations)
	require.Nil(t, err, "keys")
	assert.Equal(t, 0, len(keys), "citations keys")
}

func TestKeysNeedsPersistentTier(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r, err := repository.New(mocks.NewMockTier(ctl), mocks.NewMockTier(ctl))
	require.Nil(t, err, "new repository")

	_, err = r.Keys(repository.Citations)
	assert.Equal(t, fault.ErrStoreNotOpen, err, "keys without a store")
}

func TestInvalidKindPanics(t *testing.T) {
	r, _ := openRepository(t, 30, newFakeClock())
	defer r.Close()

	assert.Panics(t, func() {
		r.Read(repository.Kind(7), source)
	}, "invalid kind accepted")
}
