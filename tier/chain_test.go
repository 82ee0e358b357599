// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tier_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/citationcache/bibentry"
	"github.com/bitmark-inc/citationcache/fault"
	"github.com/bitmark-inc/citationcache/tier"
	"github.com/bitmark-inc/citationcache/tier/mocks"
)

func TestEmptyChain(t *testing.T) {
	c, err := tier.NewChain("testing")
	require.NoError(t, err)

	entries := c.GetRelations(testKey)
	assert.NotNil(t, entries)
	assert.Equal(t, 0, len(entries))
	assert.False(t, c.ContainsKey(testKey))
	assert.True(t, c.IsUpdatable(testKey), "an empty chain must always warrant a fetch")

	c.AddRelations(testKey, []bibentry.Entry{entryA})
	assert.False(t, c.ContainsKey(testKey))
}

func TestNilTier(t *testing.T) {
	_, err := tier.NewChain("testing", newCountingTier(), nil)
	assert.Equal(t, fault.ErrNilTier, err)
}

func TestBackfill(t *testing.T) {
	fast := newCountingTier()
	slow := newCountingTier()
	slow.AddRelations(testKey, []bibentry.Entry{entryA, entryB})

	c, err := tier.NewChain("testing", fast, slow)
	require.NoError(t, err)

	entries := c.GetRelations(testKey)
	assert.Equal(t, []bibentry.Entry{entryA, entryB}, entries)
	assert.True(t, fast.ContainsKey(testKey), "fast tier must be filled")
	assert.Equal(t, 1, slow.gets)

	entries = c.GetRelations(testKey)
	assert.Equal(t, []bibentry.Entry{entryA, entryB}, entries)
	assert.Equal(t, 1, slow.gets, "second read must not touch the slow tier")
	assert.Equal(t, 2, fast.gets, "fast tier re-read after backfill plus second read")
}

func TestBackfillReturnsFastTierContent(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	fast := mocks.NewMockTier(ctl)
	slow := mocks.NewMockTier(ctl)

	stored := []bibentry.Entry{entryA, entryB}
	normalised := []bibentry.Entry{entryA}

	gomock.InOrder(
		fast.EXPECT().ContainsKey(testKey).Return(false).Times(1),
		slow.EXPECT().ContainsKey(testKey).Return(true).Times(1),
		slow.EXPECT().GetRelations(testKey).Return(stored).Times(1),
		fast.EXPECT().AddRelations(testKey, stored).Times(1),
		fast.EXPECT().GetRelations(testKey).Return(normalised).Times(1),
	)

	c, err := tier.NewChain("testing", fast, slow)
	require.NoError(t, err)

	assert.Equal(t, normalised, c.GetRelations(testKey))
}

func TestMissDoesNotBackfill(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	fast := mocks.NewMockTier(ctl)
	slow := mocks.NewMockTier(ctl)

	fast.EXPECT().ContainsKey(testKey).Return(false).Times(1)
	slow.EXPECT().ContainsKey(testKey).Return(false).Times(1)

	c, err := tier.NewChain("testing", fast, slow)
	require.NoError(t, err)

	entries := c.GetRelations(testKey)
	assert.Equal(t, []bibentry.Entry{}, entries)
}

func TestHitInFastTier(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	fast := mocks.NewMockTier(ctl)
	slow := mocks.NewMockTier(ctl)

	fast.EXPECT().ContainsKey(testKey).Return(true).Times(1)
	fast.EXPECT().GetRelations(testKey).Return([]bibentry.Entry{entryC}).Times(1)

	c, err := tier.NewChain("testing", fast, slow)
	require.NoError(t, err)

	assert.Equal(t, []bibentry.Entry{entryC}, c.GetRelations(testKey))
}

func TestAddRelationsWritesEveryTier(t *testing.T) {
	fast := newCountingTier()
	slow := newCountingTier()

	c, err := tier.NewChain("testing", fast, slow)
	require.NoError(t, err)

	c.AddRelations(testKey, []bibentry.Entry{entryA, entryB})
	c.AddRelations(testKey, []bibentry.Entry{entryB, entryC})

	expected := []bibentry.Entry{entryA, entryB, entryC}
	assert.Equal(t, expected, fast.GetRelations(testKey))
	assert.Equal(t, expected, slow.GetRelations(testKey))
	assert.Equal(t, expected, c.GetRelations(testKey))
}

func TestAddNilRelations(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	only := mocks.NewMockTier(ctl)
	only.EXPECT().AddRelations(testKey, []bibentry.Entry{}).Times(1)

	c, err := tier.NewChain("testing", only)
	require.NoError(t, err)

	c.AddRelations(testKey, nil)
}

func TestIsUpdatableIsConjunction(t *testing.T) {
	items := []struct {
		fast     bool
		slow     bool
		expected bool
	}{
		{true, true, true},
		{true, false, false},
		{false, true, false},
		{false, false, false},
	}

	for i, item := range items {
		fast := newCountingTier()
		fast.updatable = item.fast
		slow := newCountingTier()
		slow.updatable = item.slow

		c, err := tier.NewChain("testing", fast, slow)
		require.NoError(t, err)
		assert.Equal(t, item.expected, c.IsUpdatable(testKey), "%d: fast: %t  slow: %t", i, item.fast, item.slow)
	}
}

func TestNestedChain(t *testing.T) {
	first := newCountingTier()
	second := newCountingTier()
	third := newCountingTier()
	third.AddRelations(testKey, []bibentry.Entry{entryC})

	inner, err := tier.NewChain("testing", second, third)
	require.NoError(t, err)
	outer, err := tier.NewChain("testing", first, inner)
	require.NoError(t, err)

	assert.Equal(t, []bibentry.Entry{entryC}, outer.GetRelations(testKey))
	assert.True(t, first.ContainsKey(testKey))
	assert.True(t, second.ContainsKey(testKey))
}

func TestClear(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	clearable := newCountingTier()
	clearable.AddRelations(testKey, []bibentry.Entry{entryA})
	plain := mocks.NewMockTier(ctl)

	c, err := tier.NewChain("testing", clearable, plain)
	require.NoError(t, err)

	c.Clear()
	assert.Equal(t, 1, clearable.cleared)
	assert.False(t, clearable.ContainsKey(testKey))
}
