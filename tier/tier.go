// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tier - one level of the relation cache and the chain that
// composes levels into a single cache
package tier

import (
	"github.com/bitmark-inc/citationcache/bibentry"
)

// Tier - a cache level holding relation lists by DOI
//
// implementations must not return errors or panic on storage
// problems; a failing tier behaves as if it held nothing
type Tier interface {
	// relation list for key, empty (not nil) if absent
	GetRelations(bibentry.DOI) []bibentry.Entry

	// union the entries into the list for key, keeping existing order
	AddRelations(bibentry.DOI, []bibentry.Entry)

	// true if anything, even an empty list, was stored for key
	ContainsKey(bibentry.DOI) bool

	// true if the stored list is old enough to fetch again
	IsUpdatable(bibentry.DOI) bool
}

// Clearer - a tier that can drop all of its content
type Clearer interface {
	Clear()
}
