// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import (
	"github.com/bitmark-inc/citationcache/bibentry"
)

// Fetcher - remote lookup of relation lists
type Fetcher interface {
	// works citing the entry
	SearchCitedBy(bibentry.Entry) ([]bibentry.Entry, error)

	// works the entry cites
	SearchCites(bibentry.Entry) ([]bibentry.Entry, error)
}
