// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bibentry

import (
	"fmt"
)

// Entry - a bibliographic record
type Entry struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title,omitempty"`
	Year     string `json:"year,omitempty"`
	Author   string `json:"author,omitempty"`
	DOI      string `json:"doi,omitempty"`
	URL      string `json:"url,omitempty"`
	Abstract string `json:"abstract,omitempty"`
}

// Key - the relation key of the entry
//
// second value is false if the entry has no parseable DOI, such an
// entry cannot be used as a key but can appear in a relation list
func (e Entry) Key() (DOI, bool) {
	return ParseDOI(e.DOI)
}

// IsEmpty - true if no field is set
func (e Entry) IsEmpty() bool {
	return e == Entry{}
}

// String - short form for log messages
func (e Entry) String() string {
	if "" == e.DOI {
		return fmt.Sprintf("%q", e.Title)
	}
	return fmt.Sprintf("%q (%s)", e.Title, e.DOI)
}
