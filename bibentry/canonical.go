// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bibentry

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/bitmark-inc/citationcache/fault"
)

// CanonicalVersion - version written into every canonical form
const CanonicalVersion = 1

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// field order is fixed by the struct, null is the absent placeholder
type canonicalForm struct {
	Version  int     `json:"v"`
	Type     *string `json:"type"`
	Title    *string `json:"title"`
	Year     *string `json:"year"`
	Author   *string `json:"author"`
	DOI      *string `json:"doi"`
	URL      *string `json:"url"`
	Abstract *string `json:"abstract"`
}

func optional(s string) *string {
	if "" == s {
		return nil
	}
	return &s
}

func value(p *string) string {
	if nil == p {
		return ""
	}
	return *p
}

// Canonical - the canonical string form of an entry
func (e Entry) Canonical() string {
	form := canonicalForm{
		Version:  CanonicalVersion,
		Type:     optional(e.Type),
		Title:    optional(e.Title),
		Year:     optional(e.Year),
		Author:   optional(e.Author),
		DOI:      optional(e.DOI),
		URL:      optional(e.URL),
		Abstract: optional(e.Abstract),
	}
	s, err := json.MarshalToString(form)
	if nil != err {
		// only strings and an int, so this is unreachable
		panic("canonical form: " + err.Error())
	}
	return s
}

// ParseCanonical - reverse of Canonical
//
// fields missing from the input are left empty, unknown fields are
// ignored, a different version number is an error
func ParseCanonical(s string) (Entry, error) {
	if 0 == len(s) {
		return Entry{}, fault.ErrZeroLengthRecord
	}

	var form canonicalForm
	if err := json.UnmarshalFromString(s, &form); nil != err {
		return Entry{}, fault.ErrUnparseableRecord
	}
	if CanonicalVersion != form.Version {
		return Entry{}, fault.ErrRecordVersion
	}

	return Entry{
		Type:     value(form.Type),
		Title:    value(form.Title),
		Year:     value(form.Year),
		Author:   value(form.Author),
		DOI:      value(form.DOI),
		URL:      value(form.URL),
		Abstract: value(form.Abstract),
	}, nil
}
