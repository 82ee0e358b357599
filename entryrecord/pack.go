// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entryrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/citationcache/bibentry"
)

// size of the length and count prefixes
const prefixSize = 4

// PackEntry - length prefixed canonical form of an entry
func PackEntry(entry bibentry.Entry) []byte {
	return appendEntry(nil, entry)
}

// PackSet - count prefixed sequence of packed entries
//
// the order of the list is preserved
func PackSet(entries []bibentry.Entry) []byte {
	buffer := make([]byte, prefixSize, prefixSize+len(entries)*64)
	binary.BigEndian.PutUint32(buffer, uint32(len(entries)))
	for _, entry := range entries {
		buffer = appendEntry(buffer, entry)
	}
	return buffer
}

func appendEntry(buffer []byte, entry bibentry.Entry) []byte {
	canonical := entry.Canonical()

	length := make([]byte, prefixSize)
	binary.BigEndian.PutUint32(length, uint32(len(canonical)))

	buffer = append(buffer, length...)
	return append(buffer, canonical...)
}

// EntrySize - number of bytes PackEntry produces
func EntrySize(entry bibentry.Entry) int {
	return prefixSize + len(entry.Canonical())
}

// SetSize - number of bytes PackSet produces
func SetSize(entries []bibentry.Entry) int {
	n := prefixSize
	for _, entry := range entries {
		n += EntrySize(entry)
	}
	return n
}
