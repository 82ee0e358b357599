// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entryrecord

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/citationcache/bibentry"
	"github.com/bitmark-inc/citationcache/fault"
)

// UnpackEntry - decode one packed entry
//
// returns the number of bytes consumed as second value.  On a
// framing error nothing is consumed; on a content error the whole
// record is consumed so the caller can continue with the next one.
func UnpackEntry(buffer []byte) (bibentry.Entry, int, error) {
	if len(buffer) < prefixSize {
		return bibentry.Entry{}, 0, fault.ErrTruncatedRecord
	}

	length := int(binary.BigEndian.Uint32(buffer[:prefixSize]))
	if len(buffer)-prefixSize < length {
		return bibentry.Entry{}, 0, fault.ErrTruncatedRecord
	}

	n := prefixSize + length
	data := buffer[prefixSize:n]
	if !utf8.Valid(data) {
		return bibentry.Entry{}, n, fault.ErrUnparseableRecord
	}

	entry, err := bibentry.ParseCanonical(string(data))
	if nil != err {
		return bibentry.Entry{}, n, err
	}
	return entry, n, nil
}

// UnpackSet - decode a packed set
//
// returns the decoded entries in stored order and the number of
// records that were dropped.  The error is only set if the framing
// is damaged, in which case the entries decoded before the damage
// are still returned.
func UnpackSet(buffer []byte) ([]bibentry.Entry, int, error) {
	if len(buffer) < prefixSize {
		return []bibentry.Entry{}, 0, fault.ErrTruncatedRecord
	}

	count := int(binary.BigEndian.Uint32(buffer[:prefixSize]))

	// a damaged count must not cause a huge allocation
	capacity := count
	if limit := (len(buffer) - prefixSize) / prefixSize; capacity > limit {
		capacity = limit
	}
	entries := make([]bibentry.Entry, 0, capacity)

	dropped := 0
	offset := prefixSize
	for i := 0; i < count; i += 1 {
		entry, n, err := UnpackEntry(buffer[offset:])
		if 0 == n {
			return entries, dropped + count - i, err
		}
		offset += n
		if nil != err {
			dropped += 1
			continue
		}
		entries = append(entries, entry)
	}
	return entries, dropped, nil
}
