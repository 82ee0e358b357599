// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entryrecord - binary records for persisting entries
//
// Notes:
// 1. ++       = concatenation of byte data
// 2. length   = big endian uint32 (4 bytes)
// 3. count    = big endian uint32 (4 bytes)
// 4. canonical = UTF-8 canonical form from bibentry
//
// Entry:
//
//   length ++ canonical
//
// Set:
//
//   count ++ (entry ++ entry ++ ...)
//
// A record whose canonical form cannot be parsed is skipped; the
// length prefix still allows decoding to continue with the next one.
// Damage to the framing itself stops decoding at that point.
package entryrecord
