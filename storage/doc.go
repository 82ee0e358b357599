// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the persistent relation tier
//
// Each relation kind has its own LevelDB database.  The database is
// split into pools, each defined by a prefix byte obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++        = concatenation of byte data
// 3. doi       = the DOI string as UTF-8 bytes, case preserved
// 4. timestamp = big endian uint64 (8 bytes), UTC nanoseconds since 1970
// 5. packed set = entryrecord.PackSet format
//
// Version:
//
//   0x00 ++ "VERSION"          - database format version
//                                data: big endian uint32 (4 bytes)
//
// Relations:
//
//   R ++ doi                   - relation list
//                                data: packed set
//
// Timestamps:
//
//   T ++ doi                   - time of the last merge into the list
//                                data: timestamp
//
// A merge writes both R and T records in a single batch so a key
// with a relation list always has a timestamp.
package storage
