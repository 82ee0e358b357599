// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/citationcache/fault"
)

// PoolHandle - one prefixed key space of a database
type PoolHandle struct {
	prefix byte
	limit  []byte
	access Access
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

func (p *PoolHandle) keyRange() *ldb_util.Range {
	return &ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}
}

// Put - store a key/value bytes pair in the current transaction
func (p *PoolHandle) Put(key []byte, value []byte) {
	p.access.Put(p.prefixKey(key), value)
}

// PutN - store a big endian uint64 in the current transaction
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.access.Put(p.prefixKey(key), buffer)
}

// Delete - remove a key in the current transaction
func (p *PoolHandle) Delete(key []byte) {
	p.access.Delete(p.prefixKey(key))
}

// Get - read a value for a given key, nil if not found
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	return p.access.Get(p.prefixKey(key))
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool, error) {
	buffer, err := p.Get(key)
	if nil != err {
		return 0, false, err
	}
	if nil == buffer {
		return 0, false, nil
	}
	if len(buffer) < 8 {
		return 0, false, fault.ErrTruncatedTimestamp
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true, nil
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	return p.access.Has(p.prefixKey(key))
}

// Elements - copy of every committed element in the pool, prefix stripped
func (p *PoolHandle) Elements() ([]Element, error) {
	iter := p.access.Iterator(p.keyRange())

	result := make([]Element, 0)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result = append(result, Element{
			Key:   dataKey,
			Value: dataValue,
		})
	}
	iter.Release()
	return result, iter.Error()
}

// Clear - delete every committed key of the pool in the current transaction
//
// returns the number of keys deleted
func (p *PoolHandle) Clear() (int, error) {
	iter := p.access.Iterator(p.keyRange())

	n := 0
	for iter.Next() {
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		p.access.Delete(key)
		n += 1
	}
	iter.Release()
	return n, iter.Error()
}
