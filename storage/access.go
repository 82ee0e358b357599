// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/citationcache/fault"
)

// Access - batched writes over one database
//
// writes between Begin and Commit are applied in a single atomic
// batch; reads see the pending writes
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - LevelDB implementation of Access
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionInUse
	}

	d.inUse = true
	return nil
}

func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch and end the transaction
//
// the transaction ends even if the write fails
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	var err error
	if d.batch.Len() > 0 {
		err = d.db.Write(d.batch, nil)
	}
	d.reset()
	return err
}

// Abort - drop the batch and end the transaction
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.reset()
}

func (d *AccessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// Get - read a value, nil if not found
func (d *AccessData) Get(key []byte) ([]byte, error) {
	value, op, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op {
			return nil, nil
		}
		return value, nil
	}

	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

func (d *AccessData) Has(key []byte) (bool, error) {
	_, op, found := d.cache.Get(string(key))
	if found {
		return dbPut == op, nil
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Iterator - iterate committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
