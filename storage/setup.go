// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_errors "github.com/syndtr/goleveldb/leveldb/errors"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/citationcache/fault"
	"github.com/bitmark-inc/logger"
)

// the pools of one relation database
//
// note all must be exported (i.e. initial capital) or initialisation will fail
type pools struct {
	Relations  *PoolHandle `prefix:"R"`
	Timestamps *PoolHandle `prefix:"T"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 1
)

// open the database, salvaging it if LevelDB reports corruption,
// then check or stamp its version
func openDB(name string, log *logger.L) (*leveldb.DB, error) {
	db, version, err := getDB(name)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		db.Close()
		log.Criticalf("database: %q  version: %d > current version: %d", name, version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version {
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

// return:
//   database handle
//   version number
func getDB(name string) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}

	db, err := leveldb.OpenFile(name, opt)
	if ldb_errors.IsCorrupted(err) {
		db, err = leveldb.RecoverFile(name, opt)
	}
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// bind each pool field to its prefix over the given access
func newPools(access Access) (pools, error) {
	var p pools

	// this will be a struct type
	poolType := reflect.TypeOf(p)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&p).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return p, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		handle := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			access: access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(handle))
	}
	return p, nil
}
