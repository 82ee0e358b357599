// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/citationcache/bibentry"
	"github.com/bitmark-inc/citationcache/counter"
	"github.com/bitmark-inc/citationcache/entryrecord"
	"github.com/bitmark-inc/citationcache/fault"
)

// Store - persistent relation tier over one LevelDB database
//
// a store that cannot be opened behaves as if empty: reads miss and
// every key is updatable; the open is retried on the next write
type Store struct {
	sync.RWMutex // merges and clears are exclusive

	log      *logger.L
	fileName string
	ttlDays  int
	clock    Clock

	db     *leveldb.DB
	access Access
	pool   pools

	written counter.Counter
	dropped counter.Counter
}

// Statistics - snapshot of the store counters
type Statistics struct {
	Open         bool
	BytesWritten uint64
	Dropped      uint64
}

// KeyInfo - a stored key with the time of its last merge
type KeyInfo struct {
	DOI        bibentry.DOI
	InsertedAt time.Time
	Updatable  bool
}

// New - open or create the store at fileName
//
// the name is used as the log channel tag; a nil clock means the
// system clock.  Failures are logged, never returned.
func New(name string, fileName string, ttlDays int, clock Clock) *Store {
	s := &Store{
		log:      logger.New(name),
		fileName: fileName,
		ttlDays:  ttlDays,
		clock:    clock,
	}

	if ttlDays < 0 {
		s.log.Warnf("negative ttl: %d  using: 0", ttlDays)
		s.ttlDays = 0
	}
	if nil == s.clock {
		s.clock = SystemClock
	}

	s.Lock()
	defer s.Unlock()

	err := os.MkdirAll(filepath.Dir(fileName), 0700)
	if nil != err {
		s.log.Errorf("create directory for: %q  error: %s", fileName, err)
		return s
	}

	s.open()
	return s
}

// write lock must be held
func (s *Store) open() error {
	if nil != s.db {
		return nil
	}

	db, err := openDB(s.fileName, s.log)
	if nil != err {
		s.log.Errorf("open: %q  error: %s", s.fileName, err)
		return err
	}

	access := newDA(db, newCache())
	p, err := newPools(access)
	if nil != err {
		db.Close()
		s.log.Criticalf("pools: %q  error: %s", s.fileName, err)
		return err
	}

	s.db = db
	s.access = access
	s.pool = p

	s.log.Infof("open: %q  ttl: %d days", s.fileName, s.ttlDays)
	return nil
}

// Close - release the database, the store then behaves as not opened
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return
	}
	err := s.db.Close()
	if nil != err {
		s.log.Errorf("close: %q  error: %s", s.fileName, err)
	}
	s.db = nil
	s.access = nil
	s.log.Infof("closed: %q", s.fileName)
}

// IsOpen - true if the database is available
func (s *Store) IsOpen() bool {
	s.RLock()
	defer s.RUnlock()
	return nil != s.db
}

// GetRelations - stored relation list for key, empty if absent
//
// records that fail to decode are dropped
func (s *Store) GetRelations(key bibentry.DOI) []bibentry.Entry {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return []bibentry.Entry{}
	}

	entries, err := s.read(key)
	if nil != err {
		s.log.Errorf("get: %s  error: %s", key, err)
		return []bibentry.Entry{}
	}
	return entries
}

// read and decode the stored list, nil error for a damaged record
func (s *Store) read(key bibentry.DOI) ([]bibentry.Entry, error) {
	data, err := s.pool.Relations.Get([]byte(key))
	if nil != err {
		return nil, err
	}
	if nil == data {
		return []bibentry.Entry{}, nil
	}

	entries, dropped, err := entryrecord.UnpackSet(data)
	if nil != err {
		s.log.Warnf("key: %s  damaged relation record: %s", key, err)
	}
	if dropped > 0 {
		s.dropped.Add(uint64(dropped))
		s.log.Warnf("key: %s  dropped: %d undecodable entries", key, dropped)
	}
	return entries, nil
}

// AddRelations - union entries into the stored list for key and set
// its timestamp to now
func (s *Store) AddRelations(key bibentry.DOI, entries []bibentry.Entry) {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		err := s.open()
		if nil != err {
			return
		}
	}

	err := s.merge(key, entries)
	if nil != err {
		s.log.Errorf("add: %s  error: %s", key, err)
	}
}

// write lock must be held
func (s *Store) merge(key bibentry.DOI, entries []bibentry.Entry) error {
	err := s.access.Begin()
	if nil != err {
		return err
	}

	existing, err := s.read(key)
	if nil != err {
		s.access.Abort()
		return err
	}

	set := bibentry.NewSet(existing...)
	added := set.Merge(entries)
	merged := set.Entries()

	k := []byte(key)
	packed := entryrecord.PackSet(merged)
	s.pool.Relations.Put(k, packed)
	s.pool.Timestamps.PutN(k, uint64(s.clock.Now().UTC().UnixNano()))

	err = s.access.Commit()
	if nil != err {
		return err
	}

	s.written.Add(uint64(entryrecord.SetSize(merged)))
	s.log.Debugf("add: %s  new: %d  total: %d", key, added, len(merged))
	return nil
}

// ContainsKey - true if a list, even an empty one, is stored for key
func (s *Store) ContainsKey(key bibentry.DOI) bool {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return false
	}

	found, err := s.pool.Relations.Has([]byte(key))
	if nil != err {
		s.log.Errorf("contains: %s  error: %s", key, err)
		return false
	}
	return found
}

// IsUpdatable - staleness of key at the current clock time
func (s *Store) IsUpdatable(key bibentry.DOI) bool {
	return s.IsUpdatableAt(key, s.clock.Now())
}

// IsUpdatableAt - true if key has no timestamp, was stamped exactly
// at now, or was stamped before now less the time to live
func (s *Store) IsUpdatableAt(key bibentry.DOI, now time.Time) bool {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return true
	}

	stamp, found, err := s.timestamp(key)
	if nil != err {
		s.log.Errorf("updatable: %s  error: %s", key, err)
		return true
	}
	if !found {
		return true
	}
	return isStale(stamp, now.UTC(), s.ttlDays)
}

func isStale(stamp time.Time, now time.Time, ttlDays int) bool {
	if stamp.Equal(now) {
		return true
	}
	return stamp.Before(now.AddDate(0, 0, -ttlDays))
}

func (s *Store) timestamp(key bibentry.DOI) (time.Time, bool, error) {
	n, found, err := s.pool.Timestamps.GetN([]byte(key))
	if nil != err || !found {
		return time.Time{}, false, err
	}
	return time.Unix(0, int64(n)).UTC(), true, nil
}

// Clear - delete every stored list and timestamp
func (s *Store) Clear() {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		err := s.open()
		if nil != err {
			return
		}
	}

	err := s.access.Begin()
	if nil != err {
		s.log.Errorf("clear: %q  error: %s", s.fileName, err)
		return
	}

	n, err := s.pool.Relations.Clear()
	if nil == err {
		_, err = s.pool.Timestamps.Clear()
	}
	if nil != err {
		s.access.Abort()
		s.log.Errorf("clear: %q  error: %s", s.fileName, err)
		return
	}

	err = s.access.Commit()
	if nil != err {
		s.log.Errorf("clear: %q  error: %s", s.fileName, err)
		return
	}
	s.log.Infof("cleared: %q  keys: %d", s.fileName, n)
}

// Keys - every stored key with its timestamp, in key order
func (s *Store) Keys() ([]KeyInfo, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrStoreNotOpen
	}

	elements, err := s.pool.Relations.Elements()
	if nil != err {
		return nil, err
	}

	now := s.clock.Now().UTC()
	keys := make([]KeyInfo, 0, len(elements))
	for _, e := range elements {
		key := bibentry.DOI(e.Key)
		info := KeyInfo{
			DOI:       key,
			Updatable: true,
		}
		stamp, found, err := s.timestamp(key)
		if nil != err {
			s.log.Warnf("key: %s  timestamp error: %s", key, err)
		} else if found {
			info.InsertedAt = stamp
			info.Updatable = isStale(stamp, now, s.ttlDays)
		}
		keys = append(keys, info)
	}
	return keys, nil
}

// Statistics - current counters
func (s *Store) Statistics() Statistics {
	return Statistics{
		Open:         s.IsOpen(),
		BytesWritten: s.written.Uint64(),
		Dropped:      s.dropped.Uint64(),
	}
}
