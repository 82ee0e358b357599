// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package search - relation lookups that fetch from a remote service
// only when the cached list is missing or stale
package search

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/citationcache/bibentry"
	"github.com/bitmark-inc/citationcache/counter"
	"github.com/bitmark-inc/citationcache/fault"
	"github.com/bitmark-inc/citationcache/repository"
)

// Repository - the cache operations the service needs
type Repository interface {
	Read(repository.Kind, bibentry.Entry) []bibentry.Entry
	Insert(repository.Kind, bibentry.Entry, []bibentry.Entry)
	Contains(repository.Kind, bibentry.Entry) bool
	IsUpdatable(repository.Kind, bibentry.Entry) bool
}

// FetchError - a failed remote lookup
type FetchError struct {
	Kind repository.Kind
	DOI  bibentry.DOI
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s of %s: %s", e.Kind, e.DOI, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Service - cache backed relation search
type Service struct {
	log        *logger.L
	fetcher    Fetcher
	repository Repository

	fetches  counter.Counter
	failures counter.Counter
}

// Statistics - remote lookup counters
type Statistics struct {
	Fetches  uint64
	Failures uint64
}

// New - service fetching with fetcher and caching in repository
func New(fetcher Fetcher, repo Repository) (*Service, error) {
	if nil == fetcher {
		return nil, fault.ErrFetcherIsNil
	}
	if nil == repo {
		return nil, fault.ErrNotInitialised
	}
	return &Service{
		log:        logger.New("search"),
		fetcher:    fetcher,
		repository: repo,
	}, nil
}

// SearchCitations - works citing entry
func (s *Service) SearchCitations(entry bibentry.Entry) ([]bibentry.Entry, error) {
	return s.search(repository.Citations, entry, s.fetcher.SearchCitedBy)
}

// SearchReferences - works cited by entry
func (s *Service) SearchReferences(entry bibentry.Entry) ([]bibentry.Entry, error) {
	return s.search(repository.References, entry, s.fetcher.SearchCites)
}

// fetch if the list is absent or stale, then return the cached list
//
// on a fetch error the cached list is returned with the error
func (s *Service) search(kind repository.Kind, entry bibentry.Entry, fetch func(bibentry.Entry) ([]bibentry.Entry, error)) ([]bibentry.Entry, error) {
	key, ok := entry.Key()
	if !ok {
		s.log.Debugf("%s: skip entry without DOI: %s", kind, entry)
		return []bibentry.Entry{}, nil
	}

	if s.repository.Contains(kind, entry) && !s.repository.IsUpdatable(kind, entry) {
		return s.repository.Read(kind, entry), nil
	}

	s.fetches.Increment()
	records, err := fetch(entry)
	if nil != err {
		s.failures.Increment()
		s.log.Warnf("%s: %s  fetch error: %s", kind, key, err)
		return s.repository.Read(kind, entry), &FetchError{
			Kind: kind,
			DOI:  key,
			Err:  err,
		}
	}

	s.log.Debugf("%s: %s  fetched: %d", kind, key, len(records))
	s.repository.Insert(kind, entry, records)
	return s.repository.Read(kind, entry), nil
}

// Statistics - current counters
func (s *Service) Statistics() Statistics {
	return Statistics{
		Fetches:  s.fetches.Uint64(),
		Failures: s.failures.Uint64(),
	}
}
