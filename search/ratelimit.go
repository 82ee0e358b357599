// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/citationcache/bibentry"
	"github.com/bitmark-inc/citationcache/fault"
)

// RateLimitedFetcher - a fetcher that waits for a limiter token
// before each remote call
type RateLimitedFetcher struct {
	fetcher Fetcher
	limiter *rate.Limiter
}

// NewLimiter - limiter allowing requestsPerSecond with the given burst
func NewLimiter(requestsPerSecond float64, burst int) (*rate.Limiter, error) {
	if requestsPerSecond <= 0 {
		return nil, fault.ErrInvalidRate
	}
	if burst <= 0 {
		return nil, fault.ErrInvalidBurst
	}
	return rate.NewLimiter(rate.Limit(requestsPerSecond), burst), nil
}

// NewRateLimitedFetcher - wrap fetcher with limiter
func NewRateLimitedFetcher(fetcher Fetcher, limiter *rate.Limiter) (*RateLimitedFetcher, error) {
	if nil == fetcher {
		return nil, fault.ErrFetcherIsNil
	}
	if nil == limiter {
		return nil, fault.ErrInvalidRate
	}
	return &RateLimitedFetcher{
		fetcher: fetcher,
		limiter: limiter,
	}, nil
}

func (f *RateLimitedFetcher) SearchCitedBy(entry bibentry.Entry) ([]bibentry.Entry, error) {
	if err := limit(f.limiter); nil != err {
		return nil, err
	}
	return f.fetcher.SearchCitedBy(entry)
}

func (f *RateLimitedFetcher) SearchCites(entry bibentry.Entry) ([]bibentry.Entry, error) {
	if err := limit(f.limiter); nil != err {
		return nil, err
	}
	return f.fetcher.SearchCites(entry)
}

// limiting for a single request
func limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
