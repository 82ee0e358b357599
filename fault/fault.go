// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrDatabaseVersion      = InvalidError("database version is newer than supported")
	ErrFetcherIsNil         = InvalidError("fetcher is nil")
	ErrInvalidBurst         = InvalidError("fetcher burst must be positive")
	ErrInvalidCapacity      = InvalidError("memory capacity must be positive")
	ErrInvalidDirectory     = InvalidError("invalid directory")
	ErrInvalidKind          = InvalidError("invalid relation kind")
	ErrInvalidRate          = InvalidError("fetcher requests per second must be positive")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTTL           = InvalidError("time to live must not be negative")
	ErrMissingDOI           = NotFoundError("entry has no DOI")
	ErrNilTier              = InvalidError("tier is nil")
	ErrNotAPlainName        = InvalidError("not a plain file name")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrRateLimiting         = ProcessError("rate limiting")
	ErrRecordVersion        = RecordError("record version is not supported")
	ErrStoreNotOpen         = ProcessError("store is not open")
	ErrTransactionInUse     = ProcessError("transaction already in use")
	ErrTruncatedRecord      = LengthError("truncated record")
	ErrTruncatedTimestamp   = LengthError("truncated timestamp")
	ErrUnparseableRecord    = RecordError("record cannot be parsed")
	ErrZeroLengthRecord     = LengthError("zero length record")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

// IsErrDecode - true for the errors a damaged or foreign record produces
func IsErrDecode(e error) bool { return IsErrLength(e) || IsErrRecord(e) }
