// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"
)

// Clock - source of the current time for staleness checks
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// SystemClock - wall clock in UTC
var SystemClock Clock = systemClock{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
