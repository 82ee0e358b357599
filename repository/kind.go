// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"strings"

	"github.com/bitmark-inc/citationcache/fault"
)

// Kind - direction of a relation list
type Kind int

// relation kinds
const (
	Citations  Kind = iota // works citing the entry
	References             // works the entry cites
)

// Kinds - every relation kind
var Kinds = []Kind{Citations, References}

func (k Kind) String() string {
	switch k {
	case Citations:
		return "citations"
	case References:
		return "references"
	default:
		return "*unknown*"
	}
}

// FileName - database name of the kind inside the relations directory
func (k Kind) FileName() string {
	return k.String() + ".leveldb"
}

// ParseKind - kind from its name, case insensitive
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "citations", "citation", "cited-by":
		return Citations, nil
	case "references", "reference", "cites":
		return References, nil
	default:
		return Citations, fault.ErrInvalidKind
	}
}
