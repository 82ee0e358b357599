// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bibentry

import (
	"net/url"
	"regexp"
	"strings"
)

// DOI - a parsed digital object identifier, case is preserved
type DOI string

// directory indicator "10." then registrant code, "/" then suffix
var doiPattern = regexp.MustCompile(`^10\.[^\s/]+/\S+$`)

// resolver forms that are stripped before matching
// the URL forms are percent-decoded after stripping
var (
	resolverPrefixes = []string{
		"https://doi.org/",
		"http://doi.org/",
		"https://dx.doi.org/",
		"http://dx.doi.org/",
		"doi.org/",
	}
	schemePrefix = "doi:"
)

// ParseDOI - extract a DOI from a field value
//
// accepts a bare DOI, "doi:10.x/y" and resolver URLs
func ParseDOI(s string) (DOI, bool) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	if strings.HasPrefix(lower, schemePrefix) {
		s = strings.TrimSpace(s[len(schemePrefix):])
	} else {
	scan_prefixes:
		for _, prefix := range resolverPrefixes {
			if strings.HasPrefix(lower, prefix) {
				s = s[len(prefix):]
				if unescaped, err := url.PathUnescape(s); nil == err {
					s = unescaped
				}
				break scan_prefixes
			}
		}
	}

	if !doiPattern.MatchString(s) {
		return "", false
	}
	return DOI(s), true
}

// String - the DOI as a plain string
func (d DOI) String() string {
	return string(d)
}
