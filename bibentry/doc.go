// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bibentry - the bibliographic record as seen by the relation cache
//
// Only the fields needed for identity and persistence are carried:
//
//   type     - entry type tag (article, inproceedings, ...)
//   title    - title
//   year     - year of publication
//   author   - author string, unparsed
//   doi      - digital object identifier (the cache key)
//   url      - optional
//   abstract - optional
//
// Two entries are equal for caching purposes when their canonical
// forms are identical.  The canonical form is a JSON object holding
// a version number and every field, absent fields written as null:
//
//   {"v":1,"type":"article","title":"T","year":null,"author":null,
//    "doi":"10.1/ab","url":null,"abstract":null}
//
// an empty string field and an absent field are the same thing
package bibentry
