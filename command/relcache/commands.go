// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"time"

	"github.com/bitmark-inc/citationcache/bibentry"
	"github.com/bitmark-inc/citationcache/fault"
	"github.com/bitmark-inc/citationcache/repository"
)

type keyItem struct {
	DOI        bibentry.DOI `json:"doi"`
	InsertedAt string       `json:"inserted_at,omitempty"`
	Updatable  bool         `json:"updatable"`
}

type listReply struct {
	Kind string    `json:"kind"`
	Keys []keyItem `json:"keys"`
}

type getReply struct {
	Kind      string           `json:"kind"`
	DOI       bibentry.DOI     `json:"doi"`
	Cached    bool             `json:"cached"`
	Updatable bool             `json:"updatable"`
	Relations []bibentry.Entry `json:"relations"`
}

type statsReply struct {
	Kind      string `json:"kind"`
	Entries   int    `json:"memory_entries"`
	Hits      uint64 `json:"memory_hits"`
	Misses    uint64 `json:"memory_misses"`
	Evictions uint64 `json:"memory_evictions"`
	Open      bool   `json:"store_open"`
	Written   uint64 `json:"store_bytes_written"`
	Dropped   uint64 `json:"store_dropped_records"`
}

// print every stored key of each kind
func runList(handle io.Writer, r *repository.Repository, kinds []repository.Kind) error {
	for _, kind := range kinds {
		keys, err := r.Keys(kind)
		if nil != err {
			return err
		}

		reply := listReply{
			Kind: kind.String(),
			Keys: make([]keyItem, 0, len(keys)),
		}
		for _, k := range keys {
			item := keyItem{
				DOI:       k.DOI,
				Updatable: k.Updatable,
			}
			if !k.InsertedAt.IsZero() {
				item.InsertedAt = k.InsertedAt.Format(time.RFC3339)
			}
			reply.Keys = append(reply.Keys, item)
		}

		if err := printJson(handle, reply); nil != err {
			return err
		}
	}
	return nil
}

// print the relation list of one DOI for each kind
func runGet(handle io.Writer, r *repository.Repository, kinds []repository.Kind, doi string) error {
	key, ok := bibentry.ParseDOI(doi)
	if !ok {
		return fault.ErrMissingDOI
	}
	entry := bibentry.Entry{
		DOI: key.String(),
	}

	for _, kind := range kinds {
		reply := getReply{
			Kind:      kind.String(),
			DOI:       key,
			Cached:    r.Contains(kind, entry),
			Updatable: r.IsUpdatable(kind, entry),
			Relations: r.Read(kind, entry),
		}
		if err := printJson(handle, reply); nil != err {
			return err
		}
	}
	return nil
}

func runClear(r *repository.Repository, kinds []repository.Kind) {
	for _, kind := range kinds {
		r.Clear(kind)
	}
}

func runStats(handle io.Writer, r *repository.Repository, kinds []repository.Kind) error {
	for _, kind := range kinds {
		s := r.Statistics(kind)
		reply := statsReply{
			Kind:      kind.String(),
			Entries:   s.Memory.Entries,
			Hits:      s.Memory.Hits,
			Misses:    s.Memory.Misses,
			Evictions: s.Memory.Evictions,
			Open:      s.Storage.Open,
			Written:   s.Storage.BytesWritten,
			Dropped:   s.Storage.Dropped,
		}
		if err := printJson(handle, reply); nil != err {
			return err
		}
	}
	return nil
}
