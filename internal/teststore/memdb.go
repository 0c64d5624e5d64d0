// Copyright 2012 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package teststore provides in-memory LevelSource and SuperversionProvider
// implementations for exercising the get-smallest operator without a real
// storage engine. Grounded on naruepanart-goleveldb's memdb — a sorted
// in-memory table that stands in for a real memtable in that project's own
// tests — generalized here to also carry range tombstones and to sit
// behind the get-smallest package's collaborator contracts.
package teststore

import (
	"sort"

	"github.com/evilkidcl/getsmallest"
	"github.com/evilkidcl/getsmallest/internal/base"
	"github.com/evilkidcl/getsmallest/internal/rangedel"
)

// Level is an in-memory LevelSource: a fixed set of internal keys and range
// tombstones, as if captured from a single memtable, immutable memtable,
// L0 file, or Ln.
type Level struct {
	Keys       []base.InternalKey
	Tombstones []rangedel.RangeTombstone
}

var _ getsmallest.LevelSource = (*Level)(nil)

// NewLevel returns a Level with keys sorted by the internal ordering and
// tombstones sorted by start key, as ProcessLogLevel requires of any real
// source.
func NewLevel(cmp base.Compare, keys []base.InternalKey, tombstones []rangedel.RangeTombstone) *Level {
	keys = append([]base.InternalKey(nil), keys...)
	sort.Slice(keys, func(i, j int) bool {
		return base.InternalCompare(cmp, keys[i], keys[j]) < 0
	})
	tombstones = append([]rangedel.RangeTombstone(nil), tombstones...)
	sort.Slice(tombstones, func(i, j int) bool {
		return cmp(tombstones[i].Start, tombstones[j].Start) < 0
	})
	return &Level{Keys: keys, Tombstones: tombstones}
}

// NewPointIterator implements the LevelSource contract.
func (l *Level) NewPointIterator() base.PointSource {
	return &pointIter{keys: l.Keys, idx: -1}
}

// NewRangeDelIterator implements the LevelSource contract. It returns nil
// if the level carries no tombstones, matching a bare memtable.
func (l *Level) NewRangeDelIterator() rangedel.FragmentIterator {
	if len(l.Tombstones) == 0 {
		return nil
	}
	return rangedel.NewIter(l.Tombstones)
}

type pointIter struct {
	keys []base.InternalKey
	idx  int
	err  error
}

var _ base.PointSource = (*pointIter)(nil)

func (p *pointIter) SeekGE(userKey []byte) bool {
	p.idx = sort.Search(len(p.keys), func(i int) bool {
		return compareUserKeys(p.keys[i].UserKey, userKey) >= 0
	})
	return p.Valid()
}

func (p *pointIter) SeekToFirst() bool {
	p.idx = 0
	return p.Valid()
}

func (p *pointIter) Next() bool {
	if p.idx < len(p.keys) {
		p.idx++
	}
	return p.Valid()
}

func (p *pointIter) Valid() bool {
	return p.idx >= 0 && p.idx < len(p.keys)
}

func (p *pointIter) Key() base.InternalKey {
	return p.keys[p.idx]
}

func (p *pointIter) Close() error {
	p.keys = nil
	return nil
}

func (p *pointIter) Error() error {
	return p.err
}

// compareUserKeys is the bytewise ordering pointIter seeks against; Level's
// callers always sort with bytes.Compare in every test in this repo, so a
// fixed bytewise compare here is equivalent.
func compareUserKeys(a, b []byte) int {
	switch {
	case string(a) < string(b):
		return -1
	case string(a) > string(b):
		return 1
	default:
		return 0
	}
}
