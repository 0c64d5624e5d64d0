// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package iters

import (
	"github.com/evilkidcl/getsmallest/internal/base"
	"github.com/evilkidcl/getsmallest/internal/rangedel"
)

// RangeTsIter wraps a per-level fragmented, top-level range-tombstone
// cursor (spec §4.C). Tombstone() clips the current tombstone's end at the
// upper bound; Valid is false when the source is absent (the memtable may
// lack a range-tombstone iterator entirely — represented as a permanently
// invalid adapter, a safe no-op) or when the current tombstone's start is at
// or past the upper bound.
type RangeTsIter struct {
	cmp   base.Compare
	src   rangedel.FragmentIterator // nil if the level has no range tombstones
	upper []byte                    // exclusive; nil means unbounded
}

// NewRangeTsIter constructs a RangeTsIter. src may be nil.
func NewRangeTsIter(cmp base.Compare, src rangedel.FragmentIterator, upper []byte) *RangeTsIter {
	return &RangeTsIter{cmp: cmp, src: src, upper: upper}
}

// SetUpperBound narrows the exclusive upper bound (called from UpdateCSK,
// spec §4.E.3).
func (r *RangeTsIter) SetUpperBound(upper []byte) {
	r.upper = upper
}

func (r *RangeTsIter) withinBound() bool {
	if r.src == nil || !r.src.Valid() {
		return false
	}
	if r.upper == nil {
		return true
	}
	return r.cmp(r.src.Current().Start, r.upper) < 0
}

// SeekToFirst positions at the first tombstone, if any.
func (r *RangeTsIter) SeekToFirst() bool {
	if r.src == nil {
		return false
	}
	r.src.SeekToFirst()
	return r.withinBound()
}

// Seek positions at the first tombstone whose End is > userKey.
func (r *RangeTsIter) Seek(userKey []byte) bool {
	if r.src == nil {
		return false
	}
	r.src.SeekGE(r.cmp, userKey)
	return r.withinBound()
}

// Next advances to the next tombstone.
func (r *RangeTsIter) Next() bool {
	if r.src == nil {
		return false
	}
	r.src.Next()
	return r.withinBound()
}

// Valid reports whether the iterator is positioned on a tombstone whose
// start lies before the upper bound.
func (r *RangeTsIter) Valid() bool {
	return r.withinBound()
}

// Tombstone returns the current tombstone clipped at the upper bound (spec
// §4.C): callers may rely on End() never exceeding the upper bound. Valid
// must be true.
func (r *RangeTsIter) Tombstone() rangedel.RangeTombstone {
	return r.src.Current().Clip(r.cmp, r.upper)
}

// Error propagates the underlying source's accumulated I/O error (spec §7).
// Returns nil if the source is absent.
func (r *RangeTsIter) Error() error {
	if r.src == nil {
		return nil
	}
	return r.src.Error()
}

// Close releases the underlying source, if any.
func (r *RangeTsIter) Close() error {
	if r.src == nil {
		return nil
	}
	return r.src.Close()
}
