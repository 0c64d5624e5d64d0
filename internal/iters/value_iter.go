// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package iters holds the two navigation adapters the Level Processor drives
// in lock-step: the Value-Iterator Adapter (spec §4.B) and the
// Range-Tombstone Iterator Adapter (spec §4.C). Both wrap an out-of-scope
// storage-engine cursor and enforce an exclusive upper bound tied to the
// query's candidate smallest key.
package iters

import (
	"github.com/evilkidcl/getsmallest/internal/base"
)

// ValueIter wraps a per-level base.PointSource, bounding it exclusively above
// by the query's candidate smallest key as it stood when the level was
// entered (spec §4.B). Only Seek, SeekToFirst, Next, Key, and
// Valid are supported; there is no Prev or SeekForPrev (spec §1 Non-goals).
type ValueIter struct {
	cmp       base.Compare
	src       base.PointSource
	upper     []byte // exclusive; nil means unbounded
	exhausted bool
}

// NewValueIter constructs a ValueIter over src, bounded exclusively above by
// upper (nil for unbounded).
func NewValueIter(cmp base.Compare, src base.PointSource, upper []byte) *ValueIter {
	return &ValueIter{cmp: cmp, src: src, upper: upper}
}

// SetUpperBound replaces the exclusive upper bound. The level processor does
// not call it: each level's ValueIter gets its bound at construction, and
// updateCSK (spec §4.E.3) leaves it unchanged because the level ends right
// after.
func (v *ValueIter) SetUpperBound(upper []byte) {
	v.upper = upper
}

// GetUpperBound returns the current exclusive upper bound.
func (v *ValueIter) GetUpperBound() []byte {
	return v.upper
}

func (v *ValueIter) withinBound() bool {
	if !v.src.Valid() {
		return false
	}
	if v.upper == nil {
		return true
	}
	return v.cmp(v.src.Key().UserKey, v.upper) < 0
}

// Seek positions at the first internal key whose user key is >= userKey at
// the maximum visible sequence number (spec §4.B).
func (v *ValueIter) Seek(userKey []byte) bool {
	v.src.SeekGE(userKey)
	v.exhausted = !v.withinBound()
	return !v.exhausted
}

// SeekToFirst positions at the first internal key.
func (v *ValueIter) SeekToFirst() bool {
	v.src.SeekToFirst()
	v.exhausted = !v.withinBound()
	return !v.exhausted
}

// Next advances to the next internal key.
func (v *ValueIter) Next() bool {
	v.src.Next()
	v.exhausted = !v.withinBound()
	return !v.exhausted
}

// Valid reports whether the iterator is positioned on a key within bound.
func (v *ValueIter) Valid() bool {
	return !v.exhausted && v.withinBound()
}

// Key returns the internal key at the current position. Valid must be true.
func (v *ValueIter) Key() base.InternalKey {
	return v.src.Key()
}

// Error propagates the underlying source's accumulated I/O error (spec §7).
func (v *ValueIter) Error() error {
	return v.src.Error()
}

// Close releases the underlying source.
func (v *ValueIter) Close() error {
	return v.src.Close()
}
