// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rangedel

import (
	"sort"

	"github.com/evilkidcl/getsmallest/internal/base"
)

// FragmentIterator is the navigation surface the Range-Tombstone Iterator
// Adapter (spec §4.C) needs from a per-level fragmented range-tombstone
// source: the tombstones it returns must already be non-overlapping (no two
// tombstones in one FragmentIterator may overlap — a concern resolved by the
// out-of-scope storage engine's fragmenter before these iterators are
// constructed).
type FragmentIterator interface {
	// SeekGE positions at the first tombstone whose End is > key.
	SeekGE(cmp base.Compare, key []byte) bool
	// SeekToFirst positions at the first tombstone, if any.
	SeekToFirst() bool
	// Next advances to the next tombstone.
	Next() bool
	// Valid reports whether the iterator is positioned on a tombstone.
	Valid() bool
	// Current returns the tombstone at the current position. Valid must be
	// true.
	Current() RangeTombstone
	// Error returns any accumulated I/O error (spec §4.C).
	Error() error
	// Close releases resources held by the iterator.
	Close() error
}

// Iter is a FragmentIterator backed by an in-memory, sorted slice of
// tombstones — used by fakes and tests. Grounded on
// internal/keyspan.Iter's index-into-a-sorted-slice shape.
type Iter struct {
	tombstones []RangeTombstone
	index      int
}

var _ FragmentIterator = (*Iter)(nil)

// NewIter returns an iterator over tombstones, which must already be sorted
// by Start and pairwise non-overlapping.
func NewIter(tombstones []RangeTombstone) *Iter {
	return &Iter{tombstones: tombstones, index: -1}
}

// SeekGE implements FragmentIterator.
func (i *Iter) SeekGE(cmp base.Compare, key []byte) bool {
	i.index = sort.Search(len(i.tombstones), func(j int) bool {
		return cmp(i.tombstones[j].End, key) > 0
	})
	return i.Valid()
}

// SeekToFirst implements FragmentIterator.
func (i *Iter) SeekToFirst() bool {
	i.index = 0
	return i.Valid()
}

// Next implements FragmentIterator.
func (i *Iter) Next() bool {
	if i.index < len(i.tombstones) {
		i.index++
	}
	return i.Valid()
}

// Valid implements FragmentIterator.
func (i *Iter) Valid() bool {
	return i.index >= 0 && i.index < len(i.tombstones)
}

// Current implements FragmentIterator.
func (i *Iter) Current() RangeTombstone {
	return i.tombstones[i.index]
}

// Error implements FragmentIterator. Iter is backed by an in-memory slice,
// so it never encounters an I/O error.
func (i *Iter) Error() error {
	return nil
}

// Close implements FragmentIterator.
func (i *Iter) Close() error {
	i.tombstones = nil
	return nil
}
