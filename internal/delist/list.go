// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package delist

import (
	"sort"

	"github.com/evilkidcl/getsmallest/internal/base"
)

// List is the Global Deletion List (spec §4.D): an ordered, pairwise
// disjoint, coalesced sequence of Elements. Grounded on
// spdb_db_gs_del_list.{h,cc}'s GlobalDelList, re-expressed over a sorted
// slice — the list is trimmed to [target, CSK) every time CSK tightens, so
// it stays small, and a slice with binary-search positioning is simpler than
// reimplementing the original's std::list-with-cached-iterator and serves
// the same role as internal/keyspan.Iter does for fragment runs.
type List struct {
	cmp   base.Compare
	elems []Element
}

// NewList returns an empty deletion list ordered by cmp.
func NewList(cmp base.Compare) *List {
	return &List{cmp: cmp}
}

// Len reports the number of elements currently in the list.
func (l *List) Len() int {
	return len(l.elems)
}

// Elements returns the list's elements in order, for tests and diagnostics.
// The returned slice must not be mutated.
func (l *List) Elements() []Element {
	return l.elems
}

// Cursor is a position within a List (spec §4.D's NewIterator result). A
// Cursor with idx == list.Len() is exhausted — analogous to the original's
// end() iterator.
type Cursor struct {
	list *List
	idx  int
}

// NewCursor returns a cursor at index 0: on the first element, or exhausted
// if the list is empty.
func (l *List) NewCursor() *Cursor {
	return &Cursor{list: l, idx: 0}
}

// Valid reports whether the cursor is positioned on an element.
func (c *Cursor) Valid() bool {
	return c.idx < len(c.list.elems)
}

// Key returns the element at the cursor's position. Valid must be true.
func (c *Cursor) Key() Element {
	return c.list.elems[c.idx]
}

// SeekToFirst positions the cursor at the list's first element, if any.
func (c *Cursor) SeekToFirst() bool {
	c.idx = 0
	return c.Valid()
}

// Seek positions the cursor at the first element that is not entirely left
// of userKey (i.e. the first element classified Overlap or After against
// userKey by CompareDelElemToUserKey).
func (c *Cursor) Seek(userKey []byte) bool {
	elems := c.list.elems
	cmp := c.list.cmp
	c.idx = sort.Search(len(elems), func(i int) bool {
		return CompareDelElemToUserKey(cmp, elems[i], userKey) != Before
	})
	return c.Valid()
}

// SeekForward is equivalent to Seek but documents the caller's promise that
// userKey is >= any key previously passed to Seek/SeekForward on this
// cursor (spec §4.D). A binary search already satisfies that call pattern
// without needing a separate incremental scan, so this is a thin alias.
func (c *Cursor) SeekForward(userKey []byte) bool {
	return c.Seek(userKey)
}

// touches reports whether a and b — given a.StartKey() <= b.StartKey() —
// should be coalesced into one element. Per Invariant 2, adjacency
// ("touching") is enough, not just overlap: a's end merely needs to reach
// b's start, not strictly pass it. This also covers two equal points
// (a point's end equals its start). The one exception is a range followed
// by a point at the range's exclusive end: the range does not cover that
// key and a half-open range cannot be widened to take it in, so the two
// stay separate elements.
func touches(cmp base.Compare, a, b Element) bool {
	if a.IsRange() && b.IsPoint() {
		return cmp(a.EndKey(), b.StartKey()) > 0
	}
	return cmp(a.EndKey(), b.StartKey()) >= 0
}

// coalesce merges a and b, given a.StartKey() <= b.StartKey() and
// touches(a, b). Two equal points stay a point; anything else becomes a
// range spanning both (spec §4.D: "a point touching a range extends the
// range"), grounded on MergeWithInternal's min(start)/max(end) rule in
// spdb_db_gs_del_list.cc.
func coalesce(cmp base.Compare, a, b Element) Element {
	if a.IsPoint() && b.IsPoint() {
		return a
	}
	end := a.EndKey()
	if cmp(b.EndKey(), end) > 0 {
		end = b.EndKey()
	}
	return Range(a.StartKey(), end)
}

// insert places e into the list at idx (the position its start key sorts
// to) and coalesces it with whichever of its new neighbors touch or
// overlap it. It returns the final index of the (possibly merged) element
// that now holds e, and whether the element previously at idx (the del-
// list head the caller was inspecting, i.e. "D") was absorbed into it.
func (l *List) insert(idx int, e Element) (finalIdx int, absorbedD bool) {
	l.elems = append(l.elems, Element{})
	copy(l.elems[idx+1:], l.elems[idx:])
	l.elems[idx] = e

	absorbedD = idx+1 < len(l.elems) && touches(l.cmp, l.elems[idx], l.elems[idx+1])
	if absorbedD {
		l.elems[idx] = coalesce(l.cmp, l.elems[idx], l.elems[idx+1])
		l.elems = append(l.elems[:idx+1], l.elems[idx+2:]...)
	}
	if idx > 0 && touches(l.cmp, l.elems[idx-1], l.elems[idx]) {
		l.elems[idx-1] = coalesce(l.cmp, l.elems[idx-1], l.elems[idx])
		l.elems = append(l.elems[:idx], l.elems[idx+1:]...)
		idx--
	}
	return idx, absorbedD
}

// InsertBefore inserts e immediately before the cursor's current position,
// coalescing with neighbors, and leaves the cursor on whatever now occupies
// the position the pre-insertion element held — itself, if it was absorbed
// into e (spec §4.D).
func (l *List) InsertBefore(c *Cursor, e Element) {
	idx := c.idx
	finalIdx, absorbedD := l.insert(idx, e)
	if absorbedD {
		c.idx = finalIdx
	} else {
		c.idx = finalIdx + 1
	}
}

// InsertBeforeAndSetIterOnInserted is InsertBefore, except the cursor is
// left on the newly inserted (possibly coalesced) element (spec §4.D).
func (l *List) InsertBeforeAndSetIterOnInserted(c *Cursor, e Element) {
	idx := c.idx
	finalIdx, _ := l.insert(idx, e)
	c.idx = finalIdx
}

// ReplaceWith replaces the element at the cursor's position with e,
// coalescing forward (and, defensively, backward) if e now touches a
// neighbor (spec §4.D). The cursor ends up on the resulting element.
func (l *List) ReplaceWith(c *Cursor, e Element) {
	idx := c.idx
	l.elems[idx] = e
	if idx+1 < len(l.elems) && touches(l.cmp, l.elems[idx], l.elems[idx+1]) {
		l.elems[idx] = coalesce(l.cmp, l.elems[idx], l.elems[idx+1])
		l.elems = append(l.elems[:idx+1], l.elems[idx+2:]...)
	}
	if idx > 0 && touches(l.cmp, l.elems[idx-1], l.elems[idx]) {
		l.elems[idx-1] = coalesce(l.cmp, l.elems[idx-1], l.elems[idx])
		l.elems = append(l.elems[:idx], l.elems[idx+1:]...)
		idx--
	}
	c.idx = idx
}

// Trim removes every element with any part at or past upperBound; a range
// straddling upperBound is clipped to [start, upperBound) rather than
// dropped outright (spec §4.D), grounded on GlobalDelList::Trim.
func (l *List) Trim(upperBound []byte) {
	if len(l.elems) == 0 {
		return
	}
	cmp := l.cmp
	idx := sort.Search(len(l.elems), func(i int) bool {
		return cmp(l.elems[i].StartKey(), upperBound) >= 0
	})
	if idx > 0 {
		prev := l.elems[idx-1]
		if prev.IsRange() && cmp(prev.EndKey(), upperBound) > 0 {
			l.elems[idx-1] = Range(prev.StartKey(), upperBound)
		}
	}
	l.elems = l.elems[:idx]
}
