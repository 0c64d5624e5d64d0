// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package delist

import (
	"github.com/evilkidcl/getsmallest/internal/base"
	"github.com/evilkidcl/getsmallest/internal/rangedel"
)

// RelativePos classifies the position of one key-space object relative to
// another (spec §4.G).
type RelativePos int

const (
	// Before means the first object lies entirely to the left of the second.
	Before RelativePos = iota
	// Overlap means the two objects share at least one user key.
	Overlap
	// After means the first object lies entirely to the right of the second.
	After
)

func (p RelativePos) String() string {
	switch p {
	case Before:
		return "BEFORE"
	case Overlap:
		return "OVERLAP"
	case After:
		return "AFTER"
	default:
		return "?"
	}
}

// CompareDelElemToUserKey classifies a del-list element against a user key
// (spec §4.G, first bullet). A point element uses a strict less-than so
// that a point exactly at k overlaps it rather than preceding it.
func CompareDelElemToUserKey(cmp base.Compare, d Element, k []byte) RelativePos {
	if d.IsPoint() {
		if cmp(d.StartKey(), k) < 0 {
			return Before
		}
	} else if cmp(d.EndKey(), k) <= 0 {
		return Before
	}
	if cmp(d.StartKey(), k) > 0 {
		return After
	}
	return Overlap
}

// CompareRangeTsToUserKey classifies a range tombstone against a user key
// (spec §4.G, second bullet).
func CompareRangeTsToUserKey(cmp base.Compare, r rangedel.RangeTombstone, k []byte) RelativePos {
	if cmp(r.End, k) <= 0 {
		return Before
	}
	if cmp(r.Start, k) > 0 {
		return After
	}
	return Overlap
}

// CompareDelElemToRangeTs classifies a del-list element against a range
// tombstone (spec §4.G, third bullet). On Overlap, it also returns
// overlapStartRelPos (d.start vs r.start) and overlapEndRelPos (d.end vs
// r.end), each drawn from {Before, Overlap, After} and used by
// ProcessCurrRangeTsVsDelList's four overlap sub-cases (spec §4.E.2). A
// range is Before R when its exclusive end is at or before R.start; a point
// is a single key, so it is Before R only when that key is strictly less
// than R.start, and a point at R.start overlaps R. For the endpoint
// relations a point's end is its start, matching Element.EndKey.
func CompareDelElemToRangeTs(cmp base.Compare, d Element, r rangedel.RangeTombstone) (pos, overlapStartRelPos, overlapEndRelPos RelativePos) {
	dStart, dEnd := d.StartKey(), d.EndKey()
	if d.IsPoint() {
		if cmp(dStart, r.Start) < 0 {
			return Before, 0, 0
		}
	} else if cmp(dEnd, r.Start) <= 0 {
		return Before, 0, 0
	}
	if cmp(dStart, r.End) >= 0 {
		return After, 0, 0
	}
	overlapStartRelPos = endpointRelPos(cmp, dStart, r.Start)
	overlapEndRelPos = endpointRelPos(cmp, dEnd, r.End)
	return Overlap, overlapStartRelPos, overlapEndRelPos
}

func endpointRelPos(cmp base.Compare, a, b []byte) RelativePos {
	switch c := cmp(a, b); {
	case c < 0:
		return Before
	case c > 0:
		return After
	default:
		return Overlap
	}
}
