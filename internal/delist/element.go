// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package delist implements the Global Deletion List (spec §4.D): an
// ordered, disjoint, coalesced sequence of DelElements accumulated from
// newer levels while the Level Processor walks older ones. It is grounded
// on spdb_db_gs_del_list.{h,cc} from the original implementation, re-expressed
// over a sorted Go slice rather than a std::list, the way
// internal/keyspan.Iter represents a fragmented span run as a slice plus an
// index instead of a tree.
package delist

import "github.com/evilkidcl/getsmallest/internal/base"

// Element is either a point {UserKey} or a half-open range
// [StartKey, EndKey). A point k is conceptually the singleton set [k, k]
// but is tracked distinctly from a range rather than materializing an
// end key (spec §3).
type Element struct {
	isRange  bool
	startKey []byte
	endKey   []byte // only meaningful when isRange
}

// Point returns a point DelElement covering the single user key k.
func Point(k []byte) Element {
	return Element{isRange: false, startKey: k}
}

// Range returns a half-open range DelElement covering [start, end).
func Range(start, end []byte) Element {
	return Element{isRange: true, startKey: start, endKey: end}
}

// IsPoint reports whether the element is a single-key point.
func (e Element) IsPoint() bool {
	return !e.isRange
}

// IsRange reports whether the element is a half-open range.
func (e Element) IsRange() bool {
	return e.isRange
}

// StartKey returns the element's start (its only key, for a point).
func (e Element) StartKey() []byte {
	return e.startKey
}

// EndKey returns the element's exclusive end for a range, or its key for a
// point — the formulas in spec §4.G treat a point's end as equal to its
// start.
func (e Element) EndKey() []byte {
	if e.isRange {
		return e.endKey
	}
	return e.startKey
}

// Empty reports whether e holds no key at all.
func (e Element) Empty() bool {
	return len(e.startKey) == 0 && (!e.isRange || len(e.endKey) == 0)
}

// Contains reports whether e covers user key k under cmp.
func (e Element) Contains(cmp base.Compare, k []byte) bool {
	if !e.isRange {
		return cmp(e.startKey, k) == 0
	}
	return cmp(e.startKey, k) <= 0 && cmp(k, e.endKey) < 0
}

// String renders e for logging.
func (e Element) String() string {
	if !e.isRange {
		return string(e.startKey)
	}
	return "[" + string(e.startKey) + ", " + string(e.endKey) + ")"
}
