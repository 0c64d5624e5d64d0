// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rangedel

import "github.com/evilkidcl/getsmallest/internal/base"

// RangeTombstone is a half-open interval [Start, End) over user-key space
// that deletes every key in the range whose write sequence number is less
// than Seq (spec §3). Unlike the teacher's Tombstone, which pairs a full
// InternalKey with an end key, a RangeTombstone here carries only the bare
// sequence number: the get-smallest operator never needs the tombstone's own
// kind (it is always RANGEDEL) or a user-key-ordered identity beyond Start.
type RangeTombstone struct {
	Start []byte
	End   []byte
	Seq   base.SeqNum
}

// Empty reports whether the tombstone is the zero value: both Start and End
// are empty.
func (t RangeTombstone) Empty() bool {
	return len(t.Start) == 0 && len(t.End) == 0
}

// Contains reports whether the tombstone covers user key k under cmp.
func (t RangeTombstone) Contains(cmp base.Compare, k []byte) bool {
	return cmp(t.Start, k) <= 0 && cmp(k, t.End) < 0
}

// Clip returns t truncated to end at upperBound if its End is past it
// (spec §4.C: "if end_key > CSK, the returned tombstone is (start_key, CSK,
// seq)"). If upperBound is nil, no clipping is required (no CSK has been set
// yet and the search region is unbounded above).
func (t RangeTombstone) Clip(cmp base.Compare, upperBound []byte) RangeTombstone {
	if upperBound == nil || cmp(t.End, upperBound) <= 0 {
		return t
	}
	return RangeTombstone{Start: t.Start, End: upperBound, Seq: t.Seq}
}
