// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

// PointSource is the subset of pebble's InternalIterator that the
// Value-Iterator Adapter (spec §4.B) needs from a per-level point-data
// cursor: forward-only positioning and a way to read the key at the current
// position. The real InternalIterator also supports SeekLT/Prev/SeekPrefixGE
// and returns values eagerly; none of that applies here — get-smallest is a
// forward-only, key-only traversal (spec §1 Non-goals: "Prev/SeekForPrev
// traversal").
//
// A PointSource must be constructed already bound to the maximum visible
// sequence number at query-snapshot time (spec §9 open question: Seek
// currently ignores any requested snapshot).
type PointSource interface {
	// SeekGE positions the cursor at the first internal key whose user key is
	// >= userKey. Returns false if no such key exists.
	SeekGE(userKey []byte) bool
	// SeekToFirst positions the cursor at the first internal key. Returns
	// false if the source is empty.
	SeekToFirst() bool
	// Next advances to the next internal key. Returns false once exhausted.
	Next() bool
	// Valid reports whether the cursor is positioned on a key.
	Valid() bool
	// Key returns the internal key at the current position. Valid must be
	// true.
	Key() InternalKey
	// Close releases resources held by the cursor.
	Close() error
	// Error reports any I/O error accumulated during iteration (spec §7).
	Error() error
}
