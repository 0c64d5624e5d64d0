// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package getsmallest

import (
	"github.com/evilkidcl/getsmallest/internal/base"
	"github.com/evilkidcl/getsmallest/internal/rangedel"
)

// LevelSource is a single logical data source the driver processes as one
// LevelContext: the mutable memtable, one immutable memtable, one L0 file,
// or one level Ln (n >= 1) (spec §4.F, §6.2). Out-of-scope storage-engine
// concerns — memtable implementation, SSTable block decoding, compaction,
// caching — live entirely behind this contract; this operator only ever
// calls the two constructors below.
type LevelSource interface {
	// NewPointIterator returns a forward point-key cursor over the source,
	// bound to the maximum visible sequence number (spec §9 open question:
	// snapshots are a Non-goal).
	NewPointIterator() base.PointSource
	// NewRangeDelIterator returns a fragmented range-tombstone cursor over
	// the source, or nil if the source carries no range tombstones (the
	// mutable memtable commonly does not).
	NewRangeDelIterator() rangedel.FragmentIterator
}

// Superversion is a ref-counted, consistent snapshot of the storage
// engine's in-memory and on-disk state at the instant a query begins (spec
// §5, §6.2): the mutable memtable, the list of immutable memtables newest
// first, the list of L0 files newest first, and the non-empty levels
// 1..N-1 in ascending order. Grounded on db.go's readState/*version
// pairing, generalized to an explicit struct instead of a package-private
// global.
type Superversion struct {
	Mutable         LevelSource
	ImmutableNewest []LevelSource
	L0FilesNewest   []LevelSource
	LevelsAscending []LevelSource
}

// SuperversionProvider acquires and releases a referenced Superversion
// (spec §4.F.1, §4.F.5). Grounded on db.go's getInternal, which acquires
// d.mu.versions' readState under a ref and releases it via a deferred
// Close regardless of how GetSmallestAtOrAfter exits.
type SuperversionProvider interface {
	// Acquire returns a referenced Superversion. The caller must call
	// Release exactly once, regardless of outcome.
	Acquire() (*Superversion, error)
	// Release drops the reference acquired by Acquire.
	Release(*Superversion)
}
