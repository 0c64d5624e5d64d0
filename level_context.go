// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package getsmallest

import (
	"github.com/evilkidcl/getsmallest/internal/base"
	"github.com/evilkidcl/getsmallest/internal/delist"
	"github.com/evilkidcl/getsmallest/internal/iters"
)

// GlobalContext threads the query's comparator, target, candidate smallest
// key, and deletion list across every level visited, newest to oldest
// (spec §3 GlobalContext, §4.F).
type GlobalContext struct {
	Cmp    base.Compare
	Target []byte
	Opts   *GetOptions

	// CSKValid is false until the first level contributes a candidate
	// smallest key; CSK is meaningless until then.
	CSKValid bool
	CSK      []byte

	DelList   *delist.List
	DelCursor *delist.Cursor

	// levelIdx counts levels processed so far, for diagnostic labeling only
	// (spec §6.3).
	levelIdx int
}

// csk returns the current upper bound to hand iterators, or nil if no CSK
// has been found yet (unbounded above).
func (g *GlobalContext) csk() []byte {
	if !g.CSKValid {
		return nil
	}
	return g.CSK
}

// LevelContext is the per-level state ProcessLogLevel drives to
// completion: a value-iterator and range-tombstone-iterator adapter, both
// freshly constructed and upper-bounded by the query's current CSK (spec
// §4.E).
type LevelContext struct {
	ValueIter   *iters.ValueIter
	RangeTsIter *iters.RangeTsIter

	// newCSKFound is set by updateCSK once this level has contributed a
	// tighter candidate smallest key; ProcessLogLevel's main loop exits as
	// soon as it is true.
	newCSKFound bool
}

// NewLevelContext constructs a LevelContext over src, bounding both
// adapters by the GlobalContext's current CSK (spec §4.E entry state).
func NewLevelContext(gctx *GlobalContext, src LevelSource) *LevelContext {
	upper := gctx.csk()
	gctx.levelIdx++
	gctx.Opts.debugf("get-smallest: entering level %d, csk=%q", gctx.levelIdx, upper)
	vi := iters.NewValueIter(gctx.Cmp, src.NewPointIterator(), upper)
	ri := iters.NewRangeTsIter(gctx.Cmp, src.NewRangeDelIterator(), upper)
	return &LevelContext{ValueIter: vi, RangeTsIter: ri}
}

// Close releases both adapters' underlying sources.
func (lc *LevelContext) Close() error {
	verr := lc.ValueIter.Close()
	rerr := lc.RangeTsIter.Close()
	if verr != nil {
		return verr
	}
	return rerr
}
