// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package getsmallest implements the get-smallest read-path operator: given
// a storage engine's in-memory and on-disk levels, find the smallest live
// user key at or after an optional target, correctly applying every
// point-delete and range-tombstone visible across those levels without
// materializing a merged view of the whole keyspace.
package getsmallest

import (
	"github.com/evilkidcl/getsmallest/internal/base"
	"github.com/evilkidcl/getsmallest/internal/delist"
)

// Result is the outcome of a GetSmallestAtOrAfter call (spec §4.F step 6-7).
type Result struct {
	Key   []byte
	Found bool
}

// GetSmallest finds the smallest live user key in the database, with no
// lower bound. It is GetSmallestAtOrAfter with an empty target (spec §3
// Target: "empty means smallest overall").
func GetSmallest(provider SuperversionProvider, cmp base.Compare, opts *GetOptions) (Result, error) {
	return GetSmallestAtOrAfter(provider, cmp, nil, opts)
}

// GetSmallestAtOrAfter finds the smallest live user key >= target across
// every level of the storage engine, newest to oldest, applying point
// deletes and range tombstones from newer levels to older ones via an
// accumulating deletion list (spec §4.F).
func GetSmallestAtOrAfter(
	provider SuperversionProvider, cmp base.Compare, target []byte, opts *GetOptions,
) (Result, error) {
	opts = opts.EnsureDefaults()

	sv, err := provider.Acquire()
	if err != nil {
		return Result{}, err
	}
	defer provider.Release(sv)

	gctx := &GlobalContext{
		Cmp:     cmp,
		Target:  target,
		Opts:    opts,
		DelList: delist.NewList(cmp),
	}
	gctx.DelCursor = gctx.DelList.NewCursor()
	opts.debugf("get-smallest: query target=%q", target)

	sources := make([]LevelSource, 0, 2+len(sv.ImmutableNewest)+len(sv.L0FilesNewest)+len(sv.LevelsAscending))
	if sv.Mutable != nil {
		sources = append(sources, sv.Mutable)
	}
	sources = append(sources, sv.ImmutableNewest...)
	sources = append(sources, sv.L0FilesNewest...)
	sources = append(sources, sv.LevelsAscending...)

	// Each LevelContext is constructed fresh per level with the query's
	// current CSK as its upper bound (NewLevelContext), so once a level
	// narrows CSK every later, older level is bounded by it automatically.
	for _, src := range sources {
		if err := processOneLevel(gctx, src); err != nil {
			return Result{}, err
		}
	}

	if !gctx.CSKValid {
		opts.debugf("get-smallest: query target=%q -> NotFound", target)
		return Result{Found: false}, nil
	}
	if len(target) > 0 && cmp(target, gctx.CSK) > 0 {
		return Result{}, base.MarkAborted(base.AssertionFailedf(
			"get-smallest: candidate smallest key %q is below target %q", gctx.CSK, target))
	}
	opts.debugf("get-smallest: query target=%q -> %q", target, gctx.CSK)
	return Result{Key: gctx.CSK, Found: true}, nil
}

func processOneLevel(gctx *GlobalContext, src LevelSource) error {
	lc := NewLevelContext(gctx, src)
	defer lc.Close()
	return ProcessLogLevel(gctx, lc)
}
