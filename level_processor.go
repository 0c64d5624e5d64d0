// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package getsmallest

import (
	"github.com/evilkidcl/getsmallest/internal/base"
	"github.com/evilkidcl/getsmallest/internal/delist"
)

// progressMark snapshots the three positions ProcessLogLevel's main loop
// must advance at least one of every iteration (spec §4.E.4).
type progressMark struct {
	vValid bool
	vKey   string
	rValid bool
	rStart string
	dValid bool
	dStart string
}

func snapshotProgress(gctx *GlobalContext, lc *LevelContext) progressMark {
	var m progressMark
	if m.vValid = lc.ValueIter.Valid(); m.vValid {
		k := lc.ValueIter.Key()
		m.vKey = string(k.UserKey) + "#" + k.SeqNum.String()
	}
	if m.rValid = lc.RangeTsIter.Valid(); m.rValid {
		m.rStart = string(lc.RangeTsIter.Tombstone().Start)
	}
	if m.dValid = gctx.DelCursor.Valid(); m.dValid {
		m.dStart = string(gctx.DelCursor.Key().StartKey())
	}
	return m
}

// ProcessLogLevel drives one level's value-iterator and range-tombstone-
// iterator to completion, mutating the global deletion list and, if this
// level improves on the query's candidate smallest key, tightening
// GlobalContext.CSK (spec §4.E). It returns once the level is exhausted or
// a new CSK has been found.
func ProcessLogLevel(gctx *GlobalContext, lc *LevelContext) error {
	if len(gctx.Target) == 0 {
		gctx.DelCursor.SeekToFirst()
		lc.ValueIter.SeekToFirst()
		lc.RangeTsIter.SeekToFirst()
	} else {
		gctx.DelCursor.Seek(gctx.Target)
		lc.ValueIter.Seek(gctx.Target)
		lc.RangeTsIter.Seek(gctx.Target)
	}

	for !lc.newCSKFound && (lc.ValueIter.Valid() || lc.RangeTsIter.Valid()) {
		var before progressMark
		trackProgress := gctx.Opts.ValidateItersProgress
		if trackProgress {
			before = snapshotProgress(gctx, lc)
		}

		gctx.Opts.reportIter("get-smallest: step value=%v rangets=%v del=%v",
			lc.ValueIter.Valid(), lc.RangeTsIter.Valid(), gctx.DelCursor.Valid())

		if err := stepLevel(gctx, lc); err != nil {
			return err
		}

		if lc.newCSKFound {
			break
		}
		if trackProgress {
			if after := snapshotProgress(gctx, lc); after == before {
				return base.MarkAborted(base.AssertionFailedf(
					"get-smallest: level processor made no progress"))
			}
		}
	}

	if err := lc.ValueIter.Error(); err != nil {
		return err
	}
	if err := lc.RangeTsIter.Error(); err != nil {
		return err
	}
	return nil
}

// stepLevel runs a single iteration of ProcessLogLevel's main loop (spec
// §4.E "Case 1"/"Case 2" and the R-vs-V classification beneath it).
func stepLevel(gctx *GlobalContext, lc *LevelContext) error {
	switch {
	case !lc.ValueIter.Valid() && lc.RangeTsIter.Valid():
		// Case 1: V invalid, R valid.
		return processCurrRangeTsVsDelList(gctx, lc)

	case lc.ValueIter.Valid():
		key := lc.ValueIter.Key()
		cat := key.Kind.Categorize()
		if cat == base.ValueCategoryOther {
			lc.ValueIter.Next()
			return nil
		}
		if !lc.RangeTsIter.Valid() {
			_, err := processCurrValuesIterVsDelList(gctx, lc, key, cat)
			return err
		}

		r := lc.RangeTsIter.Tombstone()
		switch delist.CompareRangeTsToUserKey(gctx.Cmp, r, key.UserKey) {
		case delist.Before:
			return processCurrRangeTsVsDelList(gctx, lc)
		case delist.After:
			_, err := processCurrValuesIterVsDelList(gctx, lc, key, cat)
			return err
		default: // Overlap
			if cat == base.ValueCategoryDelKey {
				// The point-delete is shadowed by a newer range-tombstone's
				// coverage; it is redundant in the del-list.
				lc.ValueIter.Next()
				return nil
			}
			if r.Seq < key.SeqNum {
				foundCSK, err := processCurrValuesIterVsDelList(gctx, lc, key, cat)
				if err != nil || !foundCSK {
					return err
				}
				// R must be folded into the del-list before leaving the
				// level — future, older levels must see it.
				return processCurrRangeTsVsDelList(gctx, lc)
			}
			// R is newer than or equal to V: the value is shadowed.
			lc.ValueIter.Next()
			return nil
		}
	}
	return nil
}

// processCurrValuesIterVsDelList is spec §4.E.1: classifies the value-
// iterator's current key against the del-list head and either advances
// past already-deleted coverage, records a newly-discovered point delete,
// or (if the key is live and uncovered) calls updateCSK.
func processCurrValuesIterVsDelList(
	gctx *GlobalContext, lc *LevelContext, key base.InternalKey, cat base.ValueCategory,
) (foundCSK bool, err error) {
	k := key.UserKey

	pos := delist.After
	if gctx.DelCursor.Valid() {
		pos = delist.CompareDelElemToUserKey(gctx.Cmp, gctx.DelCursor.Key(), k)
	}

	switch pos {
	case delist.Before:
		gctx.DelCursor.SeekForward(k)
		return false, nil

	case delist.Overlap:
		d := gctx.DelCursor.Key()
		if d.IsRange() {
			lc.ValueIter.Seek(d.EndKey())
		} else {
			lc.ValueIter.Next()
		}
		return false, nil

	default: // After: no coverage of K by the del-list.
		if cat == base.ValueCategoryDelKey {
			gctx.DelList.InsertBeforeAndSetIterOnInserted(gctx.DelCursor, delist.Point(k))
			lc.ValueIter.Next()
			return false, nil
		}
		updateCSK(gctx, lc, k)
		return true, nil
	}
}

// processCurrRangeTsVsDelList is spec §4.E.2: classifies the range-
// tombstone iterator's current tombstone against the del-list head and
// folds the tombstone's coverage into the del-list, advancing whichever of
// the range-tombstone iterator or the del-list cursor the classification
// calls for.
func processCurrRangeTsVsDelList(gctx *GlobalContext, lc *LevelContext) error {
	r := lc.RangeTsIter.Tombstone()
	if gctx.Cmp(r.Start, r.End) >= 0 {
		// Only reachable when CSK just tightened to exactly R.Start while
		// folding R in after a value win (the "R OVERLAP V" branch in
		// stepLevel): Tombstone() clips End to the new CSK, leaving an
		// empty interval that contributes no coverage.
		return nil
	}

	if !gctx.DelCursor.Valid() {
		gctx.DelList.InsertBefore(gctx.DelCursor, delist.Range(r.Start, r.End))
		lc.RangeTsIter.Next()
		return nil
	}

	d := gctx.DelCursor.Key()
	pos, overlapStart, overlapEnd := delist.CompareDelElemToRangeTs(gctx.Cmp, d, r)

	switch pos {
	case delist.Before:
		gctx.DelCursor.SeekForward(r.Start)

	case delist.After:
		gctx.DelList.InsertBefore(gctx.DelCursor, delist.Range(r.Start, r.End))
		lc.RangeTsIter.Next()

	default: // Overlap: four sub-cases keyed by the endpoint relations.
		switch {
		case overlapStart != delist.After && overlapEnd == delist.Before:
			// D starts at-or-before R and ends before R.end: extend D.
			gctx.DelList.ReplaceWith(gctx.DelCursor, delist.Range(d.StartKey(), r.End))
			gctx.DelCursor.SeekForward(r.End)

		case overlapStart != delist.After:
			// D starts at-or-before R and ends at-or-after R.end: D
			// already contains R. Advance R — it has nothing left to
			// contribute (spec §9 open question, resolved).
			lc.RangeTsIter.Next()

		case overlapEnd == delist.Before:
			// D starts after R.start and ends before R.end: R strictly
			// contains D.
			gctx.DelList.ReplaceWith(gctx.DelCursor, delist.Range(r.Start, r.End))
			gctx.DelCursor.SeekForward(r.End)

		default:
			// D starts after R.start and ends at-or-after R.end: partial
			// overlap with D extending beyond R.
			gctx.DelList.ReplaceWith(gctx.DelCursor, delist.Range(r.Start, d.EndKey()))
			lc.RangeTsIter.Seek(d.EndKey())
		}
	}
	return nil
}

// updateCSK is spec §4.E.3: tightens the candidate smallest key, trims the
// del-list and the range-tombstone iterator's upper bound to match, and
// marks the level as having found a new CSK. The value-iterator's bound is
// left alone — it is already positioned exactly on newKey, and the level
// terminates immediately after.
func updateCSK(gctx *GlobalContext, lc *LevelContext, newKey []byte) {
	gctx.Opts.debugf("get-smallest: level %d updates csk %q -> %q", gctx.levelIdx, gctx.CSK, newKey)
	gctx.CSK = append([]byte(nil), newKey...)
	gctx.CSKValid = true
	gctx.DelList.Trim(gctx.CSK)
	lc.RangeTsIter.SetUpperBound(gctx.CSK)
	lc.newCSKFound = true
}
