// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package delist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func formatElements(elems []Element) string {
	s := ""
	for i, e := range elems {
		if i > 0 {
			s += ","
		}
		s += e.String()
	}
	return s
}

func TestListInsertBeforeCoalescesTouchingRanges(t *testing.T) {
	l := NewList(cmp)
	c := l.NewCursor()

	l.InsertBeforeAndSetIterOnInserted(c, Range([]byte("m"), []byte("p")))
	require.Equal(t, "[m, p)", c.Key().String())
	require.Equal(t, 1, l.Len())

	// A range touching (not overlapping) the existing one on the left must
	// still coalesce, per Invariant 2.
	c2 := l.NewCursor()
	c2.SeekToFirst()
	l.InsertBeforeAndSetIterOnInserted(c2, Range([]byte("j"), []byte("m")))
	require.Equal(t, 1, l.Len())
	require.Equal(t, "[j, p)", l.Elements()[0].String())
}

func TestListInsertBeforePointAtRangeStartIsAbsorbed(t *testing.T) {
	l := NewList(cmp)
	c := l.NewCursor()
	l.InsertBeforeAndSetIterOnInserted(c, Range([]byte("m"), []byte("p")))

	c2 := l.NewCursor()
	c2.SeekToFirst()
	// A point at the range's start touches it (Element.EndKey() for a
	// point is its own key, so "m" >= "m" coalesces).
	l.InsertBeforeAndSetIterOnInserted(c2, Point([]byte("m")))
	require.Equal(t, 1, l.Len())
	require.Equal(t, "[m, p)", l.Elements()[0].String())
}

func TestListInsertBeforeLeavesCursorOnOriginalWhenNotAbsorbed(t *testing.T) {
	l := NewList(cmp)
	c := l.NewCursor()
	l.InsertBeforeAndSetIterOnInserted(c, Range([]byte("m"), []byte("p")))

	c2 := l.NewCursor()
	c2.SeekToFirst()
	// "a" is far from "m": no coalescing, plain InsertBefore should leave
	// the cursor on the original element ("[m, p)"), not the new one.
	l.InsertBefore(c2, Point([]byte("a")))
	require.Equal(t, 2, l.Len())
	require.Equal(t, "[m, p)", c2.Key().String())
	require.Equal(t, "a,[m, p)", formatElements(l.Elements()))
}

func TestListReplaceWithCoalescesForward(t *testing.T) {
	l := NewList(cmp)
	c := l.NewCursor()
	l.InsertBeforeAndSetIterOnInserted(c, Range([]byte("a"), []byte("c")))
	c2 := l.NewCursor()
	c2.Seek([]byte("f"))
	l.InsertBeforeAndSetIterOnInserted(c2, Range([]byte("f"), []byte("h")))
	require.Equal(t, 2, l.Len())

	// Replacing [a, c) with [a, f) should merge it into the second element.
	c3 := l.NewCursor()
	c3.SeekToFirst()
	l.ReplaceWith(c3, Range([]byte("a"), []byte("f")))
	require.Equal(t, 1, l.Len())
	require.Equal(t, "[a, h)", c3.Key().String())
}

func TestListTrimClipsStraddlingRange(t *testing.T) {
	l := NewList(cmp)
	c := l.NewCursor()
	l.InsertBeforeAndSetIterOnInserted(c, Range([]byte("a"), []byte("z")))

	l.Trim([]byte("m"))
	require.Equal(t, 1, l.Len())
	require.Equal(t, "[a, m)", l.Elements()[0].String())
}

func TestListTrimDropsElementsAtOrPastBound(t *testing.T) {
	l := NewList(cmp)
	c := l.NewCursor()
	l.InsertBeforeAndSetIterOnInserted(c, Point([]byte("a")))
	c2 := l.NewCursor()
	c2.Seek([]byte("z"))
	l.InsertBeforeAndSetIterOnInserted(c2, Range([]byte("z"), []byte("zz")))

	l.Trim([]byte("m"))
	require.Equal(t, 1, l.Len())
	require.Equal(t, "a", l.Elements()[0].String())
}

func TestCursorSeekFindsFirstNotBefore(t *testing.T) {
	l := NewList(cmp)
	c := l.NewCursor()
	l.InsertBeforeAndSetIterOnInserted(c, Range([]byte("c"), []byte("f")))
	c2 := l.NewCursor()
	c2.Seek([]byte("k"))
	l.InsertBeforeAndSetIterOnInserted(c2, Range([]byte("k"), []byte("m")))

	seek := l.NewCursor()
	require.True(t, seek.Seek([]byte("a")))
	require.Equal(t, "[c, f)", seek.Key().String())

	require.True(t, seek.SeekForward([]byte("e")))
	require.Equal(t, "[c, f)", seek.Key().String())

	require.True(t, seek.SeekForward([]byte("f")))
	require.Equal(t, "[k, m)", seek.Key().String())

	require.False(t, seek.SeekForward([]byte("m")))
	require.False(t, seek.Valid())
}
