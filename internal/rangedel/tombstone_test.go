// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rangedel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTombstoneContains(t *testing.T) {
	cmp := bytes.Compare
	tomb := RangeTombstone{Start: []byte("c"), End: []byte("f")}

	require.False(t, tomb.Contains(cmp, []byte("b")))
	require.True(t, tomb.Contains(cmp, []byte("c")))
	require.True(t, tomb.Contains(cmp, []byte("e")))
	require.False(t, tomb.Contains(cmp, []byte("f")))
}

func TestTombstoneClip(t *testing.T) {
	cmp := bytes.Compare
	tomb := RangeTombstone{Start: []byte("c"), End: []byte("f"), Seq: 5}

	require.Equal(t, tomb, tomb.Clip(cmp, nil))
	require.Equal(t, tomb, tomb.Clip(cmp, []byte("g")))

	clipped := tomb.Clip(cmp, []byte("e"))
	require.Equal(t, RangeTombstone{Start: []byte("c"), End: []byte("e"), Seq: 5}, clipped)
}

func TestTombstoneEmpty(t *testing.T) {
	require.True(t, RangeTombstone{}.Empty())
	require.False(t, RangeTombstone{Start: []byte("a")}.Empty())
}
