// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternalCompare(t *testing.T) {
	cmp := bytes.Compare

	keys := []InternalKey{
		MakeInternalKey([]byte("a"), 10, InternalKeyKindSet),
		MakeInternalKey([]byte("a"), 9, InternalKeyKindSet),
		MakeInternalKey([]byte("a"), 9, InternalKeyKindDelete),
		MakeInternalKey([]byte("b"), 1, InternalKeyKindSet),
	}
	for i := 0; i < len(keys)-1; i++ {
		require.Less(t, InternalCompare(cmp, keys[i], keys[i+1]), 0,
			"expected %s < %s", keys[i], keys[i+1])
		require.Greater(t, InternalCompare(cmp, keys[i+1], keys[i]), 0)
	}
	require.Equal(t, 0, InternalCompare(cmp, keys[0], keys[0]))
}

func TestCategorize(t *testing.T) {
	require.Equal(t, ValueCategoryValue, InternalKeyKindSet.Categorize())
	require.Equal(t, ValueCategoryMergeValue, InternalKeyKindMerge.Categorize())
	require.Equal(t, ValueCategoryDelKey, InternalKeyKindDelete.Categorize())
	require.Equal(t, ValueCategoryOther, InternalKeyKindRangeDelete.Categorize())
	require.Equal(t, ValueCategoryOther, InternalKeyKindOther.Categorize())
}

func TestSeqNumString(t *testing.T) {
	require.Equal(t, "inf", SeqNumMax.String())
	require.Equal(t, "42", SeqNum(42).String())
}
