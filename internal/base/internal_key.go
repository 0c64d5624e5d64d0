// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// SeqNum is a sequence number defining precedence among identical user keys.
// A key with a higher sequence number takes precedence over a key with an
// equal user key and a lower sequence number. As keys are committed to the
// database, they're assigned increasing sequence numbers.
type SeqNum uint64

// SeqNumMax is the largest valid sequence number; String renders it as
// "inf".
const SeqNumMax SeqNum = 1<<64 - 1

func (s SeqNum) String() string {
	if s == SeqNumMax {
		return "inf"
	}
	return fmt.Sprintf("%d", uint64(s))
}

// SafeFormat implements redact.SafeFormatter.
func (s SeqNum) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(s.String()))
}

// InternalKeyKind enumerates the kind of a write record. The kinds below are
// the subset the get-smallest operator needs to classify (spec §3
// ValueCategory); every other on-disk kind pebble supports (merge-operator
// variants, range-key set/unset/del, ingested-sstable markers, and so on)
// collapses into Other, since the operator never interprets them.
type InternalKeyKind uint8

const (
	InternalKeyKindDelete      InternalKeyKind = 0
	InternalKeyKindSet         InternalKeyKind = 1
	InternalKeyKindMerge       InternalKeyKind = 2
	InternalKeyKindRangeDelete InternalKeyKind = 3
	InternalKeyKindOther       InternalKeyKind = 255
)

func (k InternalKeyKind) String() string {
	switch k {
	case InternalKeyKindDelete:
		return "DEL"
	case InternalKeyKindSet:
		return "SET"
	case InternalKeyKindMerge:
		return "MERGE"
	case InternalKeyKindRangeDelete:
		return "RANGEDEL"
	default:
		return "OTHER"
	}
}

// ValueCategory is the classification of an InternalKeyKind used by
// ProcessLogLevel (spec §3): VALUE and MERGE_VALUE both mean "this user key
// is present", DEL_KEY means "this user key is shadowed by a point
// tombstone", and OTHER is skipped entirely.
type ValueCategory uint8

const (
	ValueCategoryOther ValueCategory = iota
	ValueCategoryValue
	ValueCategoryMergeValue
	ValueCategoryDelKey
)

// Categorize maps an InternalKeyKind to its ValueCategory.
func (k InternalKeyKind) Categorize() ValueCategory {
	switch k {
	case InternalKeyKindSet:
		return ValueCategoryValue
	case InternalKeyKindMerge:
		return ValueCategoryMergeValue
	case InternalKeyKindDelete:
		return ValueCategoryDelKey
	default:
		return ValueCategoryOther
	}
}

// InternalKey is a (user_key, sequence, kind) triple (spec §3). The internal
// comparator orders keys by user_key ascending, then by sequence descending,
// then by kind descending, so that for a fixed user key the newest write
// always sorts first (spec §4.A).
type InternalKey struct {
	UserKey []byte
	SeqNum  SeqNum
	Kind    InternalKeyKind
}

// MakeInternalKey constructs an InternalKey.
func MakeInternalKey(userKey []byte, seqNum SeqNum, kind InternalKeyKind) InternalKey {
	return InternalKey{UserKey: userKey, SeqNum: seqNum, Kind: kind}
}

// InternalCompare orders two internal keys: user_key asc, sequence desc, kind desc.
func InternalCompare(userCmp Compare, a, b InternalKey) int {
	if c := userCmp(a.UserKey, b.UserKey); c != 0 {
		return c
	}
	if a.SeqNum != b.SeqNum {
		if a.SeqNum > b.SeqNum {
			return -1
		}
		return 1
	}
	if a.Kind != b.Kind {
		if a.Kind > b.Kind {
			return -1
		}
		return 1
	}
	return 0
}

func (k InternalKey) String() string {
	return fmt.Sprintf("%s#%s,%s", k.UserKey, k.SeqNum, k.Kind)
}
