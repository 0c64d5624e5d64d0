// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

// Compare returns -1, 0, or +1 depending on whether a is 'less than', 'equal
// to' or 'greater than' b. Both a and b must be valid user keys. Compare is
// stateless and shared across every query run against a store: it is the
// whole of component A (spec §4.A). The get-smallest operator consumes an
// already-built store and never writes index blocks, so it never reaches
// the rest of pebble's Comparer (Split, Separator, Successor, FormatKey,
// Name) — that machinery exists only to support SSTable block construction
// and MVCC suffix encoding.
type Compare func(a, b []byte) int
