// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"github.com/cockroachdb/errors"
)

// AssertionFailedf returns an internal-invariant-violation error (spec
// §7's "Aborted" class: an impossible-case classifier fallthrough, a code
// defect that should never occur in a correct build). Mirrors the teacher's
// own use of errors.AssertionFailedf at comparer/invariant boundaries.
func AssertionFailedf(format string, args ...interface{}) error {
	return errors.AssertionFailedf(format, args...)
}

// MarkAborted wraps err to signal that the query must abort because of an
// internal invariant violation rather than an I/O failure.
func MarkAborted(err error) error {
	return errors.Wrap(err, "get-smallest: internal invariant violated")
}
