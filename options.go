// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package getsmallest

import "github.com/evilkidcl/getsmallest/internal/base"

// GetOptions hold the optional per-query parameters for GetSmallest and
// GetSmallestAtOrAfter (spec §6.1's read_options, restricted to the
// preconditions the spec asserts: no timestamp, no snapshot, range
// deletions never ignored).
//
// Like pebble's ReadOptions, a nil *GetOptions is valid and means to use the
// default values.
type GetOptions struct {
	// Logger receives diagnostic output when DebugPrints or
	// ReportItersProgress is set. Defaults to base.DefaultLogger.
	Logger base.Logger

	// DebugPrints mirrors the source's gs_debug_prints flag (spec §6.3):
	// level transitions and CSK updates. A process-wide global in the
	// source, made per-query here per the REDESIGN note in spec §9.
	DebugPrints bool
	// ReportItersProgress mirrors gs_report_iters_progress: one line per
	// step of ProcessLogLevel's main loop, saying which of the value
	// iterator, range-tombstone iterator and del-list cursor are valid.
	ReportItersProgress bool
	// ValidateItersProgress mirrors gs_validate_iters_progress: asserts
	// per-iteration progress (spec §4.E.4). ProcessLogLevel checks this
	// invariant only when the flag is set, and aborts the query if a step
	// advanced none of the three cursors. It logs nothing.
	ValidateItersProgress bool
}

// EnsureDefaults returns o with every optional field populated. If o is nil,
// returns a GetOptions with every debug flag off and the default logger.
func (o *GetOptions) EnsureDefaults() *GetOptions {
	if o == nil {
		return &GetOptions{Logger: base.DefaultLogger{}}
	}
	if o.Logger != nil {
		return o
	}
	n := *o
	n.Logger = base.DefaultLogger{}
	return &n
}

func (o *GetOptions) debugf(format string, args ...interface{}) {
	if o.DebugPrints {
		o.Logger.Infof(format, args...)
	}
}

func (o *GetOptions) reportIter(format string, args ...interface{}) {
	if o.ReportItersProgress {
		o.Logger.Infof(format, args...)
	}
}
