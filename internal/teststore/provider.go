// Copyright 2012 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package teststore

import (
	"github.com/evilkidcl/getsmallest"
)

// Provider is a getsmallest.SuperversionProvider over a fixed, pre-built
// Superversion — there is no real engine underneath to ref-count, so
// Acquire always succeeds and Release is a no-op. Grounded in shape on
// db.go's getInternal acquire/release pairing (spec §6.2), simplified to
// the degenerate case a test fixture needs.
type Provider struct {
	SV *getsmallest.Superversion
}

var _ getsmallest.SuperversionProvider = (*Provider)(nil)

// Acquire implements getsmallest.SuperversionProvider.
func (p *Provider) Acquire() (*getsmallest.Superversion, error) {
	return p.SV, nil
}

// Release implements getsmallest.SuperversionProvider.
func (p *Provider) Release(*getsmallest.Superversion) {}
