// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the single entry point for every ledger operation
//
// A Ledger owns the asset registry, the event log and the balance maps
// built over one storage.Store.  Each operation holds the ledger lock
// from start to finish so operations run one at a time in the order
// they acquire it.
//
// Caller identities and timestamps come from the dispatch layer; the
// caller is trusted as given.
package ledger
