// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Each error belongs to exactly one class so that callers can tell a
// malformed request (Invalid) from a missing record (NotFound) and from
// a balance that cannot be moved (Arithmetic)
package fault
