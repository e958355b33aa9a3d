// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - the append-only history of asset lifecycle events
//
// entries are never changed or removed once appended and are addressed
// by their zero based position
package event
