// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - fixed layout binary encoding for stored values
//
// every value written to storage declares an upper bound on its
// encoded size so that each region holds records of a known maximum
// width
//
// Notes:
// 1. ⧺          = concatenation of byte data
// 2. uintN      = big endian, N/8 bytes
// 3. field(W)   = length(1 byte) ⧺ data ⧺ zero padding up to W data bytes
//
// decoding never returns a partially filled value: any record that
// does not match its layout exactly is rejected with a RecordError
package codec
