// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of regions.
// Each region is defined by a prefix byte that is obtained from the
// region tag in the struct defining the available regions.  A region
// is handed to exactly one structure (a map or a log) and, since all
// of its keys share the prefix, can grow without touching any other
// region.
//
// Notes:
// 1. each region has a single byte prefix; tags must never change
//    once data has been written
// 2. ⧺          = concatenation of byte data
// 3. asset id   = 29 byte big endian integer, left zero padded
// 4. account    = owner length(1) ⧺ owner(32, zero padded) ⧺ asset id
// 5. index      = big endian uint64 (8 bytes)
// 6. quantity   = big endian uint128 (16 bytes)
//
// Assets:
//
//   0x00 ⧺ asset id            - registered asset
//                                data: created on ⧺ amendment count ⧺ issuer field
//
// Asset update log:
//
//   0x01 ⧺ 'H'                 - log header
//                                data: "LGH" ⧺ version(1) ⧺ length(uint64)
//   0x02 ⧺ index               - log entry
//                                data: asset id ⧺ event id(uint16)
//
// 0x03 is reserved and never used
//
// Balances:
//
//   0x04 ⧺ asset id            - total units issued
//                                data: quantity
//   0x05 ⧺ account             - balance of an owner for one asset
//                                data: quantity
//
// Testing:
//
//   0xc8 ⧺ key                 - testing data
//
// Metadata:
//
//   0xff ⧺ "VERSION"           - database version (big endian uint32)
package storage
