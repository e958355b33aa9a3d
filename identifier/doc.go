// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identifier - asset ids, owners and the account keys built
// from them
//
// An AssetID is a non-negative integer stored as 29 big endian bytes.
// Only ids of up to 12 bytes are accepted from hexadecimal input since
// the composite account number reserves exactly 96 bits for the asset.
//
// An AccountKey is the (owner, asset) pair used as the balance map key.
// Its stored form is fixed width:
//
//   len(owner)  1 byte
//   owner       32 bytes, zero padded
//   asset id    29 bytes
//
// AccountNumber is the older composite integer owner ⧺ asset which
// is only reversible for assets that fit in 96 bits.
package identifier
