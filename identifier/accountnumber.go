// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"math/big"
)

// low 96 bits hold the asset
const assetMaskHex = "FFFFFFFFFFFFFFFFFFFFFFFF"

var assetMask, _ = new(big.Int).SetString(assetMaskHex, 16)

// AccountNumber - composite integer owner ⧺ asset
//
// the asset occupies the low 12 bytes when it fits; a wider asset is
// appended unpadded and its high bytes overlap the owner on split
func AccountNumber(owner Owner, asset AssetID) *big.Int {
	assetBytes := asset.Bytes()
	if len(assetBytes) < maxAssetIDWidth {
		padded := make([]byte, maxAssetIDWidth)
		copy(padded[maxAssetIDWidth-len(assetBytes):], assetBytes)
		assetBytes = padded
	}

	buffer := append(owner.Bytes(), assetBytes...)
	return new(big.Int).SetBytes(buffer)
}

// Number - the account number of a key
func (k AccountKey) Number() *big.Int {
	return AccountNumber(k.Owner, k.Asset)
}

// SplitAccountNumber - recover owner bytes and asset from an account number
//
// leading zero bytes of the owner are lost; the owner result is empty
// for numbers below 2^96
func SplitAccountNumber(n *big.Int) ([]byte, *big.Int) {
	asset := new(big.Int).And(n, assetMask)
	owner := new(big.Int).Rsh(n, AssetIDBits)
	return owner.Bytes(), asset
}
