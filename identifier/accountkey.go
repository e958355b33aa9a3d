// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"github.com/bitmark-inc/ledgerd/codec"
	"github.com/bitmark-inc/ledgerd/fault"
)

// stored layout
const (
	ownerStart  = 0
	ownerFinish = ownerStart + 1 + MaxOwnerLength

	assetStart  = ownerFinish
	assetFinish = assetStart + AssetIDSize

	AccountKeySize = assetFinish
)

// AccountKey - the (owner, asset) pair that identifies a balance
type AccountKey struct {
	Owner Owner
	Asset AssetID
}

// MakeAccountKey - combine an owner and an asset
func MakeAccountKey(owner Owner, asset AssetID) AccountKey {
	return AccountKey{
		Owner: owner,
		Asset: asset,
	}
}

// Split - the owner and asset of a key
func (k AccountKey) Split() (Owner, AssetID) {
	return k.Owner, k.Asset
}

// Bound - always 62 bytes
func (k AccountKey) Bound() codec.Bound {
	return codec.Bound{MaxSize: AccountKeySize, IsFixedSize: true}
}

// MarshalBinary - fixed 62 byte form
//
// keys for one owner are contiguous and ordered by asset id
func (k AccountKey) MarshalBinary() ([]byte, error) {
	if k.Owner.IsZero() {
		return nil, fault.ErrOwnerLength
	}
	buffer := make([]byte, AccountKeySize)
	err := codec.PutField(buffer[ownerStart:ownerFinish], k.Owner.Bytes(), MaxOwnerLength)
	if nil != err {
		return nil, err
	}
	copy(buffer[assetStart:assetFinish], k.Asset[:])
	return buffer, nil
}

// UnmarshalBinary - decode the fixed 62 byte form
func (k *AccountKey) UnmarshalBinary(buffer []byte) error {
	if err := codec.ExpectLength(buffer, AccountKeySize); nil != err {
		return err
	}
	data, err := codec.GetField(buffer[ownerStart:ownerFinish], MaxOwnerLength)
	if nil != err {
		return err
	}
	owner, err := OwnerFromBytes(data)
	if nil != err {
		return err
	}
	k.Owner = owner
	copy(k.Asset[:], buffer[assetStart:assetFinish])
	return nil
}

// OwnerPrefix - the leading bytes shared by every key of an owner
//
// used to seek a cursor to the start of an owner's accounts
func OwnerPrefix(owner Owner) ([]byte, error) {
	if owner.IsZero() {
		return nil, fault.ErrOwnerLength
	}
	buffer := make([]byte, ownerFinish)
	err := codec.PutField(buffer, owner.Bytes(), MaxOwnerLength)
	return buffer, err
}
