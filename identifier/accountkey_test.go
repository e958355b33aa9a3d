// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/identifier"
)

func TestAccountKeyRoundTrip(t *testing.T) {
	owners := [][]byte{
		{0x04},
		bytes.Repeat([]byte{0x11}, 10),
		bytes.Repeat([]byte{0x22}, 29),
		bytes.Repeat([]byte{0xff}, 32),
		{0x00, 0x00, 0x01},
	}
	assets := []string{"00", "01", sampleAssetHex, "FFFFFFFFFFFFFFFFFFFFFFFF"}

	for i, ob := range owners {
		owner := makeOwner(t, ob)
		for j, h := range assets {
			asset, err := identifier.ParseAssetID(h)
			if !assert.Nil(t, err, "%d/%d: parse", i, j) {
				continue
			}

			key := identifier.MakeAccountKey(owner, asset)
			buffer, err := key.MarshalBinary()
			if !assert.Nil(t, err, "%d/%d: marshal", i, j) {
				continue
			}
			assert.Equal(t, identifier.AccountKeySize, len(buffer), "%d/%d: size", i, j)
			assert.Nil(t, key.Bound().Check(len(buffer)), "%d/%d: bound", i, j)

			var decoded identifier.AccountKey
			assert.Nil(t, decoded.UnmarshalBinary(buffer), "%d/%d: unmarshal", i, j)

			o, a := decoded.Split()
			assert.Equal(t, owner, o, "%d/%d: owner", i, j)
			assert.Equal(t, asset, a, "%d/%d: asset", i, j)

			prefix, err := identifier.OwnerPrefix(owner)
			assert.Nil(t, err, "%d/%d: prefix", i, j)
			assert.True(t, bytes.HasPrefix(buffer, prefix), "%d/%d: key starts with owner prefix", i, j)
		}
	}
}

// a wide asset is still exact in the stored key
func TestAccountKeyWideAsset(t *testing.T) {
	owner := makeOwner(t, []byte{0x01, 0x02})
	n, _ := new(big.Int).SetString("ABCDEF0123456789ABCDEF0123456789", 16)
	asset, err := identifier.NewAssetID(n)
	if !assert.Nil(t, err, "wide asset") {
		return
	}

	buffer, err := identifier.MakeAccountKey(owner, asset).MarshalBinary()
	assert.Nil(t, err, "marshal")

	var decoded identifier.AccountKey
	assert.Nil(t, decoded.UnmarshalBinary(buffer), "unmarshal")
	assert.Equal(t, asset, decoded.Asset, "asset")
	assert.Equal(t, owner, decoded.Owner, "owner")
}

func TestAccountKeyInvalid(t *testing.T) {
	_, err := identifier.AccountKey{}.MarshalBinary()
	assert.Equal(t, fault.ErrOwnerLength, err, "zero owner")

	var k identifier.AccountKey
	err = k.UnmarshalBinary(make([]byte, identifier.AccountKeySize-1))
	assert.Equal(t, fault.ErrTruncatedRecord, err, "short")

	// zero length owner
	err = k.UnmarshalBinary(make([]byte, identifier.AccountKeySize))
	assert.Equal(t, fault.ErrOwnerLength, err, "empty owner")

	// oversize owner length byte
	buffer := make([]byte, identifier.AccountKeySize)
	buffer[0] = 33
	err = k.UnmarshalBinary(buffer)
	assert.Equal(t, fault.ErrUnexpectedRecordSize, err, "owner too long")

	// data in the padding
	buffer[0] = 1
	buffer[1] = 0x01
	buffer[2] = 0x01
	err = k.UnmarshalBinary(buffer)
	assert.Equal(t, fault.ErrUnexpectedRecordSize, err, "dirty padding")
}

func TestAccountKeyOrdering(t *testing.T) {
	owner := makeOwner(t, []byte{0x10, 0x20})
	other := makeOwner(t, []byte{0x10, 0x21})

	a1, _ := identifier.ParseAssetID("01")
	a2, _ := identifier.ParseAssetID("0100")

	k1, _ := identifier.MakeAccountKey(owner, a1).MarshalBinary()
	k2, _ := identifier.MakeAccountKey(owner, a2).MarshalBinary()
	k3, _ := identifier.MakeAccountKey(other, a1).MarshalBinary()

	assert.Equal(t, -1, bytes.Compare(k1, k2), "same owner ordered by asset")
	assert.Equal(t, -1, bytes.Compare(k2, k3), "owners are contiguous")
}
