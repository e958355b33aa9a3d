// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/bitmark-inc/ledgerd/codec"
	"github.com/bitmark-inc/ledgerd/fault"
)

// sizes in bytes
const (
	AssetIDSize = 29 // stored form
	AssetIDBits = 96 // usable width inside an account number

	maxAssetIDWidth = AssetIDBits / 8
)

// AssetID - canonical fixed width big endian asset identifier
type AssetID [AssetIDSize]byte

// ParseAssetID - convert hexadecimal text to an asset id
//
// leading zero digits are ignored; the value must fit in 12 bytes
func ParseAssetID(s string) (AssetID, error) {
	id := AssetID{}
	if "" == s {
		return id, fault.ErrInvalidHex
	}
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return id, fault.ErrInvalidHex
	}
	buffer = codec.TrimLeadingZeros(buffer)
	if len(buffer) > maxAssetIDWidth {
		return id, fault.ErrAssetIdTooWide
	}
	err = codec.PutRightAligned(id[:], buffer)
	return id, err
}

// NewAssetID - asset id from an integer of up to 29 bytes
func NewAssetID(n *big.Int) (AssetID, error) {
	id := AssetID{}
	if n.Sign() < 0 {
		return id, fault.ErrNegativeValue
	}
	err := codec.PutRightAligned(id[:], n.Bytes())
	return id, err
}

// AssetIDFromBytes - asset id from minimal (or zero padded) big endian bytes
func AssetIDFromBytes(buffer []byte) (AssetID, error) {
	id := AssetID{}
	err := codec.PutRightAligned(id[:], codec.TrimLeadingZeros(buffer))
	return id, err
}

// Bytes - minimal big endian representation, empty for zero
func (id AssetID) Bytes() []byte {
	b := codec.TrimLeadingZeros(id[:])
	result := make([]byte, len(b))
	copy(result, b)
	return result
}

// Big - integer value
func (id AssetID) Big() *big.Int {
	return new(big.Int).SetBytes(id[:])
}

// IsWide - true if the id does not fit the 96 bit account number field
func (id AssetID) IsWide() bool {
	return len(codec.TrimLeadingZeros(id[:])) > maxAssetIDWidth
}

// String - upper case hex of the minimal bytes ("00" for zero)
func (id AssetID) String() string {
	b := id.Bytes()
	if 0 == len(b) {
		return "00"
	}
	return strings.ToUpper(hex.EncodeToString(b))
}

// MarshalText - hex text form for JSON
func (id AssetID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - accepts the same input as ParseAssetID
func (id *AssetID) UnmarshalText(s []byte) error {
	a, err := ParseAssetID(string(s))
	if nil != err {
		return err
	}
	*id = a
	return nil
}

// Bound - always 29 bytes
func (id AssetID) Bound() codec.Bound {
	return codec.Bound{MaxSize: AssetIDSize, IsFixedSize: true}
}

// MarshalBinary - the 29 byte stored form
func (id AssetID) MarshalBinary() ([]byte, error) {
	buffer := make([]byte, AssetIDSize)
	copy(buffer, id[:])
	return buffer, nil
}

// UnmarshalBinary - exactly 29 bytes
func (id *AssetID) UnmarshalBinary(buffer []byte) error {
	if err := codec.ExpectLength(buffer, AssetIDSize); nil != err {
		return err
	}
	copy(id[:], buffer)
	return nil
}
