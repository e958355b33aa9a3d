// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"

	"lukechampine.com/uint128"
)

// Uint128Size - bytes in an encoded 128 bit unsigned value
const Uint128Size = 16

// Uint128 - storable unsigned 128 bit quantity
type Uint128 struct {
	Value uint128.Uint128
}

// Bound - always 16 bytes
func (u Uint128) Bound() Bound {
	return Bound{MaxSize: Uint128Size, IsFixedSize: true}
}

// MarshalBinary - big endian
func (u Uint128) MarshalBinary() ([]byte, error) {
	buffer := make([]byte, Uint128Size)
	binary.BigEndian.PutUint64(buffer[:8], u.Value.Hi)
	binary.BigEndian.PutUint64(buffer[8:], u.Value.Lo)
	return buffer, nil
}

// UnmarshalBinary - big endian, exactly 16 bytes
func (u *Uint128) UnmarshalBinary(buffer []byte) error {
	if err := ExpectLength(buffer, Uint128Size); nil != err {
		return err
	}
	u.Value = uint128.New(binary.BigEndian.Uint64(buffer[8:]), binary.BigEndian.Uint64(buffer[:8]))
	return nil
}
