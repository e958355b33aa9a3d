// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/binary"

	"github.com/bitmark-inc/ledgerd/codec"
	"github.com/bitmark-inc/ledgerd/identifier"
)

// event codes
const (
	AssetCreated uint16 = 1
)

// record layout
const (
	assetStart  = 0
	assetFinish = assetStart + identifier.AssetIDSize

	eventStart  = assetFinish
	eventFinish = eventStart + 2

	updateLength = eventFinish

	// declared limit leaves room for later fields
	maxUpdateSize = 70
)

// Update - one asset lifecycle event
type Update struct {
	Asset   identifier.AssetID `json:"asset"`
	EventID uint16             `json:"eventId"`
}

// Bound - of the stored form
func (u Update) Bound() codec.Bound {
	return codec.Bound{MaxSize: maxUpdateSize}
}

// MarshalBinary - asset id ⧺ event id
func (u Update) MarshalBinary() ([]byte, error) {
	buffer := make([]byte, updateLength)
	copy(buffer[assetStart:assetFinish], u.Asset[:])
	binary.BigEndian.PutUint16(buffer[eventStart:eventFinish], u.EventID)
	return buffer, nil
}

// UnmarshalBinary - reject anything but the exact layout
func (u *Update) UnmarshalBinary(buffer []byte) error {
	if err := codec.ExpectLength(buffer, updateLength); nil != err {
		return err
	}
	copy(u.Asset[:], buffer[assetStart:assetFinish])
	u.EventID = binary.BigEndian.Uint16(buffer[eventStart:eventFinish])
	return nil
}
