// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"

	"github.com/bitmark-inc/ledgerd/codec"
	"github.com/bitmark-inc/ledgerd/identifier"
)

// record layout
const (
	createdStart  = 0
	createdFinish = createdStart + 8

	amendmentStart  = createdFinish
	amendmentFinish = amendmentStart + 4

	issuerStart  = amendmentFinish
	issuerFinish = issuerStart + 1 + identifier.MaxOwnerLength

	recordLength = issuerFinish

	maxRecordSize = 70
)

// Record - metadata of one asset
//
// AmendmentCount is never incremented; it is kept so the stored layout
// has room for amendment tracking
type Record struct {
	Issuer         identifier.Owner `json:"issuer"`
	CreatedOn      uint64           `json:"createdOn"`
	AmendmentCount uint32           `json:"amendmentCount"`
}

// Bound - of the stored form
func (r Record) Bound() codec.Bound {
	return codec.Bound{MaxSize: maxRecordSize}
}

// MarshalBinary - created on ⧺ amendment count ⧺ issuer field
func (r Record) MarshalBinary() ([]byte, error) {
	buffer := make([]byte, recordLength)
	binary.BigEndian.PutUint64(buffer[createdStart:createdFinish], r.CreatedOn)
	binary.BigEndian.PutUint32(buffer[amendmentStart:amendmentFinish], r.AmendmentCount)
	err := codec.PutField(buffer[issuerStart:issuerFinish], r.Issuer.Bytes(), identifier.MaxOwnerLength)
	if nil != err {
		return nil, err
	}
	return buffer, nil
}

// UnmarshalBinary - reject anything but the exact layout
func (r *Record) UnmarshalBinary(buffer []byte) error {
	if err := codec.ExpectLength(buffer, recordLength); nil != err {
		return err
	}
	issuer, err := codec.GetField(buffer[issuerStart:issuerFinish], identifier.MaxOwnerLength)
	if nil != err {
		return err
	}
	r.Issuer, err = identifier.OwnerFromBytes(issuer)
	if nil != err {
		return err
	}
	r.CreatedOn = binary.BigEndian.Uint64(buffer[createdStart:createdFinish])
	r.AmendmentCount = binary.BigEndian.Uint32(buffer[amendmentStart:amendmentFinish])
	return nil
}
