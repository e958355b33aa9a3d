// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding"

	"github.com/bitmark-inc/ledgerd/fault"
)

// Bound - declared size limits of an encoded value
//
// if IsFixedSize is set every encoding is exactly MaxSize bytes
type Bound struct {
	MaxSize     int
	IsFixedSize bool
}

// Storable - a value that can be written to a storage region
type Storable interface {
	encoding.BinaryMarshaler
	Bound() Bound
}

// Check - validate the length of an encoding against the bound
func (b Bound) Check(n int) error {
	if n > b.MaxSize {
		return fault.ErrRecordTooLarge
	}
	if b.IsFixedSize && n != b.MaxSize {
		return fault.ErrUnexpectedRecordSize
	}
	return nil
}

// Pack - encode a value and check it against its declared bound
func Pack(s Storable) ([]byte, error) {
	buffer, err := s.MarshalBinary()
	if nil != err {
		return nil, err
	}
	if err := s.Bound().Check(len(buffer)); nil != err {
		return nil, err
	}
	return buffer, nil
}

// ExpectLength - decoders use this to reject records that do not match a layout
func ExpectLength(buffer []byte, n int) error {
	if len(buffer) < n {
		return fault.ErrTruncatedRecord
	}
	if len(buffer) != n {
		return fault.ErrUnexpectedRecordSize
	}
	return nil
}
