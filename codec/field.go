// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/bitmark-inc/ledgerd/fault"
)

// FieldSize - bytes occupied by a padded field of the given width
func FieldSize(width int) int {
	return 1 + width
}

// PutField - store a length prefixed, zero padded field
//
// dst must have at least FieldSize(width) bytes
func PutField(dst []byte, data []byte, width int) error {
	if len(data) > width || width > 255 {
		return fault.ErrValueTooLarge
	}
	if len(dst) < FieldSize(width) {
		return fault.ErrTruncatedRecord
	}
	dst[0] = byte(len(data))
	n := copy(dst[1:], data)
	for i := 1 + n; i < FieldSize(width); i += 1 {
		dst[i] = 0
	}
	return nil
}

// GetField - extract the data of a padded field
//
// the result is a copy; non-zero padding is rejected so that every
// value has exactly one encoding
func GetField(src []byte, width int) ([]byte, error) {
	if len(src) < FieldSize(width) {
		return nil, fault.ErrTruncatedRecord
	}
	n := int(src[0])
	if n > width {
		return nil, fault.ErrUnexpectedRecordSize
	}
	for _, b := range src[1+n : FieldSize(width)] {
		if 0 != b {
			return nil, fault.ErrUnexpectedRecordSize
		}
	}
	data := make([]byte, n)
	copy(data, src[1:1+n])
	return data, nil
}

// PutRightAligned - store an integer's big endian bytes right aligned in dst
func PutRightAligned(dst []byte, data []byte) error {
	if len(data) > len(dst) {
		return fault.ErrValueTooLarge
	}
	offset := len(dst) - len(data)
	for i := 0; i < offset; i += 1 {
		dst[i] = 0
	}
	copy(dst[offset:], data)
	return nil
}

// TrimLeadingZeros - minimal big endian representation
func TrimLeadingZeros(data []byte) []byte {
	for i, b := range data {
		if 0 != b {
			return data[i:]
		}
	}
	return data[len(data):]
}
