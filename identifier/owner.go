// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ledgerd/fault"
)

// miscellaneous constants
const (
	MaxOwnerLength = 32
	checksumLength = 4
)

// Owner - opaque caller identity of 1 to 32 bytes
type Owner struct {
	length byte
	data   [MaxOwnerLength]byte
}

// OwnerFromBytes - copy an identity
func OwnerFromBytes(buffer []byte) (Owner, error) {
	o := Owner{}
	if 0 == len(buffer) || len(buffer) > MaxOwnerLength {
		return o, fault.ErrOwnerLength
	}
	o.length = byte(len(buffer))
	copy(o.data[:], buffer)
	return o, nil
}

// OwnerFromBase58 - decode the text form: base58(owner ⧺ checksum)
func OwnerFromBase58(s string) (Owner, error) {
	decoded, err := base58.Decode(s)
	if nil != err || len(decoded) <= checksumLength {
		return Owner{}, fault.ErrInvalidOwner
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return Owner{}, fault.ErrInvalidOwnerChecksum
	}
	return OwnerFromBytes(decoded[:checksumStart])
}

// Bytes - raw identity
func (o Owner) Bytes() []byte {
	result := make([]byte, o.length)
	copy(result, o.data[:o.length])
	return result
}

// IsZero - true for the uninitialised value
func (o Owner) IsZero() bool {
	return 0 == o.length
}

// String - base58 text form with checksum
func (o Owner) String() string {
	buffer := o.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - base58 form for JSON
func (o Owner) MarshalText() ([]byte, error) {
	if o.IsZero() {
		return nil, fault.ErrOwnerLength
	}
	return []byte(o.String()), nil
}

// UnmarshalText - parse the base58 form
func (o *Owner) UnmarshalText(s []byte) error {
	owner, err := OwnerFromBase58(string(s))
	if nil != err {
		return err
	}
	*o = owner
	return nil
}
