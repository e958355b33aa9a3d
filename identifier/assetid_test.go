// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier_test

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/identifier"
)

const sampleAssetHex = "F94E2AD9DD5CBBC041430001"

func TestParseAssetID(t *testing.T) {
	tests := []struct {
		hex      string
		expected string
		err      error
	}{
		{sampleAssetHex, sampleAssetHex, nil},
		{"f94e2ad9dd5cbbc041430001", sampleAssetHex, nil},
		{"0001", "01", nil},
		{"00", "00", nil},
		{"000000000000000000000000000000ff", "FF", nil},
		{"FFFFFFFFFFFFFFFFFFFFFFFF", "FFFFFFFFFFFFFFFFFFFFFFFF", nil},
		{"01FFFFFFFFFFFFFFFFFFFFFFFF", "", fault.ErrAssetIdTooWide},
		{"", "", fault.ErrInvalidHex},
		{"abc", "", fault.ErrInvalidHex},
		{"xy", "", fault.ErrInvalidHex},
		{"0x01", "", fault.ErrInvalidHex},
	}

	for i, item := range tests {
		id, err := identifier.ParseAssetID(item.hex)
		assert.Equal(t, item.err, err, "%d: error for: %q", i, item.hex)
		if nil != err {
			assert.True(t, fault.IsErrInvalid(err), "%d: class", i)
			continue
		}
		assert.Equal(t, item.expected, id.String(), "%d: string", i)
	}
}

func TestAssetIDOrdering(t *testing.T) {
	values := []string{"00", "01", "FF", "0100", "FFFF", sampleAssetHex}

	var previous []byte
	for i, h := range values {
		id, err := identifier.ParseAssetID(h)
		if !assert.Nil(t, err, "%d: parse", i) {
			return
		}
		buffer, err := id.MarshalBinary()
		assert.Nil(t, err, "%d: marshal", i)
		assert.Equal(t, identifier.AssetIDSize, len(buffer), "%d: size", i)
		if nil != previous {
			assert.Equal(t, -1, bytes.Compare(previous, buffer), "%d: byte order must follow integer order", i)
		}
		previous = buffer
	}
}

func TestAssetIDBinary(t *testing.T) {
	id, err := identifier.ParseAssetID(sampleAssetHex)
	if !assert.Nil(t, err, "parse") {
		return
	}

	bound := id.Bound()
	assert.Equal(t, identifier.AssetIDSize, bound.MaxSize, "bound size")
	assert.True(t, bound.IsFixedSize, "fixed")

	buffer, err := id.MarshalBinary()
	assert.Nil(t, err, "marshal")
	assert.Nil(t, bound.Check(len(buffer)), "encoding within bound")

	var decoded identifier.AssetID
	assert.Nil(t, decoded.UnmarshalBinary(buffer), "unmarshal")
	assert.Equal(t, id, decoded, "round trip")

	err = decoded.UnmarshalBinary(buffer[1:])
	assert.Equal(t, fault.ErrTruncatedRecord, err, "short")
	assert.True(t, fault.IsErrRecord(err), "class")

	err = decoded.UnmarshalBinary(append(buffer, 0))
	assert.Equal(t, fault.ErrUnexpectedRecordSize, err, "long")
}

func TestNewAssetID(t *testing.T) {
	n, _ := new(big.Int).SetString("123456789abcdef0123456789abcdef0", 16)
	id, err := identifier.NewAssetID(n)
	assert.Nil(t, err, "wide id")
	assert.True(t, id.IsWide(), "wide")
	assert.Equal(t, 0, n.Cmp(id.Big()), "value")

	// 29 bytes is the limit
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 29*8), big.NewInt(1))
	_, err = identifier.NewAssetID(max)
	assert.Nil(t, err, "29 bytes")

	_, err = identifier.NewAssetID(new(big.Int).Add(max, big.NewInt(1)))
	assert.Equal(t, fault.ErrValueTooLarge, err, "30 bytes")

	_, err = identifier.NewAssetID(big.NewInt(-1))
	assert.Equal(t, fault.ErrNegativeValue, err, "negative")

	narrow, err := identifier.NewAssetID(big.NewInt(0x1234))
	assert.Nil(t, err, "narrow")
	assert.False(t, narrow.IsWide(), "not wide")
	assert.Equal(t, []byte{0x12, 0x34}, narrow.Bytes(), "bytes")

	fromBytes, err := identifier.AssetIDFromBytes([]byte{0x00, 0x12, 0x34})
	assert.Nil(t, err, "from bytes")
	assert.Equal(t, narrow, fromBytes, "same id")
}

func TestAssetIDJSON(t *testing.T) {
	id, _ := identifier.ParseAssetID(sampleAssetHex)

	buffer, err := json.Marshal(id)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `"`+sampleAssetHex+`"`, string(buffer), "json")

	var decoded identifier.AssetID
	assert.Nil(t, json.Unmarshal(buffer, &decoded), "unmarshal")
	assert.Equal(t, id, decoded, "round trip")

	assert.NotNil(t, json.Unmarshal([]byte(`"zz"`), &decoded), "bad hex")
}
