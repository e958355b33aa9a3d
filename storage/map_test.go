// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/uint128"

	"github.com/bitmark-inc/ledgerd/codec"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
)

var u128Bound = codec.Bound{MaxSize: codec.Uint128Size, IsFixedSize: true}

func u128(n uint64) codec.Uint128 {
	return codec.Uint128{Value: uint128.From64(n)}
}

func TestMap(t *testing.T) {
	s := setup(t)
	defer func() { teardown(s) }()

	m := storage.NewMap(s.Regions.TotalUnits, u128Bound, u128Bound)
	assert.Equal(t, s.Regions.TotalUnits, m.Region(), "region")

	var value codec.Uint128
	found, err := m.Get(u128(1), &value)
	assert.Nil(t, err, "get absent")
	assert.False(t, found, "absent")

	err = m.Put(u128(1), u128(1000))
	assert.Nil(t, err, "put")

	found, err = m.Get(u128(1), &value)
	assert.Nil(t, err, "get")
	assert.True(t, found, "present")
	assert.Equal(t, uint64(1000), value.Value.Lo, "value")

	has, err := m.Has(u128(1))
	assert.Nil(t, err, "has")
	assert.True(t, has, "has")

	// overwrite
	err = m.Put(u128(1), u128(500))
	assert.Nil(t, err, "overwrite")
	found, err = m.Get(u128(1), &value)
	assert.Nil(t, err, "get")
	assert.True(t, found, "present")
	assert.Equal(t, uint64(500), value.Value.Lo, "overwritten value")
}

func TestMapBatch(t *testing.T) {
	s := setup(t)
	defer func() { teardown(s) }()

	m1 := storage.NewMap(s.Regions.TotalUnits, u128Bound, u128Bound)
	m2 := storage.NewMap(s.Regions.Accounts, u128Bound, u128Bound)

	b := m1.NewBatch()
	assert.Nil(t, m1.BatchPut(b, u128(7), u128(70)), "batch put 1")
	assert.Nil(t, m2.BatchPut(b, u128(7), u128(77)), "batch put 2")

	has, _ := m1.Has(u128(7))
	assert.False(t, has, "not before commit")

	assert.Nil(t, b.Commit(), "commit")

	var value codec.Uint128
	found, _ := m1.Get(u128(7), &value)
	assert.True(t, found, "m1")
	assert.Equal(t, uint64(70), value.Value.Lo, "m1 value")
	found, _ = m2.Get(u128(7), &value)
	assert.True(t, found, "m2")
	assert.Equal(t, uint64(77), value.Value.Lo, "m2 value")
}

func TestMapBounds(t *testing.T) {
	s := setup(t)
	defer func() { teardown(s) }()

	m := storage.NewMap(s.Regions.TestData, u128Bound, codec.Bound{MaxSize: 8})

	err := m.Put(u128(1), u128(1))
	assert.Equal(t, fault.ErrRecordTooLarge, err, "value exceeds map bound")

	small := storage.NewMap(s.Regions.TestData, codec.Bound{MaxSize: 4}, u128Bound)
	err = small.Put(u128(1), u128(1))
	assert.Equal(t, fault.ErrRecordTooLarge, err, "key exceeds map bound")

	// a malformed stored value is rejected on decode
	key, _ := u128(2).MarshalBinary()
	s.Regions.TestData.Put(key, []byte{1, 2, 3})
	var value codec.Uint128
	found, err := m.Get(u128(2), &value)
	assert.False(t, found, "not decoded")
	assert.Equal(t, fault.ErrTruncatedRecord, err, "truncated")
}
