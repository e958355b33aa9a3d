// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/event"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/identifier"
	"github.com/bitmark-inc/ledgerd/storage"
)

// record and event are committed together
func TestCreateWritesRecordAndEvent(t *testing.T) {
	s := setup(t)
	defer func() { teardown(s) }()

	reg, events := newRegistry(t, s)
	id := parseID(t, "0def")

	assert.False(t, reg.Exists(id), "absent before create")
	assert.Nil(t, reg.Create(owner(t, 0x07), id, 30), "create")
	assert.True(t, reg.Exists(id), "record written")
	if assert.Equal(t, uint64(1), events.Len(), "one event") {
		u, err := events.Get(0)
		assert.Nil(t, err, "event")
		assert.Equal(t, id, u.Asset, "event asset")
		assert.Equal(t, event.AssetCreated, u.EventID, "event id")
	}

	// a store that cannot commit leaves neither behind
	s.Close()
	err := reg.Create(owner(t, 0x08), parseID(t, "0fed"), 31)
	assert.Equal(t, fault.ErrNotInitialised, err, "closed store")
	assert.Equal(t, uint64(1), events.Len(), "no event after failure")
}

func newRegistry(t *testing.T, s *storage.Store) (*asset.Registry, *event.Log) {
	events, err := event.Open(s.Regions.EventIndex, s.Regions.EventData)
	if nil != err {
		t.Fatalf("event log open error: %s", err)
	}
	return asset.NewRegistry(s.Regions.Assets, events), events
}

func owner(t *testing.T, b byte) identifier.Owner {
	o, err := identifier.OwnerFromBytes(bytes.Repeat([]byte{b}, 29))
	if nil != err {
		t.Fatalf("owner error: %s", err)
	}
	return o
}

func parseID(t *testing.T, h string) identifier.AssetID {
	id, err := identifier.ParseAssetID(h)
	if nil != err {
		t.Fatalf("parse asset id error: %s", err)
	}
	return id
}

func TestRecordCodec(t *testing.T) {
	r := asset.Record{
		Issuer:         owner(t, 0x42),
		CreatedOn:      1234567890123,
		AmendmentCount: 0,
	}

	buffer, err := r.MarshalBinary()
	assert.Nil(t, err, "marshal")
	assert.Equal(t, 45, len(buffer), "encoded size")
	assert.Nil(t, r.Bound().Check(len(buffer)), "within bound")
	assert.Equal(t, 70, r.Bound().MaxSize, "declared bound")

	var decoded asset.Record
	assert.Nil(t, decoded.UnmarshalBinary(buffer), "unmarshal")
	assert.Equal(t, r, decoded, "round trip")

	err = decoded.UnmarshalBinary(buffer[:20])
	assert.Equal(t, fault.ErrTruncatedRecord, err, "truncated")

	_, err = asset.Record{}.MarshalBinary()
	assert.Nil(t, err, "zero issuer encodes")
	empty, _ := asset.Record{}.MarshalBinary()
	err = decoded.UnmarshalBinary(empty)
	assert.Equal(t, fault.ErrOwnerLength, err, "zero issuer rejected on decode")
}

func TestCreateAndGet(t *testing.T) {
	s := setup(t)
	defer func() { teardown(s) }()

	reg, events := newRegistry(t, s)
	id := parseID(t, "F94E2AD9DD5CBBC041430001")
	issuer := owner(t, 0x01)

	assert.False(t, reg.Exists(id), "not yet created")

	err := reg.Create(issuer, id, 1000)
	assert.Nil(t, err, "create")
	assert.True(t, reg.Exists(id), "created")

	r, err := reg.Get(id)
	if assert.Nil(t, err, "get") {
		assert.Equal(t, issuer, r.Issuer, "issuer")
		assert.Equal(t, uint64(1000), r.CreatedOn, "created on")
		assert.Equal(t, uint32(0), r.AmendmentCount, "amendment count")
	}

	assert.Equal(t, uint64(1), events.Len(), "one event")
	u, err := events.Get(0)
	if assert.Nil(t, err, "event") {
		assert.Equal(t, id, u.Asset, "event asset")
		assert.Equal(t, event.AssetCreated, u.EventID, "event id")
	}
}

func TestGetMissing(t *testing.T) {
	s := setup(t)
	defer func() { teardown(s) }()

	reg, _ := newRegistry(t, s)
	_, err := reg.Get(parseID(t, "01"))
	assert.Equal(t, fault.ErrAssetNotFound, err, "missing")
	assert.True(t, fault.IsErrNotFound(err), "class")
}

// creating twice replaces the record and records a second event
func TestCreateOverwrites(t *testing.T) {
	s := setup(t)
	defer func() { teardown(s) }()

	reg, events := newRegistry(t, s)
	id := parseID(t, "0abc")

	assert.Nil(t, reg.Create(owner(t, 0x01), id, 10), "first")
	assert.Nil(t, reg.Create(owner(t, 0x02), id, 20), "second")

	r, err := reg.Get(id)
	if assert.Nil(t, err, "get") {
		assert.Equal(t, owner(t, 0x02), r.Issuer, "issuer replaced")
		assert.Equal(t, uint64(20), r.CreatedOn, "created on replaced")
		assert.Equal(t, uint32(0), r.AmendmentCount, "amendment count reset")
	}
	assert.Equal(t, uint64(2), events.Len(), "two events")
}

func TestCreateZeroOwner(t *testing.T) {
	s := setup(t)
	defer func() { teardown(s) }()

	reg, events := newRegistry(t, s)
	err := reg.Create(identifier.Owner{}, parseID(t, "01"), 1)
	assert.Equal(t, fault.ErrOwnerLength, err, "zero owner")
	assert.Equal(t, uint64(0), events.Len(), "no event")
}
