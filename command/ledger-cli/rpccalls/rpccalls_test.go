// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
	"lukechampine.com/uint128"

	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/balance"
	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/event"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/rpc/fixtures"
	"github.com/bitmark-inc/ledgerd/rpc/mocks"
	"github.com/bitmark-inc/ledgerd/rpc/server"
	"github.com/bitmark-inc/logger"
)

// connect a client to a server backed by a mock ledger
func setup(t *testing.T, verbose bool) (*Client, *mocks.MockHandle, *bytes.Buffer, func()) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	l := mocks.NewMockHandle(ctl)

	c := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "2.0", &c, rate.NewLimiter(1000, 1000), l)

	clientConn, serverConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	buffer := &bytes.Buffer{}
	client := newClient(clientConn, verbose, buffer)

	return client, l, buffer, func() {
		client.Close()
		ctl.Finish()
		fixtures.TeardownTestLogger()
	}
}

func TestCreateAndGetAsset(t *testing.T) {
	client, l, buffer, done := setup(t, true)
	defer done()

	issuer := fixtures.Owner(1)
	l.EXPECT().CreateAsset(issuer, fixtures.AssetHex).Return(nil).Times(1)
	l.EXPECT().GetAsset(fixtures.AssetHex).Return(&asset.Record{
		Issuer:    issuer,
		CreatedOn: 99,
	}, nil).Times(1)

	created, err := client.CreateAsset(issuer, fixtures.AssetHex)
	assert.Nil(t, err, "wrong create error")
	assert.Equal(t, fixtures.AssetHex, created.Asset, "wrong asset")

	got, err := client.GetAsset(fixtures.AssetHex)
	assert.Nil(t, err, "wrong get error")
	assert.Equal(t, issuer, got.Issuer, "wrong issuer")
	assert.Equal(t, uint64(99), got.CreatedOn, "wrong created on")

	assert.Contains(t, buffer.String(), "Create Asset Request:", "missing verbose output")
	assert.Contains(t, buffer.String(), "Get Asset Reply:", "missing verbose output")
}

func TestGetAssetNotFound(t *testing.T) {
	client, l, buffer, done := setup(t, false)
	defer done()

	l.EXPECT().GetAsset(fixtures.AssetHex).Return(nil, fault.ErrAssetNotFound).Times(1)

	_, err := client.GetAsset(fixtures.AssetHex)
	assert.NotNil(t, err, "missing error")
	assert.Equal(t, fault.ErrAssetNotFound.Error(), err.Error(), "wrong error")
	assert.Equal(t, 0, buffer.Len(), "quiet client wrote output")
}

func TestEvents(t *testing.T) {
	client, l, _, done := setup(t, false)
	defer done()

	id := fixtures.AssetID()
	updates := []event.Update{
		{Asset: id, EventID: event.AssetCreated},
		{Asset: id, EventID: event.AssetCreated},
	}

	l.EXPECT().GetEventCount().Return(uint64(2)).Times(1)
	l.EXPECT().GetEvent(uint64(1)).Return(&updates[1], nil).Times(1)
	l.EXPECT().ListEvents(uint64(0), 2).Return(updates, nil).Times(1)

	n, err := client.CountEvents()
	assert.Nil(t, err, "wrong count error")
	assert.Equal(t, uint64(2), n, "wrong count")

	one, err := client.GetEvent(1)
	assert.Nil(t, err, "wrong get error")
	assert.Equal(t, uint64(1), one.Index, "wrong index")
	assert.Equal(t, id, one.Event.Asset, "wrong asset")

	list, err := client.ListEvents(0, 2)
	assert.Nil(t, err, "wrong list error")
	assert.Equal(t, 2, len(list.Events), "wrong list length")
	assert.Equal(t, uint64(2), list.NextStart, "wrong next start")
}

func TestTokens(t *testing.T) {
	client, l, _, done := setup(t, false)
	defer done()

	issuer := fixtures.Owner(1)
	receiver := fixtures.Owner(2)

	l.EXPECT().CreateTokens(issuer, fixtures.AssetHex, uint128.From64(500)).Return(nil).Times(1)
	l.EXPECT().TotalTokens(fixtures.AssetHex).Return(uint128.From64(500), nil).Times(1)
	l.EXPECT().Transfer(issuer, receiver, fixtures.AssetHex, uint128.From64(20)).Return(nil).Times(1)
	l.EXPECT().Account(receiver, fixtures.AssetHex).Return(uint128.From64(20), nil).Times(1)
	l.EXPECT().Accounts(receiver, "", 10).Return([]balance.Info{
		{Asset: fixtures.AssetID(), Balance: uint128.From64(20)},
	}, nil).Times(1)

	_, err := client.CreateTokens(issuer, fixtures.AssetHex, "500")
	assert.Nil(t, err, "wrong create error")

	total, err := client.TotalTokens(fixtures.AssetHex)
	assert.Nil(t, err, "wrong total error")
	assert.Equal(t, "500", total.Total, "wrong total")

	moved, err := client.Transfer(issuer, receiver, fixtures.AssetHex, "20")
	assert.Nil(t, err, "wrong transfer error")
	assert.Equal(t, "20", moved.Amount, "wrong amount")

	b, err := client.Balance(receiver, fixtures.AssetHex)
	assert.Nil(t, err, "wrong balance error")
	assert.Equal(t, "20", b.Balance, "wrong balance")

	accounts, err := client.Accounts(receiver, "", 10)
	assert.Nil(t, err, "wrong accounts error")
	assert.Equal(t, 1, len(accounts.Accounts), "wrong accounts length")
	assert.Equal(t, "20", accounts.Accounts[0].Balance, "wrong accounts balance")
}

func TestTransferInvalidAmount(t *testing.T) {
	client, _, _, done := setup(t, false)
	defer done()

	_, err := client.Transfer(fixtures.Owner(1), fixtures.Owner(2), fixtures.AssetHex, "ten")
	assert.NotNil(t, err, "missing error")
	assert.Equal(t, fault.ErrInvalidAmount.Error(), err.Error(), "wrong error")
}

func TestGetInfo(t *testing.T) {
	client, l, _, done := setup(t, false)
	defer done()

	l.EXPECT().GetEventCount().Return(uint64(8)).Times(1)

	info, err := client.GetInfo()
	assert.Nil(t, err, "wrong info error")
	assert.Equal(t, uint64(8), info.Events, "wrong events")
	assert.Equal(t, "2.0", info.Version, "wrong version")
}
