// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
	"lukechampine.com/uint128"

	"github.com/bitmark-inc/ledgerd/balance"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/rpc/fixtures"
	"github.com/bitmark-inc/ledgerd/rpc/mocks"
	"github.com/bitmark-inc/ledgerd/rpc/tokens"
	"github.com/bitmark-inc/logger"
)

func newTokens(l *mocks.MockHandle) *tokens.Tokens {
	return tokens.New(logger.New(fixtures.LogCategory), rate.NewLimiter(100, 100), l)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		text     string
		expected uint128.Uint128
		err      error
	}{
		{"0", uint128.Zero, nil},
		{"1000", uint128.From64(1000), nil},
		{"340282366920938463463374607431768211455", uint128.Max, nil},
		{"340282366920938463463374607431768211456", uint128.Zero, fault.ErrInvalidAmount},
		{"-1", uint128.Zero, fault.ErrInvalidAmount},
		{"", uint128.Zero, fault.ErrInvalidAmount},
		{"12a", uint128.Zero, fault.ErrInvalidAmount},
		{"1.5", uint128.Zero, fault.ErrInvalidAmount},
	}

	for i, item := range tests {
		n, err := tokens.ParseAmount(item.text)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Equal(t, item.expected, n, "%d: value", i)
	}
}

func TestTokensCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	caller := fixtures.Owner(1)
	l := mocks.NewMockHandle(ctl)
	l.EXPECT().CreateTokens(caller, fixtures.AssetHex, uint128.From64(1000)).Return(nil).Times(1)

	tk := newTokens(l)
	var reply tokens.CreateReply
	err := tk.Create(&tokens.CreateArguments{Caller: caller, Asset: fixtures.AssetHex, Amount: "1000"}, &reply)
	assert.Nil(t, err, "wrong create")
	assert.Equal(t, "1000", reply.Amount, "wrong amount")
}

func TestTokensCreateWhenInvalidAmount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tk := newTokens(mocks.NewMockHandle(ctl))
	var reply tokens.CreateReply
	err := tk.Create(&tokens.CreateArguments{Caller: fixtures.Owner(1), Asset: fixtures.AssetHex, Amount: "-5"}, &reply)
	assert.Equal(t, fault.ErrInvalidAmount, err, "wrong error")
}

func TestTokensTotal(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	l.EXPECT().TotalTokens(fixtures.AssetHex).Return(uint128.Max, nil).Times(1)

	tk := newTokens(l)
	var reply tokens.TotalReply
	err := tk.Total(&tokens.TotalArguments{Asset: fixtures.AssetHex}, &reply)
	assert.Nil(t, err, "wrong total")
	assert.Equal(t, "340282366920938463463374607431768211455", reply.Total, "wrong value")
}

func TestTokensAccount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	o := fixtures.Owner(2)
	l := mocks.NewMockHandle(ctl)
	l.EXPECT().Account(o, fixtures.AssetHex).Return(uint128.Zero, nil).Times(1)

	tk := newTokens(l)
	var reply tokens.AccountReply
	err := tk.Account(&tokens.AccountArguments{Owner: o, Asset: fixtures.AssetHex}, &reply)
	assert.Nil(t, err, "wrong account")
	assert.Equal(t, "0", reply.Balance, "wrong balance")
	assert.Equal(t, o, reply.Owner, "wrong owner")
}

func TestTokensTransfer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	from := fixtures.Owner(1)
	to := fixtures.Owner(2)
	l := mocks.NewMockHandle(ctl)
	l.EXPECT().Transfer(from, to, fixtures.AssetHex, uint128.From64(300)).Return(nil).Times(1)
	l.EXPECT().Transfer(from, to, fixtures.AssetHex, uint128.From64(5000)).Return(fault.ErrInsufficientBalance).Times(1)

	tk := newTokens(l)
	var reply tokens.TransferReply
	err := tk.Transfer(&tokens.TransferArguments{From: from, To: to, Asset: fixtures.AssetHex, Amount: "300"}, &reply)
	assert.Nil(t, err, "wrong transfer")
	assert.Equal(t, "300", reply.Amount, "wrong amount")

	err = tk.Transfer(&tokens.TransferArguments{From: from, To: to, Asset: fixtures.AssetHex, Amount: "5000"}, &reply)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "wrong error")
}

func TestTokensTransferWhenMissingReceiver(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tk := newTokens(mocks.NewMockHandle(ctl))
	var reply tokens.TransferReply
	err := tk.Transfer(&tokens.TransferArguments{From: fixtures.Owner(1), Asset: fixtures.AssetHex, Amount: "1"}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestTokensAccounts(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	o := fixtures.Owner(3)
	l := mocks.NewMockHandle(ctl)
	l.EXPECT().Accounts(o, "", 10).Return([]balance.Info{
		{Asset: fixtures.AssetID(), Balance: uint128.From64(77)},
	}, nil).Times(1)

	tk := newTokens(l)
	var reply tokens.AccountsReply
	err := tk.Accounts(&tokens.AccountsArguments{Owner: o, Count: 10}, &reply)
	assert.Nil(t, err, "wrong accounts")
	if assert.Equal(t, 1, len(reply.Accounts), "wrong length") {
		assert.Equal(t, fixtures.AssetID(), reply.Accounts[0].Asset, "wrong asset")
		assert.Equal(t, "77", reply.Accounts[0].Balance, "wrong balance")
	}
}
