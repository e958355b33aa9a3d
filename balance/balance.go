// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"bytes"

	"lukechampine.com/uint128"

	"github.com/bitmark-inc/ledgerd/codec"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/identifier"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/logger"
)

// MaximumAccounts - largest page returned by Accounts
const MaximumAccounts = 100

// Ledger - total units and account balances
type Ledger struct {
	log      *logger.L
	totals   *storage.Map
	accounts *storage.Map
}

// Info - one account of an owner
type Info struct {
	Asset   identifier.AssetID
	Balance uint128.Uint128
}

// New - ledger over the total units and accounts regions
func New(totals *storage.Region, accounts *storage.Region) *Ledger {
	amountBound := codec.Uint128{}.Bound()
	return &Ledger{
		log:      logger.New("balance"),
		totals:   storage.NewMap(totals, identifier.AssetID{}.Bound(), amountBound),
		accounts: storage.NewMap(accounts, identifier.AccountKey{}.Bound(), amountBound),
	}
}

// CreateTokens - set the asset total and the owner's balance to amount
//
// both values are overwritten, not added to
func (l *Ledger) CreateTokens(owner identifier.Owner, id identifier.AssetID, amount uint128.Uint128) error {
	key := identifier.MakeAccountKey(owner, id)
	value := codec.Uint128{Value: amount}

	batch := l.totals.NewBatch()
	if err := l.totals.BatchPut(batch, id, value); nil != err {
		return err
	}
	if err := l.accounts.BatchPut(batch, key, value); nil != err {
		return err
	}
	if err := batch.Commit(); nil != err {
		return err
	}

	l.log.Debugf("create tokens: %s  owner: %s  amount: %s", id, owner, amount)
	return nil
}

// TotalTokens - units created for an asset, zero if none
func (l *Ledger) TotalTokens(id identifier.AssetID) (uint128.Uint128, error) {
	var value codec.Uint128
	_, err := l.totals.Get(id, &value)
	if nil != err {
		return uint128.Zero, err
	}
	return value.Value, nil
}

// BalanceOf - balance of an account, zero if it does not exist
func (l *Ledger) BalanceOf(owner identifier.Owner, id identifier.AssetID) (uint128.Uint128, error) {
	value, _, err := l.get(identifier.MakeAccountKey(owner, id))
	return value, err
}

func (l *Ledger) get(key identifier.AccountKey) (uint128.Uint128, bool, error) {
	var value codec.Uint128
	found, err := l.accounts.Get(key, &value)
	if nil != err {
		return uint128.Zero, false, err
	}
	return value.Value, found, nil
}

// Transfer - move amount from one account to another
//
// the sender's account must exist; a missing receiver counts as zero.
// nothing is written if a check fails.  The two balances are written
// separately so an interruption between them is visible after restart
func (l *Ledger) Transfer(from identifier.Owner, to identifier.Owner, id identifier.AssetID, amount uint128.Uint128) error {
	fromKey := identifier.MakeAccountKey(from, id)
	toKey := identifier.MakeAccountKey(to, id)

	fromBalance, found, err := l.get(fromKey)
	if nil != err {
		return err
	}
	if !found {
		return fault.ErrAccountNotFound
	}
	if fromBalance.Cmp(amount) < 0 {
		return fault.ErrInsufficientBalance
	}

	toBalance, _, err := l.get(toKey)
	if nil != err {
		return err
	}
	if amount.Cmp(uint128.Max.Sub(toBalance)) > 0 {
		return fault.ErrBalanceOverflow
	}

	// a self transfer passes the checks and changes nothing
	if fromKey == toKey {
		return nil
	}

	newFrom := fromBalance.Sub(amount)
	newTo := toBalance.Add(amount)

	if err := l.accounts.Put(fromKey, codec.Uint128{Value: newFrom}); nil != err {
		return err
	}
	if err := l.accounts.Put(toKey, codec.Uint128{Value: newTo}); nil != err {
		l.log.Criticalf("transfer: %s  from: %s  debited but credit to: %s failed: %s", id, from, to, err)
		return err
	}

	l.log.Debugf("transfer: %s  from: %s  to: %s  amount: %s", id, from, to, amount)
	return nil
}

// Accounts - balances of one owner in asset order starting at start
func (l *Ledger) Accounts(owner identifier.Owner, start identifier.AssetID, count int) ([]Info, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	if count > MaximumAccounts {
		count = MaximumAccounts
	}

	startKey, err := identifier.MakeAccountKey(owner, start).MarshalBinary()
	if nil != err {
		return nil, err
	}
	prefix, err := identifier.OwnerPrefix(owner)
	if nil != err {
		return nil, err
	}

	cursor := l.accounts.Region().NewFetchCursor().Seek(startKey)
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	result := make([]Info, 0, len(items))
loop:
	for _, item := range items {
		var key identifier.AccountKey
		if err := key.UnmarshalBinary(item.Key); nil != err {
			return nil, err
		}
		if !bytes.HasPrefix(item.Key, prefix) {
			break loop
		}
		var value codec.Uint128
		if err := value.UnmarshalBinary(item.Value); nil != err {
			return nil, err
		}
		result = append(result, Info{
			Asset:   key.Asset,
			Balance: value.Value,
		})
	}
	return result, nil
}
