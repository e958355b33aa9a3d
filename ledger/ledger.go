// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"lukechampine.com/uint128"

	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/balance"
	"github.com/bitmark-inc/ledgerd/event"
	"github.com/bitmark-inc/ledgerd/identifier"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/logger"
)

// Ledger - storage context for all operations
type Ledger struct {
	sync.Mutex

	log      *logger.L
	clock    Clock
	assets   *asset.Registry
	events   *event.Log
	balances *balance.Ledger
}

// New - build the ledger structures over an open store
//
// an error here is a fault.StorageInitError and the ledger cannot be used
func New(store *storage.Store, clock Clock) (*Ledger, error) {
	log := logger.New("ledger")

	events, err := event.Open(store.Regions.EventIndex, store.Regions.EventData)
	if nil != err {
		log.Criticalf("event log open error: %s", err)
		return nil, err
	}

	if nil == clock {
		clock = &MonotonicClock{}
	}

	l := &Ledger{
		log:      log,
		clock:    clock,
		assets:   asset.NewRegistry(store.Regions.Assets, events),
		events:   events,
		balances: balance.New(store.Regions.TotalUnits, store.Regions.Accounts),
	}

	log.Infof("events: %d", events.Len())
	return l, nil
}

// CreateAsset - register an asset issued by the caller
func (l *Ledger) CreateAsset(caller identifier.Owner, assetHex string) error {
	id, err := identifier.ParseAssetID(assetHex)
	if nil != err {
		return err
	}

	l.Lock()
	defer l.Unlock()

	return l.assets.Create(caller, id, l.clock.Now())
}

// GetAsset - metadata of an asset
func (l *Ledger) GetAsset(assetHex string) (*asset.Record, error) {
	id, err := identifier.ParseAssetID(assetHex)
	if nil != err {
		return nil, err
	}

	l.Lock()
	defer l.Unlock()

	return l.assets.Get(id)
}

// GetEvent - the event at index i
func (l *Ledger) GetEvent(i uint64) (*event.Update, error) {
	l.Lock()
	defer l.Unlock()

	return l.events.Get(i)
}

// GetEventCount - number of events recorded
func (l *Ledger) GetEventCount() uint64 {
	l.Lock()
	defer l.Unlock()

	return l.events.Len()
}

// ListEvents - a page of events from start
func (l *Ledger) ListEvents(start uint64, count int) ([]event.Update, error) {
	l.Lock()
	defer l.Unlock()

	return l.events.Range(start, count)
}

// CreateTokens - set the asset total and the caller's balance
func (l *Ledger) CreateTokens(caller identifier.Owner, assetHex string, amount uint128.Uint128) error {
	id, err := identifier.ParseAssetID(assetHex)
	if nil != err {
		return err
	}

	l.Lock()
	defer l.Unlock()

	return l.balances.CreateTokens(caller, id, amount)
}

// TotalTokens - units created for an asset, zero if none
func (l *Ledger) TotalTokens(assetHex string) (uint128.Uint128, error) {
	id, err := identifier.ParseAssetID(assetHex)
	if nil != err {
		return uint128.Zero, err
	}

	l.Lock()
	defer l.Unlock()

	return l.balances.TotalTokens(id)
}

// Account - balance of owner for an asset, zero if none
func (l *Ledger) Account(owner identifier.Owner, assetHex string) (uint128.Uint128, error) {
	id, err := identifier.ParseAssetID(assetHex)
	if nil != err {
		return uint128.Zero, err
	}

	l.Lock()
	defer l.Unlock()

	return l.balances.BalanceOf(owner, id)
}

// Transfer - move tokens between two owners
func (l *Ledger) Transfer(from identifier.Owner, to identifier.Owner, assetHex string, amount uint128.Uint128) error {
	id, err := identifier.ParseAssetID(assetHex)
	if nil != err {
		return err
	}

	l.Lock()
	defer l.Unlock()

	return l.balances.Transfer(from, to, id, amount)
}

// Accounts - an owner's balances from startHex onwards
//
// an empty startHex begins at the first asset
func (l *Ledger) Accounts(owner identifier.Owner, startHex string, count int) ([]balance.Info, error) {
	start := identifier.AssetID{}
	if "" != startHex {
		var err error
		start, err = identifier.ParseAssetID(startHex)
		if nil != err {
			return nil, err
		}
	}

	l.Lock()
	defer l.Unlock()

	return l.balances.Accounts(owner, start, count)
}
