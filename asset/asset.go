// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/ledgerd/event"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/identifier"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/logger"
)

// Registry - asset id → Record
type Registry struct {
	log    *logger.L
	assets *storage.Map
	events *event.Log
}

// NewRegistry - registry over a region, reporting to an event log
func NewRegistry(region *storage.Region, events *event.Log) *Registry {
	return &Registry{
		log:    logger.New("asset"),
		assets: storage.NewMap(region, identifier.AssetID{}.Bound(), Record{}.Bound()),
		events: events,
	}
}

// Create - insert or replace an asset and append an AssetCreated event
//
// the record and the event are committed in one batch
func (reg *Registry) Create(owner identifier.Owner, id identifier.AssetID, now uint64) error {
	if owner.IsZero() {
		return fault.ErrOwnerLength
	}

	r := Record{
		Issuer:         owner,
		CreatedOn:      now,
		AmendmentCount: 0,
	}
	b := reg.assets.NewBatch()
	if err := reg.assets.BatchPut(b, id, r); nil != err {
		return err
	}

	n, err := reg.events.AppendBatch(b, event.Update{
		Asset:   id,
		EventID: event.AssetCreated,
	})
	if nil != err {
		return err
	}

	reg.log.Debugf("created asset: %s  issuer: %s  event: %d", id, owner, n)
	return nil
}

// Get - fetch a record
func (reg *Registry) Get(id identifier.AssetID) (*Record, error) {
	r := &Record{}
	found, err := reg.assets.Get(id, r)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrAssetNotFound
	}
	return r, nil
}

// Exists - true if the asset was ever created
func (reg *Registry) Exists(id identifier.AssetID) bool {
	found, err := reg.assets.Has(id)
	return nil == err && found
}
