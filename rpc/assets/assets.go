// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/identifier"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Assets - type for the RPC
type Assets struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Handle
}

// New - create the assets RPC service
func New(log *logger.L, limiter *rate.Limiter, l ledger.Handle) *Assets {
	return &Assets{
		Log:     log,
		Limiter: limiter,
		Ledger:  l,
	}
}

// ---

// CreateArguments - arguments for RPC request
type CreateArguments struct {
	Caller identifier.Owner `json:"caller"`
	Asset  string           `json:"asset"`
}

// CreateReply - results from RPC request
type CreateReply struct {
	Asset string `json:"asset"`
}

// Create - register an asset issued by the caller
func (assets *Assets) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Caller.IsZero() || "" == arguments.Asset {
		return fault.ErrMissingParameters
	}

	assets.Log.Infof("Assets.Create: %s  caller: %s", arguments.Asset, arguments.Caller)

	if err := assets.Ledger.CreateAsset(arguments.Caller, arguments.Asset); nil != err {
		return err
	}

	reply.Asset = arguments.Asset
	return nil
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	Asset string `json:"asset"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Asset          string           `json:"asset"`
	Issuer         identifier.Owner `json:"issuer"`
	CreatedOn      uint64           `json:"createdOn,string"`
	AmendmentCount uint32           `json:"amendmentCount"`
}

// Get - RPC to fetch asset metadata
func (assets *Assets) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Asset {
		return fault.ErrMissingParameters
	}

	assets.Log.Infof("Assets.Get: %+v", arguments)

	r, err := assets.Ledger.GetAsset(arguments.Asset)
	if nil != err {
		return err
	}

	reply.Asset = arguments.Asset
	reply.Issuer = r.Issuer
	reply.CreatedOn = r.CreatedOn
	reply.AmendmentCount = r.AmendmentCount
	return nil
}
