// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"lukechampine.com/uint128"

	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/balance"
	"github.com/bitmark-inc/ledgerd/event"
	"github.com/bitmark-inc/ledgerd/identifier"
)

// Handle - the operations a dispatch layer may call
type Handle interface {
	CreateAsset(caller identifier.Owner, assetHex string) error
	GetAsset(assetHex string) (*asset.Record, error)
	GetEvent(i uint64) (*event.Update, error)
	GetEventCount() uint64
	ListEvents(start uint64, count int) ([]event.Update, error)
	CreateTokens(caller identifier.Owner, assetHex string, amount uint128.Uint128) error
	TotalTokens(assetHex string) (uint128.Uint128, error)
	Account(owner identifier.Owner, assetHex string) (uint128.Uint128, error)
	Transfer(from identifier.Owner, to identifier.Owner, assetHex string, amount uint128.Uint128) error
	Accounts(owner identifier.Owner, startHex string, count int) ([]balance.Info, error)
}

var _ Handle = (*Ledger)(nil)
