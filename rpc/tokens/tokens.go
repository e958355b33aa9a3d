// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgerd/balance"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/identifier"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Tokens - type for the RPC
type Tokens struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Handle
}

// New - create the tokens RPC service
func New(log *logger.L, limiter *rate.Limiter, l ledger.Handle) *Tokens {
	return &Tokens{
		Log:     log,
		Limiter: limiter,
		Ledger:  l,
	}
}

// ---

// CreateArguments - arguments for create request
type CreateArguments struct {
	Caller identifier.Owner `json:"caller"`
	Asset  string           `json:"asset"`
	Amount string           `json:"amount"`
}

// CreateReply - results from create request
type CreateReply struct {
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
}

// Create - set the total and the caller's balance for an asset
func (tokens *Tokens) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Caller.IsZero() || "" == arguments.Asset {
		return fault.ErrMissingParameters
	}

	amount, err := ParseAmount(arguments.Amount)
	if nil != err {
		return err
	}

	tokens.Log.Infof("Tokens.Create: %s  caller: %s  amount: %s", arguments.Asset, arguments.Caller, amount)

	if err := tokens.Ledger.CreateTokens(arguments.Caller, arguments.Asset, amount); nil != err {
		return err
	}

	reply.Asset = arguments.Asset
	reply.Amount = amount.String()
	return nil
}

// ---

// TotalArguments - arguments for total request
type TotalArguments struct {
	Asset string `json:"asset"`
}

// TotalReply - results from total request
type TotalReply struct {
	Asset string `json:"asset"`
	Total string `json:"total"`
}

// Total - units created for an asset
func (tokens *Tokens) Total(arguments *TotalArguments, reply *TotalReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Asset {
		return fault.ErrMissingParameters
	}

	total, err := tokens.Ledger.TotalTokens(arguments.Asset)
	if nil != err {
		return err
	}

	reply.Asset = arguments.Asset
	reply.Total = total.String()
	return nil
}

// ---

// AccountArguments - arguments for account request
type AccountArguments struct {
	Owner identifier.Owner `json:"owner"`
	Asset string           `json:"asset"`
}

// AccountReply - results from account request
type AccountReply struct {
	Owner   identifier.Owner `json:"owner"`
	Asset   string           `json:"asset"`
	Balance string           `json:"balance"`
}

// Account - balance of one owner for an asset
func (tokens *Tokens) Account(arguments *AccountArguments, reply *AccountReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Owner.IsZero() || "" == arguments.Asset {
		return fault.ErrMissingParameters
	}

	b, err := tokens.Ledger.Account(arguments.Owner, arguments.Asset)
	if nil != err {
		return err
	}

	reply.Owner = arguments.Owner
	reply.Asset = arguments.Asset
	reply.Balance = b.String()
	return nil
}

// ---

// TransferArguments - arguments for transfer request
type TransferArguments struct {
	From   identifier.Owner `json:"from"`
	To     identifier.Owner `json:"to"`
	Asset  string           `json:"asset"`
	Amount string           `json:"amount"`
}

// TransferReply - results from transfer request
type TransferReply struct {
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
}

// Transfer - move tokens from one owner to another
func (tokens *Tokens) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.From.IsZero() || arguments.To.IsZero() || "" == arguments.Asset {
		return fault.ErrMissingParameters
	}

	amount, err := ParseAmount(arguments.Amount)
	if nil != err {
		return err
	}

	tokens.Log.Infof("Tokens.Transfer: %s  from: %s  to: %s  amount: %s", arguments.Asset, arguments.From, arguments.To, amount)

	if err := tokens.Ledger.Transfer(arguments.From, arguments.To, arguments.Asset, amount); nil != err {
		return err
	}

	reply.Asset = arguments.Asset
	reply.Amount = amount.String()
	return nil
}

// ---

// AccountsArguments - arguments for accounts request
type AccountsArguments struct {
	Owner identifier.Owner `json:"owner"`
	Start string           `json:"start"`
	Count int              `json:"count"`
}

// AccountInfo - one balance in the accounts reply
type AccountInfo struct {
	Asset   identifier.AssetID `json:"asset"`
	Balance string             `json:"balance"`
}

// AccountsReply - results from accounts request
type AccountsReply struct {
	Accounts []AccountInfo `json:"accounts"`
}

// Accounts - the balances of one owner in asset order
func (tokens *Tokens) Accounts(arguments *AccountsArguments, reply *AccountsReply) error {

	if err := ratelimit.LimitN(tokens.Limiter, arguments.Count, balance.MaximumAccounts); nil != err {
		return err
	}

	if arguments.Owner.IsZero() {
		return fault.ErrMissingParameters
	}

	items, err := tokens.Ledger.Accounts(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Accounts = make([]AccountInfo, len(items))
	for i, item := range items {
		reply.Accounts[i] = AccountInfo{
			Asset:   item.Asset,
			Balance: item.Balance.String(),
		}
	}
	return nil
}
