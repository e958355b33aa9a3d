// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ledgerd/identifier"
	"github.com/bitmark-inc/ledgerd/rpc/tokens"
)

// CreateTokens - mint the total supply of an asset
//
// amount is a decimal string and is validated by the server
func (client *Client) CreateTokens(caller identifier.Owner, asset string, amount string) (*tokens.CreateReply, error) {

	args := tokens.CreateArguments{
		Caller: caller,
		Asset:  asset,
		Amount: amount,
	}
	client.printJson("Create Tokens Request", args)

	var reply tokens.CreateReply
	if err := client.client.Call("Tokens.Create", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Create Tokens Reply", reply)
	return &reply, nil
}

// TotalTokens - total supply of an asset
func (client *Client) TotalTokens(asset string) (*tokens.TotalReply, error) {

	args := tokens.TotalArguments{
		Asset: asset,
	}

	var reply tokens.TotalReply
	if err := client.client.Call("Tokens.Total", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Total Tokens Reply", reply)
	return &reply, nil
}

// Balance - one owner's holding of one asset
func (client *Client) Balance(owner identifier.Owner, asset string) (*tokens.AccountReply, error) {

	args := tokens.AccountArguments{
		Owner: owner,
		Asset: asset,
	}
	client.printJson("Balance Request", args)

	var reply tokens.AccountReply
	if err := client.client.Call("Tokens.Account", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Balance Reply", reply)
	return &reply, nil
}

// Transfer - move tokens between two owners
func (client *Client) Transfer(from identifier.Owner, to identifier.Owner, asset string, amount string) (*tokens.TransferReply, error) {

	args := tokens.TransferArguments{
		From:   from,
		To:     to,
		Asset:  asset,
		Amount: amount,
	}
	client.printJson("Transfer Request", args)

	var reply tokens.TransferReply
	if err := client.client.Call("Tokens.Transfer", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)
	return &reply, nil
}

// Accounts - every asset held by an owner, in asset order
func (client *Client) Accounts(owner identifier.Owner, start string, count int) (*tokens.AccountsReply, error) {

	args := tokens.AccountsArguments{
		Owner: owner,
		Start: start,
		Count: count,
	}
	client.printJson("Accounts Request", args)

	var reply tokens.AccountsReply
	if err := client.client.Call("Tokens.Accounts", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Accounts Reply", reply)
	return &reply, nil
}
