// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ledgerd/identifier"
	"github.com/bitmark-inc/ledgerd/rpc/assets"
)

// CreateAsset - register a new asset with the caller as issuer
func (client *Client) CreateAsset(caller identifier.Owner, asset string) (*assets.CreateReply, error) {

	args := assets.CreateArguments{
		Caller: caller,
		Asset:  asset,
	}
	client.printJson("Create Asset Request", args)

	var reply assets.CreateReply
	if err := client.client.Call("Assets.Create", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Create Asset Reply", reply)
	return &reply, nil
}

// GetAsset - fetch an asset record
func (client *Client) GetAsset(asset string) (*assets.GetReply, error) {

	args := assets.GetArguments{
		Asset: asset,
	}
	client.printJson("Get Asset Request", args)

	var reply assets.GetReply
	if err := client.client.Call("Assets.Get", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Get Asset Reply", reply)
	return &reply, nil
}
