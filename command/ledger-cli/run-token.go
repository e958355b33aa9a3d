// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runTokenCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkOwner(c, "caller")
	if nil != err {
		return err
	}
	asset, err := checkRequired(c, "asset")
	if nil != err {
		return err
	}
	amount, err := checkRequired(c, "amount")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateTokens(caller, asset, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTokenTotal(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	asset, err := checkRequired(c, "asset")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TotalTokens(asset)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c, "owner")
	if nil != err {
		return err
	}
	asset, err := checkRequired(c, "asset")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(owner, asset)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := checkOwner(c, "from")
	if nil != err {
		return err
	}
	to, err := checkOwner(c, "to")
	if nil != err {
		return err
	}
	asset, err := checkRequired(c, "asset")
	if nil != err {
		return err
	}
	amount, err := checkRequired(c, "amount")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(from, to, asset, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runAccounts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c, "owner")
	if nil != err {
		return err
	}

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Accounts(owner, c.String("start"), count)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
