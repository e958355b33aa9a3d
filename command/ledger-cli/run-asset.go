// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runAssetCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkOwner(c, "caller")
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

	response, err := client.CreateAsset(caller, asset)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runAssetGet(c *cli.Context) error {

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

	response, err := client.GetAsset(asset)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
