// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type countResult struct {
	Count uint64 `json:"count,string"`
}

func runEventGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("index") {
		return fmt.Errorf("index is required")
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetEvent(c.Uint64("index"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runEventCount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	n, err := client.CountEvents()
	if nil != err {
		return err
	}

	printJson(m.w, countResult{Count: n})
	return nil
}

func runEventList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ListEvents(c.Uint64("start"), count)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
