// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/command/ledger-cli/rpccalls"
	"github.com/bitmark-inc/ledgerd/identifier"
)

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.useTLS, m.verbose, m.e)
}

func checkOwner(c *cli.Context, name string) (identifier.Owner, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return identifier.Owner{}, fmt.Errorf("%s is required", name)
	}
	return identifier.OwnerFromBase58(s)
}

func checkRequired(c *cli.Context, name string) (string, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return "", fmt.Errorf("%s is required", name)
	}
	return s, nil
}
