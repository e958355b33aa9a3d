// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	useTLS  bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "ledger-cli"
	app.Usage = "command line client for ledgerd"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " ledgerd RPC `HOST:PORT`",
			EnvVar: "LEDGER_CLI_CONNECT",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " connect using TLS (server certificate is not verified)",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "asset-create",
			Usage:     "register a new asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, o",
					Value: "",
					Usage: "*issuing `OWNER` (base58)",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset id `HEX`",
				},
			},
			Action: runAssetCreate,
		},
		{
			Name:      "asset-get",
			Usage:     "display an asset record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset id `HEX`",
				},
			},
			Action: runAssetGet,
		},
		{
			Name:      "event-get",
			Usage:     "display one event",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "index, i",
					Value: 0,
					Usage: "*event `INDEX`",
				},
			},
			Action: runEventGet,
		},
		{
			Name:   "event-count",
			Usage:  "number of events recorded",
			Action: runEventCount,
		},
		{
			Name:  "event-list",
			Usage: "list a range of events",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `INDEX`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runEventList,
		},
		{
			Name:      "token-create",
			Usage:     "mint the total supply of an asset to its issuer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, o",
					Value: "",
					Usage: "*issuing `OWNER` (base58)",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset id `HEX`",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*decimal `AMOUNT`",
				},
			},
			Action: runTokenCreate,
		},
		{
			Name:      "token-total",
			Usage:     "total supply of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset id `HEX`",
				},
			},
			Action: runTokenTotal,
		},
		{
			Name:      "balance",
			Usage:     "balance of one owner for one asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*`OWNER` (base58)",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset id `HEX`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "transfer",
			Usage:     "move tokens from one owner to another",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*sending `OWNER` (base58)",
				},
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: "*receiving `OWNER` (base58)",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset id `HEX`",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*decimal `AMOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "accounts",
			Usage:     "list the assets held by an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*`OWNER` (base58)",
				},
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " first asset id `HEX`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runAccounts,
		},
		{
			Name:   "info",
			Usage:  "display ledgerd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display ledger-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		connect := c.GlobalString("connect")
		verbose := c.GlobalBool("verbose")

		if "" == connect {
			return fmt.Errorf("connect: host:port is required")
		}
		if verbose {
			fmt.Fprintf(e, "connect: %q\n", connect)
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			useTLS:  c.GlobalBool("tls"),
			verbose: verbose,
			e:       e,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
