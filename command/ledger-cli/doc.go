// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line client for the ledgerd JSON-RPC interface
//
// e.g. to move 25 tokens between two owners:
//      (add -v flag to see JSON requests and responses)
//
//   ledger-cli -c 127.0.0.1:2130 transfer -f OWNER -r OWNER -a F94E2AD9DD5CBBC041430001 -m 25
package main
