// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/assets"
	"github.com/bitmark-inc/ledgerd/rpc/events"
	"github.com/bitmark-inc/ledgerd/rpc/node"
	"github.com/bitmark-inc/ledgerd/rpc/tokens"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with every service registered
//
// all services share one limiter so that it can be retuned at run time
func Create(log *logger.L, version string, rpcCount *counter.Counter, limiter *rate.Limiter, l ledger.Handle) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(assets.New(log, limiter, l))
	_ = server.Register(events.New(log, limiter, l))
	_ = server.Register(tokens.New(log, limiter, l))
	_ = server.Register(node.New(log, limiter, start, version, rpcCount, l))

	return server
}
