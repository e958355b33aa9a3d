// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/certificate"
	"github.com/bitmark-inc/ledgerd/rpc/handler"
	"github.com/bitmark-inc/ledgerd/rpc/listeners"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/ledgerd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	rpcName   = "client_rpc"
	httpsName = "http_rpc"

	defaultRateLimit = 200
	defaultRateBurst = 100
)

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	limiter   *rate.Limiter
	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// counts the RPC connections currently open
var connectionCountRPC counter.Counter

// Initialise - start the JSON-RPC and optional HTTPS servers
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, l ledger.Handle) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	limit, burst := rateSettings(rpcConfiguration.RateLimit, rpcConfiguration.RateBurst)
	globalData.limiter = rate.NewLimiter(rate.Limit(limit), burst)
	log.Infof("rate limit: %f/s  burst: %d", limit, burst)

	s := server.Create(log, version, &connectionCountRPC, globalData.limiter, l)

	tlsConfig, fingerprint, err := certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}
	if nil != tlsConfig {
		log.Infof("%s: SHA3-256 fingerprint: %x", rpcName, fingerprint)
	}

	rpcListener, err := listeners.NewRPC(rpcConfiguration, log, &connectionCountRPC, s, tlsConfig)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if nil != httpsConfiguration && 0 != len(httpsConfiguration.Listen) {
		httpsTLS, httpsFingerprint, err := certificate.Load(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			closeListeners()
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, httpsFingerprint)

		h := handler.New(log, s, l, time.Now(), version, httpsConfiguration.MaximumConnections)
		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, h)
		if nil != err {
			closeListeners()
			return err
		}
		err = httpsListener.Serve()
		if nil != err {
			closeListeners()
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// SetRateLimit - retune the shared limiter, used on configuration reload
func SetRateLimit(limit float64, burst int) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	limit, burst = rateSettings(limit, burst)
	ratelimit.Update(globalData.limiter, limit, burst)
	globalData.log.Infof("rate limit changed: %f/s  burst: %d", limit, burst)

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	closeListeners()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// must hold the lock
func closeListeners() {
	for _, l := range globalData.listeners {
		if err := l.Close(); nil != err {
			globalData.log.Warnf("listener close error: %s", err)
		}
	}
	globalData.listeners = nil
}

func rateSettings(limit float64, burst int) (float64, int) {
	if limit <= 0 {
		limit = defaultRateLimit
	}
	if burst <= 0 {
		burst = defaultRateBurst
	}
	return limit, burst
}
