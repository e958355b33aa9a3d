// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/ledgerd/configuration"
	"github.com/bitmark-inc/logger"
)

// rateSetter is rpc.SetRateLimit outside of tests
type rateSetter func(limit float64, burst int) error

// watch the configuration file and apply the settings that can change
// while running; everything else needs a restart
func watchConfiguration(log *logger.L, fileName string, variables map[string]string, set rateSetter) (*configuration.Watcher, error) {
	w, err := configuration.NewWatcher(fileName, log)
	if nil != err {
		return nil, err
	}

	err = w.Start()
	if nil != err {
		_ = w.Close()
		return nil, err
	}

	go func() {
		for range w.Change() {
			reloadConfiguration(log, fileName, variables, set)
		}
	}()

	return w, nil
}

func reloadConfiguration(log *logger.L, fileName string, variables map[string]string, set rateSetter) {
	c, err := getConfiguration(fileName, variables)
	if nil != err {
		log.Errorf("reload: %q  error: %s", fileName, err)
		return
	}

	err = set(c.ClientRPC.RateLimit, c.ClientRPC.RateBurst)
	if nil != err {
		log.Errorf("reload rate limit error: %s", err)
		return
	}
	log.Infof("reload: rate limit: %f  burst: %d", c.ClientRPC.RateLimit, c.ClientRPC.RateBurst)
}
