// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
)

func databasePath() string {
	return filepath.Join(testingDirName, "ledger.leveldb")
}

func setup(t *testing.T) *storage.Store {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	return reopen(t)
}

func reopen(t *testing.T) *storage.Store {
	s, err := storage.Open(databasePath(), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return s
}

func teardown(s *storage.Store) {
	s.Close()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}
