// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - token totals per asset and balances per account
//
// the sum of an asset's account balances is intended to equal its
// total but nothing enforces this: CreateTokens overwrites both the
// total and the caller's balance and leaves other accounts untouched
package balance
