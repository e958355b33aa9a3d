// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"math/big"

	"lukechampine.com/uint128"

	"github.com/bitmark-inc/ledgerd/fault"
)

// ParseAmount - decimal text to a 128 bit amount
//
// JSON numbers cannot carry 128 bits so amounts travel as strings
func ParseAmount(s string) (uint128.Uint128, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 || n.BitLen() > 128 {
		return uint128.Zero, fault.ErrInvalidAmount
	}
	return uint128.FromBig(n), nil
}
