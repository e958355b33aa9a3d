// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"time"
)

// Clock - source of creation timestamps in nanoseconds
type Clock interface {
	Now() uint64
}

// MonotonicClock - wall clock that never goes backwards
type MonotonicClock struct {
	sync.Mutex
	last uint64
}

// Now - current time, or one past the previous value if the wall
// clock has not advanced
func (c *MonotonicClock) Now() uint64 {
	c.Lock()
	defer c.Unlock()

	now := uint64(time.Now().UnixNano())
	if now <= c.last {
		now = c.last + 1
	}
	c.last = now
	return now
}
