// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"github.com/bitmark-inc/ledgerd/codec"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
)

// MaximumRange - largest page returned by Range
const MaximumRange = 100

// Log - typed view of a storage log
type Log struct {
	log *storage.Log
}

// Open - bind the event log to its index and data regions
//
// a corrupt header is a fault.StorageInitError
func Open(index *storage.Region, data *storage.Region) (*Log, error) {
	l, err := storage.OpenLog(index, data, Update{}.Bound())
	if nil != err {
		return nil, err
	}
	return &Log{log: l}, nil
}

// Append - add an event, returns its index
func (l *Log) Append(u Update) (uint64, error) {
	return l.log.Append(u)
}

// AppendBatch - add an event in the same commit as the writes queued in b
func (l *Log) AppendBatch(b *storage.Batch, u Update) (uint64, error) {
	return l.log.AppendBatch(b, u)
}

// Get - the event at index
func (l *Log) Get(index uint64) (*Update, error) {
	buffer := l.log.Get(index)
	if nil == buffer {
		return nil, fault.ErrEventNotFound
	}
	u := &Update{}
	if err := u.UnmarshalBinary(buffer); nil != err {
		return nil, err
	}
	return u, nil
}

// Len - count of events
func (l *Log) Len() uint64 {
	return l.log.Len()
}

// Range - up to count events from start
//
// count is limited to MaximumRange; an empty result means start is at
// or beyond the end
func (l *Log) Range(start uint64, count int) ([]Update, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	if count > MaximumRange {
		count = MaximumRange
	}

	items, err := l.log.Range(start, count)
	if nil != err {
		return nil, err
	}

	result := make([]Update, len(items))
	for i, item := range items {
		if err := result[i].UnmarshalBinary(item.Value); nil != err {
			return nil, err
		}
	}
	return result, nil
}

var _ codec.Storable = Update{}
