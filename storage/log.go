// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/ledgerd/codec"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// structure of the log header
const (
	logMagic   = "LGH"
	logVersion = 1

	magicStart  = 0
	magicFinish = magicStart + len(logMagic)

	versionStart  = magicFinish
	versionFinish = versionStart + 1

	lengthStart  = versionFinish
	lengthFinish = lengthStart + 8

	headerLength = lengthFinish
)

// the single key in the index region
var headerKey = []byte{'H'}

// Log - an append-only indexed sequence of records
//
// the header (length) lives in the index region and the entries in
// the data region keyed by their big endian uint64 position
type Log struct {
	index  *Region
	data   *Region
	bound  codec.Bound
	length uint64
}

// OpenLog - bind a log to two regions
//
// an empty index region is initialised; an existing header must be
// valid and agree with the data region, otherwise the log is corrupt
func OpenLog(index *Region, data *Region, entryBound codec.Bound) (*Log, error) {
	l := &Log{
		index: index,
		data:  data,
		bound: entryBound,
	}

	header := index.Get(headerKey)
	if nil == header {
		if _, found := data.LastElement(); found {
			return nil, fault.ErrCorruptLogHeader
		}
		if index.store.IsReadOnly() {
			return l, nil
		}
		index.Put(headerKey, packHeader(0))
		return l, nil
	}

	length, err := unpackHeader(header)
	if nil != err {
		return nil, err
	}

	last, found := data.LastElement()
	switch {
	case 0 == length && !found:
		// empty
	case 0 == length || !found:
		return nil, fault.ErrCorruptLogHeader
	case 8 != len(last.Key) || binary.BigEndian.Uint64(last.Key) != length-1:
		return nil, fault.ErrWrongLogEntryPosition
	}

	l.length = length
	return l, nil
}

func packHeader(length uint64) []byte {
	header := make([]byte, headerLength)
	copy(header[magicStart:magicFinish], logMagic)
	header[versionStart] = logVersion
	binary.BigEndian.PutUint64(header[lengthStart:lengthFinish], length)
	return header
}

func unpackHeader(header []byte) (uint64, error) {
	if headerLength != len(header) {
		return 0, fault.ErrCorruptLogHeader
	}
	if !bytes.Equal([]byte(logMagic), header[magicStart:magicFinish]) {
		return 0, fault.ErrCorruptLogHeader
	}
	if logVersion != header[versionStart] {
		return 0, fault.ErrCorruptLogHeader
	}
	return binary.BigEndian.Uint64(header[lengthStart:lengthFinish]), nil
}

func entryKey(i uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, i)
	return key
}

// Len - number of entries
func (l *Log) Len() uint64 {
	return l.length
}

// Append - add an entry at the end, returns its index
//
// entry and header are written in a single batch
func (l *Log) Append(entry codec.Storable) (uint64, error) {
	return l.AppendBatch(l.index.NewBatch(), entry)
}

// AppendBatch - add an entry and commit it together with any writes
// already queued in batch
//
// on error the batch is discarded, so none of its writes happen
func (l *Log) AppendBatch(batch *Batch, entry codec.Storable) (uint64, error) {
	buffer, err := codec.Pack(entry)
	if nil == err {
		err = l.bound.Check(len(buffer))
	}
	if nil != err {
		batch.Reset()
		return 0, err
	}

	i := l.length

	batch.Put(l.data, entryKey(i), buffer)
	batch.Put(l.index, headerKey, packHeader(i+1))
	if err := batch.Commit(); nil != err {
		return 0, err
	}

	l.length = i + 1
	return i, nil
}

// Get - raw bytes of an entry
//
// returns nil if the index is beyond the end of the log
func (l *Log) Get(i uint64) []byte {
	if i >= l.length {
		return nil
	}
	buffer := l.data.Get(entryKey(i))
	if nil == buffer {
		logger.Panicf("log: %s entry: %d missing below length: %d", l.data.name, i, l.length)
	}
	return buffer
}

// Range - raw bytes of up to count entries starting at start
func (l *Log) Range(start uint64, count int) ([]Element, error) {
	if start >= l.length {
		return []Element{}, nil
	}
	cursor := l.data.NewFetchCursor().Seek(entryKey(start))
	return cursor.Fetch(count)
}
