// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/ledgerd/fault"
)

// Batch - a set of writes, possibly to several regions, that are
// committed atomically
type Batch struct {
	store   *Store
	batch   *leveldb.Batch
	pending []batchItem
}

type batchItem struct {
	op    dbOperation
	key   []byte
	value []byte
}

// NewBatch - start an empty batch
func (s *Store) NewBatch() *Batch {
	return &Batch{
		store: s,
		batch: new(leveldb.Batch),
	}
}

// NewBatch - start an empty batch on the store holding this region
func (r *Region) NewBatch() *Batch {
	return r.store.NewBatch()
}

// Put - queue a key/value pair for a region
func (b *Batch) Put(r *Region, key []byte, value []byte) {
	prefixedKey := r.prefixKey(key)
	b.batch.Put(prefixedKey, value)
	b.pending = append(b.pending, batchItem{op: dbPut, key: prefixedKey, value: value})
}

// Delete - queue removal of a key from a region
func (b *Batch) Delete(r *Region, key []byte) {
	prefixedKey := r.prefixKey(key)
	b.batch.Delete(prefixedKey)
	b.pending = append(b.pending, batchItem{op: dbDelete, key: prefixedKey})
}

// Len - number of queued operations
func (b *Batch) Len() int {
	return b.batch.Len()
}

// Commit - write all queued operations in one database write
//
// the batch is empty afterwards and can be reused
func (b *Batch) Commit() error {
	s := b.store
	s.RLock()
	defer s.RUnlock()
	if nil == s.db {
		return fault.ErrNotInitialised
	}

	err := s.db.Write(b.batch, nil)
	if nil != err {
		b.Reset()
		return err
	}

	for _, item := range b.pending {
		s.cache.Set(item.op, item.key, item.value)
	}
	b.Reset()
	return nil
}

// Reset - discard all queued operations
func (b *Batch) Reset() {
	b.batch.Reset()
	b.pending = nil
}
