// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// Region - handle for one prefix partition of the database
type Region struct {
	name  string
	tag   byte
	limit []byte
	store *Store
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Tag - the prefix byte of the region
func (r *Region) Tag() byte {
	return r.tag
}

// Name - field name in the Regions struct
func (r *Region) Name() string {
	return r.name
}

// prepend the prefix onto the key
func (r *Region) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = r.tag
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (r *Region) Put(key []byte, value []byte) {
	r.store.RLock()
	defer r.store.RUnlock()
	if nil == r.store.db {
		logger.Panicf("region: %s Put on closed database", r.name)
		return
	}
	prefixedKey := r.prefixKey(key)
	err := r.store.db.Put(prefixedKey, value, nil)
	logger.PanicIfError("region.Put", err)
	r.store.cache.Set(dbPut, prefixedKey, value)
}

// Delete - remove a key from the database
func (r *Region) Delete(key []byte) {
	r.store.RLock()
	defer r.store.RUnlock()
	if nil == r.store.db {
		logger.Panicf("region: %s Delete on closed database", r.name)
		return
	}
	prefixedKey := r.prefixKey(key)
	err := r.store.db.Delete(prefixedKey, nil)
	logger.PanicIfError("region.Delete", err)
	r.store.cache.Set(dbDelete, prefixedKey, nil)
}

// Get - read a value for a given key
//
// returns nil if the key does not exist
// this returns a shared slice - copy the result if it must be modified
func (r *Region) Get(key []byte) []byte {
	r.store.RLock()
	defer r.store.RUnlock()
	if nil == r.store.db {
		return nil
	}

	prefixedKey := r.prefixKey(key)
	if value, found := r.store.cache.Get(prefixedKey); found {
		return value
	}

	value, err := r.store.db.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		r.store.cache.Set(dbDelete, prefixedKey, nil)
		return nil
	}
	logger.PanicIfError("region.Get", err)
	r.store.cache.Set(dbPut, prefixedKey, value)
	return value
}

// Has - check if a key exists
func (r *Region) Has(key []byte) bool {
	return nil != r.Get(key)
}

// LastElement - get the last element in a region
func (r *Region) LastElement() (Element, bool) {
	maxRange := ldb_util.Range{
		Start: []byte{r.tag}, // Start of key range, included in the range
		Limit: r.limit,       // Limit of key range, excluded from the range
	}

	r.store.RLock()
	defer r.store.RUnlock()
	if nil == r.store.db {
		return Element{}, false
	}

	iter := r.store.db.NewIterator(&maxRange, nil)

	found := false
	result := Element{}
	if iter.Last() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result.Key = dataKey
		result.Value = dataValue
		found = true
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("region.LastElement", err)
	return result, found
}
