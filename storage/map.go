// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding"

	"github.com/bitmark-inc/ledgerd/codec"
)

// Map - an ordered key → value map occupying one region
//
// keys and values are encoded with their codec and checked against
// the declared bounds on every write
type Map struct {
	region     *Region
	keyBound   codec.Bound
	valueBound codec.Bound
}

// NewMap - create a map over a region
func NewMap(region *Region, keyBound codec.Bound, valueBound codec.Bound) *Map {
	return &Map{
		region:     region,
		keyBound:   keyBound,
		valueBound: valueBound,
	}
}

// Region - the underlying region, for cursors
func (m *Map) Region() *Region {
	return m.region
}

// NewBatch - start a batch on this map's store
func (m *Map) NewBatch() *Batch {
	return m.region.NewBatch()
}

func (m *Map) pack(key codec.Storable, value codec.Storable) ([]byte, []byte, error) {
	k, err := m.packKey(key)
	if nil != err {
		return nil, nil, err
	}
	v, err := codec.Pack(value)
	if nil != err {
		return nil, nil, err
	}
	if err := m.valueBound.Check(len(v)); nil != err {
		return nil, nil, err
	}
	return k, v, nil
}

func (m *Map) packKey(key codec.Storable) ([]byte, error) {
	k, err := codec.Pack(key)
	if nil != err {
		return nil, err
	}
	if err := m.keyBound.Check(len(k)); nil != err {
		return nil, err
	}
	return k, nil
}

// Put - insert or overwrite
func (m *Map) Put(key codec.Storable, value codec.Storable) error {
	k, v, err := m.pack(key, value)
	if nil != err {
		return err
	}
	m.region.Put(k, v)
	return nil
}

// BatchPut - queue an insert or overwrite
func (m *Map) BatchPut(b *Batch, key codec.Storable, value codec.Storable) error {
	k, v, err := m.pack(key, value)
	if nil != err {
		return err
	}
	b.Put(m.region, k, v)
	return nil
}

// Get - fetch and decode a value
//
// returns false if the key is absent, in which case value is untouched
func (m *Map) Get(key codec.Storable, value encoding.BinaryUnmarshaler) (bool, error) {
	k, err := m.packKey(key)
	if nil != err {
		return false, err
	}
	buffer := m.region.Get(k)
	if nil == buffer {
		return false, nil
	}
	if err := value.UnmarshalBinary(buffer); nil != err {
		return false, err
	}
	return true, nil
}

// Has - check if a key exists
func (m *Map) Has(key codec.Storable) (bool, error) {
	k, err := m.packKey(key)
	if nil != err {
		return false, err
	}
	return m.region.Has(k), nil
}
