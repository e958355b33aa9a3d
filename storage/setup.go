// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// Regions - the set of regions in the database
//
// note all must be exported (i.e. initial capital) or Open will fail
type Regions struct {
	Assets     *Region `region:"0"`
	EventIndex *Region `region:"1"`
	EventData  *Region `region:"2"`
	TotalUnits *Region `region:"4"`
	Accounts   *Region `region:"5"`
	TestData   *Region `region:"200"`
}

// prefix reserved for database metadata
const metadataPrefix = 0xff

// for database version
var versionKey = []byte{metadataPrefix, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open database and its regions
type Store struct {
	sync.RWMutex
	log      *logger.L
	db       *leveldb.DB
	cache    *dbCache
	readOnly bool

	Regions Regions
}

// Open - open up the database and bind every region
//
// this must be called before any region is accessed
func Open(database string, readOnly bool) (*Store, error) {

	log := logger.New("storage")

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("read only database: %q has no version", database)
			return nil, fault.ErrDatabaseVersion
		}

		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return nil, err
		}
	}

	s := &Store{
		log:      log,
		db:       db,
		cache:    newCache(),
		readOnly: readOnly,
	}

	if err := s.bindRegions(); nil != err {
		log.Criticalf("bind regions error: %s", err)
		return nil, err
	}

	log.Infof("opened: %q  version: 0x%x  read only: %v", database, currentDBVersion, readOnly)

	ok = true // prevent db close
	return s, nil
}

// scan the region struct and create a handle for each field
func (s *Store) bindRegions() error {

	// this will be a struct type
	regionType := reflect.TypeOf(s.Regions)

	// get write access by using pointer + Elem()
	regionValue := reflect.ValueOf(&s.Regions).Elem()

	seen := make(map[byte]string)

	for i := 0; i < regionType.NumField(); i += 1 {

		fieldInfo := regionType.Field(i)

		if fieldInfo.Type != reflect.TypeOf((*Region)(nil)) {
			return fmt.Errorf("region: %s is not a region handle", fieldInfo.Name)
		}

		tag, err := parseRegionTag(fieldInfo.Tag.Get("region"))
		if nil != err {
			return err
		}
		if other, ok := seen[tag]; ok {
			s.log.Criticalf("region: %s has the same tag: %d as: %s", fieldInfo.Name, tag, other)
			return fault.ErrDuplicateRegionTag
		}
		seen[tag] = fieldInfo.Name

		r := &Region{
			name:  fieldInfo.Name,
			tag:   tag,
			limit: []byte{tag + 1},
			store: s,
		}
		regionValue.Field(i).Set(reflect.ValueOf(r))
	}
	return nil
}

// region tags are small integers below the metadata prefix
func parseRegionTag(tag string) (byte, error) {
	n, err := strconv.Atoi(tag)
	if nil != err || n < 0 || n >= metadataPrefix {
		return 0, fault.ErrInvalidRegionTag
	}
	return byte(n), nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	if nil != s.db {
		s.db.Close()
		s.db = nil
		s.cache.Clear()
		s.log.Info("closed")
	}
}

// IsReadOnly - true if opened with ReadOnly
func (s *Store) IsReadOnly() bool {
	return s.readOnly
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
