// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ArithmeticError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type StorageInitError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountNotFound              = NotFoundError("account not found")
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrAssetIdTooWide               = InvalidError("asset id is wider than 12 bytes")
	ErrAssetNotFound                = NotFoundError("asset not found")
	ErrBalanceOverflow              = ArithmeticError("balance overflow")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrConfigurationNotTable        = InvalidError("configuration did not return a table")
	ErrCorruptLogHeader             = StorageInitError("corrupt log header")
	ErrDatabaseVersion              = StorageInitError("incompatible database version")
	ErrDuplicateRegionTag           = StorageInitError("duplicate region tag")
	ErrEventNotFound                = NotFoundError("event not found")
	ErrFileNotFound                 = NotFoundError("file not found")
	ErrInsufficientBalance          = ArithmeticError("insufficient balance")
	ErrInvalidAmount                = InvalidError("invalid amount")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidFileName              = InvalidError("invalid file name")
	ErrInvalidHex                   = InvalidError("invalid hexadecimal string")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidOwner                 = InvalidError("invalid owner")
	ErrInvalidOwnerChecksum         = InvalidError("invalid owner checksum")
	ErrInvalidRegionTag             = StorageInitError("invalid region tag")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNegativeValue                = InvalidError("negative value")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrOwnerLength                  = InvalidError("owner length is invalid")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrRecordTooLarge               = RecordError("record exceeds declared bound")
	ErrTruncatedRecord              = RecordError("truncated record")
	ErrUnexpectedRecordSize         = RecordError("record size does not match layout")
	ErrValueTooLarge                = LengthError("value too large for field")
	ErrWrongLogEntryPosition        = StorageInitError("log entry position mismatch")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ArithmeticError) Error() string  { return string(e) }
func (e ExistsError) Error() string      { return string(e) }
func (e InvalidError) Error() string     { return string(e) }
func (e LengthError) Error() string      { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }
func (e RecordError) Error() string      { return string(e) }
func (e StorageInitError) Error() string { return string(e) }

// determine the class of an error
func IsErrArithmetic(e error) bool  { _, ok := e.(ArithmeticError); return ok }
func IsErrExists(e error) bool      { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool     { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool      { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool    { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool     { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool      { _, ok := e.(RecordError); return ok }
func IsErrStorageInit(e error) bool { _, ok := e.(StorageInitError); return ok }
