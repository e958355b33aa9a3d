// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - registry of asset metadata keyed by asset id
//
// creating an asset always records an AssetCreated event; creating the
// same id again replaces the metadata and records another event
package asset
