// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgerd/event"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Events - type for the RPC
type Events struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Handle
}

// New - create the events RPC service
func New(log *logger.L, limiter *rate.Limiter, l ledger.Handle) *Events {
	return &Events{
		Log:     log,
		Limiter: limiter,
		Ledger:  l,
	}
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	Index uint64 `json:"index,string"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Index uint64       `json:"index,string"`
	Event event.Update `json:"event"`
}

// Get - fetch one event by position
func (events *Events) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(events.Limiter); nil != err {
		return err
	}

	u, err := events.Ledger.GetEvent(arguments.Index)
	if nil != err {
		return err
	}

	reply.Index = arguments.Index
	reply.Event = *u
	return nil
}

// ---

// CountArguments - empty arguments for count request
type CountArguments struct{}

// CountReply - results from count request
type CountReply struct {
	Count uint64 `json:"count,string"`
}

// Count - number of events recorded
func (events *Events) Count(_ *CountArguments, reply *CountReply) error {

	if err := ratelimit.Limit(events.Limiter); nil != err {
		return err
	}

	reply.Count = events.Ledger.GetEventCount()
	return nil
}

// ---

// ListArguments - arguments for list request
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - results from list request
type ListReply struct {
	Events    []event.Update `json:"events"`
	NextStart uint64         `json:"nextStart,string"`
}

// List - a page of events starting at Start
func (events *Events) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(events.Limiter, arguments.Count, event.MaximumRange); nil != err {
		return err
	}

	events.Log.Debugf("Events.List: %+v", arguments)

	items, err := events.Ledger.ListEvents(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events = items
	reply.NextStart = arguments.Start + uint64(len(items))
	return nil
}
