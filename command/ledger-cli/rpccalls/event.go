// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ledgerd/rpc/events"
)

// GetEvent - fetch a single event by index
func (client *Client) GetEvent(index uint64) (*events.GetReply, error) {

	args := events.GetArguments{
		Index: index,
	}
	client.printJson("Get Event Request", args)

	var reply events.GetReply
	if err := client.client.Call("Events.Get", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Get Event Reply", reply)
	return &reply, nil
}

// CountEvents - number of events recorded so far
func (client *Client) CountEvents() (uint64, error) {

	var reply events.CountReply
	if err := client.client.Call("Events.Count", &events.CountArguments{}, &reply); err != nil {
		return 0, err
	}

	client.printJson("Count Events Reply", reply)
	return reply.Count, nil
}

// ListEvents - a range of events starting at start
func (client *Client) ListEvents(start uint64, count int) (*events.ListReply, error) {

	args := events.ListArguments{
		Start: start,
		Count: count,
	}
	client.printJson("List Events Request", args)

	var reply events.ListReply
	if err := client.client.Call("Events.List", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("List Events Reply", reply)
	return &reply, nil
}
