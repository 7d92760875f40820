// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
)

var errHubStopped = errors.New("hub stopped")

type (
	// Client consumes the outbounds a Hub broadcasts. Apart from Destroy, every method is
	// called on the hub goroutine.
	Client interface {
		// Send delivers out. It must not block.
		Send(out outbound)

		// Destroy asks the hub to detach the client. It may be called any number of times,
		// from any goroutine, even after the hub stopped.
		Destroy()

		// start runs after the client is attached, stop after it is detached.
		start()
		stop()

		member() *membership
	}

	// membership is embedded by every Client.
	membership struct {
		hub *Hub // set while attached
		bot bool
	}

	// clientSet holds the attached clients of a hub.
	clientSet struct {
		members []Client
		index   map[Client]int
		bots    int
	}
)

func (m *membership) member() *membership {
	return m
}

func (set *clientSet) add(client Client) bool {
	if _, ok := set.index[client]; ok {
		return false
	}
	if set.index == nil {
		set.index = make(map[Client]int)
	}

	set.index[client] = len(set.members)
	set.members = append(set.members, client)
	if client.member().bot {
		set.bots++
	}
	return true
}

// remove swaps the last client into the removed slot, so order is not preserved.
func (set *clientSet) remove(client Client) bool {
	i, ok := set.index[client]
	if !ok {
		return false
	}
	delete(set.index, client)

	end := len(set.members) - 1
	if i != end {
		set.members[i] = set.members[end]
		set.index[set.members[i]] = i
	}
	set.members[end] = nil
	set.members = set.members[:end]

	if client.member().bot {
		set.bots--
	}
	return true
}

func (set *clientSet) len() int {
	return len(set.members)
}

// attach registers client and sends it the published terrain.
// A client attached to any hub is ignored.
func (h *Hub) attach(client Client) {
	m := client.member()
	if m.hub != nil || !h.clients.add(client) {
		return
	}

	m.hub = h
	client.start()
	atomic.StoreInt32(&h.clientCount, int32(h.clients.len()))
	client.Send(h.Published())
}

// detach is a no-op unless client is attached to h.
func (h *Hub) detach(client Client) {
	m := client.member()
	if m.hub != h || !h.clients.remove(client) {
		return
	}

	m.hub = nil
	client.stop()
	atomic.StoreInt32(&h.clientCount, int32(h.clients.len()))
}

// join queues client to be attached. It fails once the hub stopped or ctx is done.
func (h *Hub) join(ctx context.Context, client Client) error {
	if h.stopped() {
		return errHubStopped
	}

	select {
	case h.register <- client:
		return nil
	case <-h.done:
		return errHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// leave queues client to be detached without blocking the caller, which may be the hub
// goroutine itself. It is dropped if the hub stops first.
func (h *Hub) leave(client Client) {
	select {
	case h.unregister <- client:
	default:
		go func() {
			select {
			case h.unregister <- client:
			case <-h.done:
			}
		}()
	}
}

func (h *Hub) stopped() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}
