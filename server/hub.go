// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/SoftbearStudios/crater/server/cloud/fs"
	"github.com/SoftbearStudios/crater/server/config"
	"github.com/SoftbearStudios/crater/server/logger"
	"github.com/SoftbearStudios/crater/server/terrain"
	"github.com/SoftbearStudios/crater/server/terrain/field"
	"go.uber.org/zap"
)

const (
	debugPeriod = time.Second * 30

	// encodeBotMessages makes BotClient.Send marshal json and check for errors.
	// Only useful for testing/benchmarking.
	encodeBotMessages = false
)

// Hub owns the terrain. Impacts and regenerations are applied on its goroutine, one at
// a time, and every resulting state is published as a complete Terrain snapshot.
type Hub struct {
	// Terrain state, only accessed by the hub goroutine
	terrain *field.Terrain
	clients clientSet
	bot     *BotClient

	// Cloud
	fs             fs.Filesystem
	snapshotPeriod time.Duration
	bombardPeriod  time.Duration

	// Served atomically by HTTP
	published   atomic.Value // Terrain
	rendered    atomic.Value // renderedPNG
	clientCount int32

	// Inbound channels
	inbound    chan SignedInbound
	register   chan Client
	unregister chan Client

	// Closed when Run returns
	done chan struct{}
}

// NewHub generates the initial terrain from cfg. filesystem may be nil (offline).
func NewHub(cfg *config.Config, filesystem fs.Filesystem) (*Hub, error) {
	t, err := field.NewNoise(cfg.Terrain)
	if err != nil {
		return nil, err
	}

	if filesystem == nil {
		filesystem = fs.Offline{}
	}

	h := &Hub{
		terrain:        t,
		fs:             filesystem,
		snapshotPeriod: cfg.Cloud.SnapshotPeriod,
		bombardPeriod:  cfg.Server.BombardPeriod,
		inbound:        make(chan SignedInbound, 16+cfg.Server.MaxConnections*2),
		register:       make(chan Client, 8+cfg.Server.MaxConnections/256),
		unregister:     make(chan Client, 16+cfg.Server.MaxConnections/128),
		done:           make(chan struct{}),
	}

	if h.bombardPeriod > 0 {
		h.bot = NewBotClient(t.Config().Seed, cfg.Server.ImpactRadius)
	}

	h.publish()
	return h, nil
}

// Run processes inbound messages and timers until ctx is done. It must be called at most once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	debugTicker := time.NewTicker(debugPeriod)
	defer debugTicker.Stop()

	var bombard, snapshot <-chan time.Time
	if h.bot != nil {
		ticker := time.NewTicker(h.bombardPeriod)
		defer ticker.Stop()
		bombard = ticker.C
		h.attach(h.bot)
	}
	if _, offline := h.fs.(fs.Offline); !offline && h.snapshotPeriod > 0 {
		ticker := time.NewTicker(h.snapshotPeriod)
		defer ticker.Stop()
		snapshot = ticker.C
	}

	for {
		select {
		case client := <-h.register:
			h.attach(client)
		case client := <-h.unregister:
			h.detach(client)
		case in := <-h.inbound:
			// Read all messages currently in the channel
			n := len(h.inbound)

			for {
				// Clients that left may still have messages in flight
				if in.Client == nil || in.Client.member().hub == h {
					in.Inbound(h, in.Client)
				}

				if n--; n < 0 {
					break
				}

				in = <-h.inbound
			}

			// Publish once per batch
			if h.terrain.Version() != h.Published().Data().Version {
				h.publish()
			}
		case <-bombard:
			h.bot.Bombard()
		case <-snapshot:
			h.SnapshotTerrain()
		case <-debugTicker.C:
			h.Debug()
		case <-ctx.Done():
			for n := h.clients.len(); n > 0; n = h.clients.len() {
				h.detach(h.clients.members[n-1])
			}

			// Turn away clients that were queued but never attached
			for {
				select {
				case client := <-h.register:
					client.Destroy()
				default:
					return
				}
			}
		}
	}
}

// publish snapshots and encodes the terrain, then sends it to every client.
func (h *Hub) publish() {
	data := new(terrain.Data)
	h.terrain.Snapshot(data)

	raw, err := json.Marshal(data)
	if err != nil {
		logger.Log.Error("could not encode terrain", zap.Error(err))
		return
	}

	t := Terrain{data: data, raw: raw}
	h.published.Store(t)
	h.broadcast(t)
}

func (h *Hub) broadcast(out outbound) {
	for _, client := range h.clients.members {
		client.Send(out)
	}
}

// Published returns the latest complete terrain snapshot. It is safe to call from any goroutine.
func (h *Hub) Published() Terrain {
	return h.published.Load().(Terrain)
}

// Clients returns the number of registered clients, including the bot.
func (h *Hub) Clients() int {
	return int(atomic.LoadInt32(&h.clientCount))
}

// Submit queues an inbound that did not come from a client. It blocks until the hub
// accepts it. It fails instead once the hub stopped or ctx is done.
func (h *Hub) Submit(ctx context.Context, in inbound) error {
	if h.stopped() {
		return errHubStopped
	}

	select {
	case h.inbound <- SignedInbound{inbound: in}:
		return nil
	case <-h.done:
		return errHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}
