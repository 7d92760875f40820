// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"io"
	"math/rand"

	"github.com/SoftbearStudios/crater/server/terrain"
	"github.com/SoftbearStudios/crater/server/world"
)

// BotClient bombards the terrain with impacts at random points on its surface.
// All of its methods run on the hub goroutine.
type BotClient struct {
	membership
	rand       *rand.Rand
	radius     float32
	terrain    *terrain.Data // latest snapshot received
	impacts    int
	destroying bool
}

// NewBotClient returns a BotClient whose impacts have the given radius.
func NewBotClient(seed int64, radius float32) *BotClient {
	return &BotClient{
		membership: membership{bot: true},
		rand:       rand.New(rand.NewSource(seed)),
		radius:     radius,
	}
}

func (bot *BotClient) start() {}

func (bot *BotClient) stop() {}

// Destroy stops the bombardment and detaches the bot once.
func (bot *BotClient) Destroy() {
	if bot.destroying || bot.hub == nil {
		return
	}
	bot.destroying = true
	bot.hub.leave(bot)
}

func (bot *BotClient) Send(out outbound) {
	if bot.destroying {
		return
	}

	if encodeBotMessages {
		// Discard output
		if err := json.NewEncoder(io.Discard).Encode(Message{Data: out}); err != nil {
			panic("bot test marshal: " + err.Error())
		}
	}

	if t, ok := out.(Terrain); ok {
		bot.terrain = t.Data()
	}
}

// Bombard requests one impact at a random point on the surface of the latest snapshot.
func (bot *BotClient) Bombard() {
	if bot.destroying || bot.terrain == nil || len(bot.terrain.Collision) == 0 {
		return
	}

	bounds := bot.terrain.Bounds
	x := bounds.X + bot.rand.Float32()*bounds.Width
	bot.impacts++

	bot.receiveAsync(Impact{
		Position: world.Vec2f{X: x, Y: bot.terrain.HeightAt(x)},
		Radius:   bot.radius,
	})
}

func (bot *BotClient) receiveAsync(in inbound) {
	if bot.hub == nil {
		return
	}

	select {
	case bot.hub.inbound <- SignedInbound{Client: bot, inbound: in}:
	default:
		// Drop bot messages to avoid downfall of server
	}
}
