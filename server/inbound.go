// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"github.com/SoftbearStudios/crater/server/logger"
	"github.com/SoftbearStudios/crater/server/world"
	"go.uber.org/zap"
)

// Make sure to register in init function
type (
	// Impact lowers the terrain around Position.
	Impact struct {
		Position world.Vec2f `json:"position"`
		Radius   float32     `json:"radius"`
	}

	// InvalidInbound means invalid message type from client (possibly out of date).
	// NOTE: Do not register, otherwise client could send type "invalidInbound"
	InvalidInbound struct {
		messageType messageType
	}

	// Regenerate replaces the terrain with a new one generated from Seed.
	// A zero Seed picks a random one.
	Regenerate struct {
		Seed int64 `json:"seed"`
	}
)

func init() {
	registerInbound(
		Impact{},
		Regenerate{},
	)
}

func (data Impact) Inbound(h *Hub, client Client) {
	version := h.terrain.Version()
	h.terrain.Impact(data.Position, data.Radius)
	if h.terrain.Version() == version {
		// No-op
		return
	}

	h.broadcast(Explosion{Position: data.Position, Radius: data.Radius})
}

func (data InvalidInbound) Inbound(_ *Hub, _ Client) {
	logger.Log.Warn("invalid message type", zap.String("type", string(data.messageType)))
}

func (data Regenerate) Inbound(h *Hub, client Client) {
	if err := h.terrain.Reseed(data.Seed); err != nil {
		logger.Log.Warn("could not regenerate terrain", zap.Int64("seed", data.Seed), zap.Error(err))
	}
}
