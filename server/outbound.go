// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"github.com/SoftbearStudios/crater/server/terrain"
	"github.com/SoftbearStudios/crater/server/world"
)

type (
	// Explosion tells clients where an impact hit, ahead of the Terrain it caused.
	Explosion struct {
		Position world.Vec2f `json:"position"`
		Radius   float32     `json:"radius"`
	}

	// Terrain is a complete snapshot of the terrain, sent after every change.
	// It is encoded once by the hub and written verbatim to every socket.
	Terrain struct {
		data *terrain.Data
		raw  []byte
	}
)

func init() {
	registerOutbound(
		Explosion{},
		Terrain{},
	)
}

func (Explosion) outbound() {}
func (Terrain) outbound()   {}

// Data returns the snapshot. It must not be modified.
func (t Terrain) Data() *terrain.Data {
	return t.data
}

// JSON returns the encoded snapshot. It must not be modified.
func (t Terrain) JSON() []byte {
	return t.raw
}
