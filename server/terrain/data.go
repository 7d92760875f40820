// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/SoftbearStudios/crater/server/world"
)

// Data is a snapshot of a Terrain taken between mutations.
// It must not be modified once shared.
type Data struct {
	Bounds    world.AABB    `json:"bounds"`
	Boundary  []world.Vec2f `json:"boundary"`  // Boundary is closed: the last point connects to the first.
	Collision []world.Vec2f `json:"collision"` // Collision is open and holds only the surface points.
	MinHeight float32       `json:"minHeight"`
	Seed      int64         `json:"seed"`
	Version   uint64        `json:"version"` // Version increases with every change to the terrain.
}

// HeightAt is Terrain.HeightAt evaluated on the snapshot.
func (data *Data) HeightAt(x float32) float32 {
	return Interpolate(data.Collision, x, data.MinHeight)
}

// SlopeAt is Terrain.SlopeAt evaluated on the snapshot.
func (data *Data) SlopeAt(x float32) world.Angle {
	return Slope(data.Collision, x)
}
