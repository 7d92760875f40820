// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/SoftbearStudios/crater/server/world"
)

// Source generates height samples.
type Source interface {
	// Sample returns a value in [0, 1] for a horizontal position.
	// It must be deterministic in x for the lifetime of the Source.
	Sample(x float32) float32
}

// Terrain is a destructible 2D height-field.
// None of its methods may be called concurrently. Consumers on other
// goroutines should read a Data snapshot instead.
type Terrain interface {
	// Points returns a copy of the surface points, sorted by X.
	Points() []world.Vec2f
	// HeightAt returns the interpolated height at x, or the floor outside the sampled range.
	HeightAt(x float32) float32
	// SlopeAt returns the angle of the surface tangent at x.
	SlopeAt(x float32) world.Angle
	// Bounds returns the bounding box of the surface points.
	Bounds() world.AABB
	// Boundary returns a copy of the closed polygon used to fill the terrain body.
	Boundary() []world.Vec2f
	// Collision returns a copy of the open polyline used for collision.
	Collision() []world.Vec2f
	// Impact lowers the terrain around pos with the configured strength.
	Impact(pos world.Vec2f, radius float32)
	// Sculpt lowers the terrain around pos by up to strength and returns how many points moved.
	Sculpt(pos world.Vec2f, radius, strength float32) int
	// Snapshot copies the current state into data.
	Snapshot(data *Data)
	// Debug logs debug info.
	Debug()
}
