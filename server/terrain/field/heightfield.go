// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package field

import (
	"github.com/SoftbearStudios/crater/server/terrain"
	"github.com/SoftbearStudios/crater/server/world"
)

// HeightField stores the surface points of a terrain and the shapes derived from them.
//
// points holds the surface points followed by two base points below the floor.
// Only the Y of surface points ever changes, and never below minHeight.
type HeightField struct {
	points    []world.Vec2f
	surface   int // number of surface points
	minHeight float32
	version   uint64 // increases with every change to points

	// Derived by resync
	boundary  []world.Vec2f
	collision []world.Vec2f
	bounds    world.AABB
}

// newHeightField samples source at every surface point of a validated config.
func newHeightField(source terrain.Source, config terrain.Config) *HeightField {
	n := config.Count()
	points := make([]world.Vec2f, n, n+2)

	for i := range points {
		// Multiply instead of accumulating so x[i] == i*spacing exactly
		x := float32(i) * config.Spacing
		points[i] = world.Vec2f{
			X: x,
			Y: terrain.Elevation(source.Sample(x), config.MinHeight, config.MaxHeight),
		}
	}

	base := config.MinHeight - config.Margin
	points = append(points,
		world.Vec2f{X: points[n-1].X, Y: base},
		world.Vec2f{X: 0, Y: base},
	)

	h := &HeightField{
		points:    points,
		surface:   n,
		minHeight: config.MinHeight,
	}
	h.resync()
	h.version = 1
	return h
}

// surfacePoints aliases the mutable surface points.
func (h *HeightField) surfacePoints() []world.Vec2f {
	return h.points[:h.surface]
}

// lower applies an impact to the surface points and returns how many were lowered.
// Callers must resync afterwards.
func (h *HeightField) lower(center world.Vec2f, radius, strength float32) (lowered int) {
	surface := h.surfacePoints()
	for i := range surface {
		p := &surface[i]

		delta := terrain.ImpactDelta(*p, center, radius, strength)
		if delta <= 0 {
			continue
		}

		y := p.Y - delta
		if y < h.minHeight {
			y = h.minHeight
		}
		if y < p.Y {
			p.Y = y
			lowered++
		}
	}
	return
}

// resync rebuilds the boundary polygon and collision polyline from points.
// It runs at the end of every generation and deformation.
func (h *HeightField) resync() {
	h.boundary = append(h.boundary[:0], h.points...)
	h.collision = append(h.collision[:0], h.surfacePoints()...)
	h.bounds = world.AABBOf(h.collision)
}

func copyPoints(a []world.Vec2f) []world.Vec2f {
	b := make([]world.Vec2f, len(a))
	copy(b, a)
	return b
}
