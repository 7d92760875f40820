// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/SoftbearStudios/crater/server/world"
)

// Falloff is 1 at the center of an impact, decreasing linearly to 0 at radius.
// It is 0 at and beyond radius, and for non-positive radii.
func Falloff(distance, radius float32) float32 {
	if !(radius > 0) || !(distance < radius) {
		return 0
	}
	return (radius - distance) / radius
}

// ImpactDelta is how much an impact at center lowers point.
// It is never negative, so an impact never raises the terrain.
func ImpactDelta(point, center world.Vec2f, radius, strength float32) float32 {
	if !(strength > 0) {
		return 0
	}
	return Falloff(point.Distance(center), radius) * strength
}
