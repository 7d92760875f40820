// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/SoftbearStudios/crater/server/world"
)

// Camera is an orthographic view.
type Camera struct {
	Center world.Vec2f `json:"center"`
	// OrthographicSize is half the view's height.
	OrthographicSize float32 `json:"orthographicSize"`
}

// FitCamera fits an orthographic view with the given aspect (width / height) to bounds.
// The whole width is visible and the bottom of the view rests on the lowest point.
func FitCamera(bounds world.AABB, aspect float32) Camera {
	if !(aspect > 0) {
		aspect = 1
	}

	size := bounds.Width / (2 * aspect)
	if bySize := bounds.Height / 2; bySize > size {
		size = bySize
	}

	return Camera{
		Center: world.Vec2f{
			X: bounds.X + bounds.Width/2,
			Y: bounds.Y + size,
		},
		OrthographicSize: size,
	}
}
