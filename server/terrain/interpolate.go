// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/SoftbearStudios/crater/server/world"
	"sort"
)

// Elevation maps a [0, 1] sample into [minHeight, maxHeight], never below minHeight.
func Elevation(sample, minHeight, maxHeight float32) float32 {
	y := sample*(maxHeight-minHeight) + minHeight
	if !(y >= minHeight) {
		return minHeight
	}
	return y
}

// bracket returns i such that points[i-1].X < x <= points[i].X.
// ok is false if x is outside [points[0].X, points[len-1].X] or NaN.
func bracket(points []world.Vec2f, x float32) (i int, ok bool) {
	n := len(points)
	if n == 0 || !(x >= points[0].X && x <= points[n-1].X) {
		return 0, false
	}
	return sort.Search(n, func(i int) bool { return points[i].X >= x }), true
}

// Interpolate linearly interpolates the height of points (sorted by X) at x.
// Outside the sampled range it returns floor.
func Interpolate(points []world.Vec2f, x, floor float32) float32 {
	i, ok := bracket(points, x)
	if !ok {
		return floor
	}

	p1 := points[i]
	if p1.X == x {
		// Exact at knots
		return p1.Y
	}
	p0 := points[i-1]

	y := world.Lerp(p0.Y, p1.Y, (x-p0.X)/(p1.X-p0.X))

	// Rounding must not leave the segment
	if p0.Y < p1.Y {
		return world.Clamp(y, p0.Y, p1.Y)
	}
	return world.Clamp(y, p1.Y, p0.Y)
}

// Slope returns the angle of the segment of points under x.
// At a knot the segment to its right is used, except at the last point.
// Outside the sampled range the terrain is flat.
func Slope(points []world.Vec2f, x float32) world.Angle {
	i, ok := bracket(points, x)
	if !ok || len(points) < 2 {
		return 0
	}

	if points[i].X == x && i+1 < len(points) {
		i++
	}
	if i == 0 {
		i = 1
	}

	return points[i].Sub(points[i-1]).Angle()
}
