// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/SoftbearStudios/crater/server/world"
	"github.com/chewxy/math32"
	"testing"
)

var testPoints = []world.Vec2f{
	{X: 0, Y: 1},
	{X: 1, Y: 3},
	{X: 2, Y: -1},
	{X: 3, Y: -1},
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		x, height float32
	}{
		{0, 1},
		{0.5, 2},
		{1, 3},
		{1.25, 2},
		{2, -1},
		{2.5, -1},
		{3, -1},
		{-0.5, -2},
		{3.5, -2},
		{math32.NaN(), -2},
	}

	for _, test := range tests {
		if h := Interpolate(testPoints, test.x, -2); h != test.height {
			t.Errorf("Interpolate(%g) = %g, expected %g", test.x, h, test.height)
		}
	}

	if h := Interpolate(nil, 0, -2); h != -2 {
		t.Errorf("expected floor for empty points, got %g", h)
	}
	if h := Interpolate(testPoints[:1], 0, -2); h != 1 {
		t.Errorf("expected single point height, got %g", h)
	}
}

func TestSlope(t *testing.T) {
	tests := []struct {
		x     float32
		angle world.Angle
	}{
		{0, world.Vec2f{X: 1, Y: 2}.Angle()},
		{0.5, world.Vec2f{X: 1, Y: 2}.Angle()},
		{1, world.Vec2f{X: 1, Y: -4}.Angle()},
		{2.5, 0},
		{3, 0},
		{-1, 0},
		{4, 0},
	}

	for _, test := range tests {
		if a := Slope(testPoints, test.x); a != test.angle {
			t.Errorf("Slope(%g) = %s, expected %s", test.x, a, test.angle)
		}
	}
}

func TestElevation(t *testing.T) {
	tests := []struct {
		sample, minHeight, maxHeight, height float32
	}{
		{0, -2, 2, -2},
		{0.5, -2, 2, 0},
		{1, -2, 2, 2},
		{0.25, 0, 8, 2},
		{0.5, 3, -3, 3},
		{math32.NaN(), -2, 2, -2},
	}

	for _, test := range tests {
		if h := Elevation(test.sample, test.minHeight, test.maxHeight); h != test.height {
			t.Errorf("Elevation(%g, %g, %g) = %g, expected %g", test.sample, test.minHeight, test.maxHeight, h, test.height)
		}
	}
}
