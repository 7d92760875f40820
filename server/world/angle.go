// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"fmt"
	"github.com/chewxy/math32"
)

// Angle is in radians, counterclockwise from +X.
type Angle float32

func (angle Angle) Vec2f() Vec2f {
	sin, cos := math32.Sincos(float32(angle))
	return Vec2f{
		X: cos,
		Y: sin,
	}
}

func (angle Angle) Diff(otherAngle Angle) (difference Angle) {
	difference = angle - otherAngle
	const mod = Angle(math32.Pi * 2)

	if difference >= mod || difference < -mod {
		difference = Angle(math32.Mod(float32(difference), float32(mod)))
	}

	if difference < Angle(-math32.Pi) {
		difference += Angle(math32.Pi * 2)
	} else if difference >= Angle(math32.Pi) {
		difference -= Angle(math32.Pi * 2)
	}
	return
}

func (angle Angle) Float() float32 {
	return float32(angle)
}

// Degrees converts to degrees, the unit most renderers want for a z rotation.
func (angle Angle) Degrees() float32 {
	return float32(angle) * 180 / math32.Pi
}

func (angle Angle) String() string {
	return fmt.Sprintf("%.01f degrees", angle.Degrees())
}
