// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"github.com/chewxy/math32"
	"math/rand"
	"testing"
)

func BenchmarkVec2f_Distance(b *testing.B) {
	const count = 1024
	vectors := make([]Vec2f, count)
	for i := range vectors {
		vectors[i] = Vec2f{X: rand.Float32()*100 - 50, Y: rand.Float32()*100 - 50}
	}
	b.ResetTimer()

	var acc float32
	for i := 0; i < b.N; i++ {
		acc += vectors[i&(count-1)].Distance(vectors[(i+count/2)&(count-1)])
	}
	_ = acc
}

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 0.02
}

func TestVec2f_Angle(t *testing.T) {
	tests := []struct {
		vec Vec2f
		ang Angle
	}{
		{Vec2f{0, 0}, 0},
		{Vec2f{1, 1}, Angle(math32.Pi / 4)},
		{Vec2f{0, 1}, Angle(math32.Pi / 2)},
		{Vec2f{0, -1}, Angle(-math32.Pi / 2)},
	}

	for _, test := range tests {
		if !approx(0, test.ang.Diff(test.vec.Angle()).Float()) {
			t.Errorf("expected %v.Angle(): %s, got %s", test.vec, test.ang, test.vec.Angle())
		}
	}

	for i := float32(-3.0); i < 3; i += 0.25 {
		a := Angle(i)
		a2 := a.Vec2f().Angle()
		if !approx(0, a.Diff(a2).Float()) {
			t.Errorf("expected %s got %s", a, a2)
		}
	}
}

func TestVec2f_Distance(t *testing.T) {
	tests := []struct {
		a, b Vec2f
		dist float32
	}{
		{Vec2f{0, 0}, Vec2f{3, 4}, 5},
		{Vec2f{10, 1}, Vec2f{7, 1}, 3},
		{Vec2f{-1, -1}, Vec2f{-1, -1}, 0},
	}

	for _, test := range tests {
		if d := test.a.Distance(test.b); d != test.dist {
			t.Errorf("expected %v.Distance(%v): %f, got %f", test.a, test.b, test.dist, d)
		}
		if d := test.a.DistanceSquared(test.b); !approx(d, test.dist*test.dist) {
			t.Errorf("expected %v.DistanceSquared(%v): %f, got %f", test.a, test.b, test.dist*test.dist, d)
		}
	}
}

func TestVec2f_Finite(t *testing.T) {
	if !(Vec2f{1, -2}).Finite() {
		t.Error("expected finite")
	}
	if (Vec2f{math32.NaN(), 0}).Finite() {
		t.Error("expected NaN to be non-finite")
	}
	if (Vec2f{0, math32.Inf(-1)}).Finite() {
		t.Error("expected -Inf to be non-finite")
	}
}

func TestAABBOf(t *testing.T) {
	aabb := AABBOf([]Vec2f{{0, 1}, {2, -1}, {4, 3}})
	expected := AABBFrom(0, -1, 4, 4)
	if aabb != expected {
		t.Errorf("expected %v, got %v", expected, aabb)
	}
	if m := aabb.Max(); m != (Vec2f{4, 3}) {
		t.Errorf("expected max {4 3}, got %v", m)
	}
	if c := aabb.Center(); c != (Vec2f{2, 1}) {
		t.Errorf("expected center {2 1}, got %v", c)
	}

	if empty := AABBOf(nil); empty != (AABB{}) {
		t.Errorf("expected zero AABB, got %v", empty)
	}
}
