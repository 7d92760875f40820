// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"github.com/chewxy/math32"
	"testing"
)

func BenchmarkGenerator_Sample(b *testing.B) {
	g := New(56, 0)
	b.ResetTimer()

	var acc float32
	for i := 0; i < b.N; i++ {
		acc += g.Sample(float32(i&1023) * 0.5)
	}
	_ = acc
}

func TestGenerator_SampleRange(t *testing.T) {
	for _, seed := range []int64{1, 46, 48, 56} {
		g := New(seed, 0)
		for x := float32(-100); x < 100; x += 0.37 {
			if s := g.Sample(x); !(s >= 0 && s <= 1) {
				t.Fatalf("seed %d: Sample(%f) = %f not in [0, 1]", seed, x, s)
			}
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := New(56, 0.2)
	b := New(56, 0.2)

	for x := float32(0); x < 50; x++ {
		if sa, sb := a.Sample(x), b.Sample(x); sa != sb {
			t.Errorf("Sample(%f) differs between generators with the same seed: %f != %f", x, sa, sb)
		}
		if s1, s2 := a.Sample(x), a.Sample(x); s1 != s2 {
			t.Errorf("Sample(%f) not repeatable: %f != %f", x, s1, s2)
		}
	}
}

func TestGenerator_Seeds(t *testing.T) {
	a := New(1, 0)
	b := New(2, 0)

	same := true
	for x := float32(0); x < 50; x++ {
		if a.Sample(x) != b.Sample(x) {
			same = false
			break
		}
	}
	if same {
		t.Error("expected different seeds to produce different terrain")
	}
}

func TestGenerator_Coherent(t *testing.T) {
	g := New(56, 0)

	// Neighbouring samples must be correlated, unlike white noise
	const step = 0.01
	for x := float32(0); x < 20; x += 0.5 {
		if d := math32.Abs(g.Sample(x+step) - g.Sample(x)); d > 0.05 {
			t.Errorf("Sample jumps by %f between %f and %f", d, x, x+step)
		}
	}
}

func TestNewRandom(t *testing.T) {
	for i := 0; i < 100; i++ {
		if seed := NewRandom(0).Seed(); seed < 1 || seed >= maxRandomSeed {
			t.Fatalf("random seed %d out of range", seed)
		}
	}
}

func TestNewFromConfig(t *testing.T) {
	if g := NewFromConfig(terrainConfig(42)); g.Seed() != 42 {
		t.Errorf("expected seed 42, got %d", g.Seed())
	}
	if g := NewFromConfig(terrainConfig(0)); g.Seed() == 0 {
		t.Error("expected a random seed to be picked")
	}
}
