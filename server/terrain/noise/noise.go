// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"github.com/SoftbearStudios/crater/server/terrain"
	"github.com/aquilax/go-perlin"
	"math/rand"
)

const (
	alpha   = 2.0 // weight divisor between octaves
	beta    = 2.0 // frequency multiplier between octaves
	octaves = 3

	// maxRandomSeed bounds seeds drawn by NewRandom.
	maxRandomSeed = 1 << 31
)

// Generator samples 1D perlin noise.
type Generator struct {
	perlin    *perlin.Perlin
	seed      int64
	frequency float64
}

// New creates a new Generator with a seed.
// A non-positive frequency uses terrain.DefaultFrequency.
func New(seed int64, frequency float64) *Generator {
	if !(frequency > 0) {
		frequency = terrain.DefaultFrequency
	}
	return &Generator{
		perlin:    perlin.NewPerlin(alpha, beta, octaves, seed),
		seed:      seed,
		frequency: frequency,
	}
}

// NewRandom creates a new Generator with a seed drawn once from [1, 2^31).
func NewRandom(frequency float64) *Generator {
	return New(rand.Int63n(maxRandomSeed-1)+1, frequency)
}

// NewFromConfig uses config.Seed, or a random seed if it is 0.
func NewFromConfig(config terrain.Config) *Generator {
	if config.Seed == 0 {
		return NewRandom(config.Frequency)
	}
	return New(config.Seed, config.Frequency)
}

// Seed returns the seed the Generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Sample implements terrain.Source.Sample.
func (g *Generator) Sample(x float32) float32 {
	// Perlin output is centered on 0 and rarely leaves [-0.5, 0.5]
	return clamp01(float32(g.perlin.Noise1D(float64(x)*g.frequency)) + 0.5)
}
