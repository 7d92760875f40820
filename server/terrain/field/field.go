// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package field

import (
	"github.com/SoftbearStudios/crater/server/logger"
	"github.com/SoftbearStudios/crater/server/terrain"
	"github.com/SoftbearStudios/crater/server/terrain/noise"
	"github.com/SoftbearStudios/crater/server/world"
	"go.uber.org/zap"
)

// Terrain implements terrain.Terrain on a single HeightField.
type Terrain struct {
	source terrain.Source
	config terrain.Config
	field  *HeightField

	impacts int
	lowered int
}

var _ terrain.Terrain = (*Terrain)(nil)

// New generates a Terrain from source. It returns a nil Terrain and an error wrapping
// terrain.ErrInvalidConfiguration if config is invalid.
func New(source terrain.Source, config terrain.Config) (*Terrain, error) {
	t := &Terrain{source: source}
	if err := t.Generate(config); err != nil {
		return nil, err
	}
	return t, nil
}

// NewNoise generates a Terrain from perlin noise seeded by config.Seed (random if 0).
// The returned Terrain's Config holds the seed that was actually used.
func NewNoise(config terrain.Config) (*Terrain, error) {
	generator := noise.NewFromConfig(config)
	config.Seed = generator.Seed()
	return New(generator, config)
}

// Generate replaces the terrain with a newly sampled one.
// If config is invalid the current terrain, if any, is left untouched.
func (t *Terrain) Generate(config terrain.Config) error {
	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		logger.Log.Warn("rejected terrain configuration", zap.Error(err))
		return err
	}

	h := newHeightField(t.source, config)
	if t.field != nil {
		// Versions keep increasing across generations
		h.version += t.field.version
	}

	// Publish only once complete
	t.config = config
	t.field = h
	t.impacts = 0
	t.lowered = 0

	logger.Log.Info("generated terrain",
		zap.Int64("seed", config.Seed),
		zap.Int("points", h.surface),
		zap.Float32("width", config.Width),
		zap.Float32("spacing", config.Spacing),
		zap.Any("bounds", h.bounds),
	)
	return nil
}

// Reseed regenerates the terrain from new perlin noise with the current configuration
// and seed (random if 0).
func (t *Terrain) Reseed(seed int64) error {
	config := t.config
	config.Seed = seed
	generator := noise.NewFromConfig(config)
	config.Seed = generator.Seed()

	previous := t.source
	t.source = generator
	if err := t.Generate(config); err != nil {
		t.source = previous
		return err
	}
	return nil
}

// Config returns the configuration the terrain was generated with, defaults applied.
func (t *Terrain) Config() terrain.Config {
	return t.config
}

// Version increases every time the terrain changes.
func (t *Terrain) Version() uint64 {
	return t.field.version
}

func (t *Terrain) Points() []world.Vec2f {
	return copyPoints(t.field.collision)
}

func (t *Terrain) HeightAt(x float32) float32 {
	return terrain.Interpolate(t.field.collision, x, t.field.minHeight)
}

func (t *Terrain) SlopeAt(x float32) world.Angle {
	return terrain.Slope(t.field.collision, x)
}

func (t *Terrain) Bounds() world.AABB {
	return t.field.bounds
}

func (t *Terrain) Boundary() []world.Vec2f {
	return copyPoints(t.field.boundary)
}

func (t *Terrain) Collision() []world.Vec2f {
	return copyPoints(t.field.collision)
}

// Place returns a position offset above the surface at x.
func (t *Terrain) Place(x, offset float32) world.Vec2f {
	return world.Vec2f{X: x, Y: t.HeightAt(x) + offset}
}

// ClampX keeps x at least margin away from either horizontal edge of the terrain.
// If the terrain is narrower than twice the margin, its middle is returned.
func (t *Terrain) ClampX(x, margin float32) float32 {
	lo := t.field.bounds.X + margin
	hi := t.field.bounds.Max().X - margin
	if lo > hi {
		return t.field.bounds.Center().X
	}
	return world.Clamp(x, lo, hi)
}

// Impact lowers the terrain around pos with the configured strength.
func (t *Terrain) Impact(pos world.Vec2f, radius float32) {
	t.Sculpt(pos, radius, t.config.Strength)
}

// Sculpt lowers every surface point within radius of pos by up to strength, with linear
// falloff, clamped to the floor. A non-positive or non-finite radius or strength is a no-op.
// The version only changes if at least one point was lowered.
func (t *Terrain) Sculpt(pos world.Vec2f, radius, strength float32) int {
	if !(radius > 0) || !(strength > 0) || !world.Finite(radius) || !world.Finite(strength) || !pos.Finite() {
		return 0
	}

	lowered := t.field.lower(pos, radius, strength)
	t.field.resync()
	if lowered == 0 {
		return 0
	}
	t.field.version++

	t.impacts++
	t.lowered += lowered

	logger.Log.Debug("impact",
		zap.Float32("x", pos.X),
		zap.Float32("y", pos.Y),
		zap.Float32("radius", radius),
		zap.Float32("strength", strength),
		zap.Int("lowered", lowered),
	)
	return lowered
}

func (t *Terrain) Snapshot(data *terrain.Data) {
	*data = terrain.Data{
		Bounds:    t.field.bounds,
		Boundary:  append(data.Boundary[:0], t.field.boundary...),
		Collision: append(data.Collision[:0], t.field.collision...),
		MinHeight: t.field.minHeight,
		Seed:      t.config.Seed,
		Version:   t.field.version,
	}
}

func (t *Terrain) Debug() {
	logger.Log.Info("field terrain",
		zap.Int64("seed", t.config.Seed),
		zap.Int("points", t.field.surface),
		zap.Uint64("version", t.field.version),
		zap.Int("impacts", t.impacts),
		zap.Int("lowered", t.lowered),
		zap.Any("bounds", t.field.bounds),
	)
}
