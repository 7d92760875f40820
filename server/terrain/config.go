// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/SoftbearStudios/crater/server/world"
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

const (
	// DefaultStrength is how far an impact lowers the point at its center.
	DefaultStrength = 2
	// DefaultMargin is how far below the floor the boundary polygon's base sits.
	DefaultMargin = 5
	// DefaultFrequency scales horizontal positions before sampling noise.
	DefaultFrequency = 0.17
	// MaxPoints caps the number of surface points a single terrain may have.
	MaxPoints = 1 << 20
)

// ErrInvalidConfiguration is wrapped by every Config validation error.
var ErrInvalidConfiguration = errors.New("invalid terrain configuration")

// Config holds the generation parameters of a terrain.
type Config struct {
	Width     float32 `yaml:"width" json:"width"`
	Spacing   float32 `yaml:"spacing" json:"spacing"`
	MinHeight float32 `yaml:"min_height" json:"minHeight"`
	MaxHeight float32 `yaml:"max_height" json:"maxHeight"`
	// Seed of the noise source. 0 picks a random seed.
	Seed      int64   `yaml:"seed" json:"seed"`
	Frequency float64 `yaml:"frequency" json:"frequency"`
	// Strength of Impact at its center. 0 means DefaultStrength.
	Strength float32 `yaml:"strength" json:"strength"`
	// Margin below MinHeight of the boundary base. 0 means DefaultMargin.
	Margin float32 `yaml:"margin" json:"margin"`
}

// DefaultConfig returns a small terrain with a random seed.
func DefaultConfig() Config {
	return Config{
		Width:     20,
		Spacing:   1,
		MinHeight: -2,
		MaxHeight: 2,
		Frequency: DefaultFrequency,
		Strength:  DefaultStrength,
		Margin:    DefaultMargin,
	}
}

// WithDefaults fills zero valued optional fields.
func (c Config) WithDefaults() Config {
	if c.Frequency == 0 {
		c.Frequency = DefaultFrequency
	}
	if c.Strength == 0 {
		c.Strength = DefaultStrength
	}
	if c.Margin == 0 {
		c.Margin = DefaultMargin
	}
	return c
}

// Count is the number of surface points, floor(Width/Spacing)+1.
// Only meaningful after Validate succeeds.
func (c Config) Count() int {
	return int(math32.Floor(c.Width/c.Spacing)) + 1
}

// Validate returns an error wrapping ErrInvalidConfiguration if c can't produce a terrain.
// MaxHeight below MinHeight is allowed and produces a flat terrain at MinHeight.
func (c Config) Validate() error {
	for _, f := range []struct {
		name  string
		value float32
	}{
		{"width", c.Width},
		{"spacing", c.Spacing},
		{"min height", c.MinHeight},
		{"max height", c.MaxHeight},
		{"strength", c.Strength},
		{"margin", c.Margin},
	} {
		if !world.Finite(f.value) {
			return errors.Wrapf(ErrInvalidConfiguration, "%s must be finite, got %v", f.name, f.value)
		}
	}

	switch {
	case c.Width <= 0:
		return errors.Wrapf(ErrInvalidConfiguration, "width must be positive, got %v", c.Width)
	case c.Spacing <= 0:
		return errors.Wrapf(ErrInvalidConfiguration, "spacing must be positive, got %v", c.Spacing)
	case c.Width/c.Spacing >= MaxPoints:
		return errors.Wrapf(ErrInvalidConfiguration, "width %v / spacing %v exceeds %d points", c.Width, c.Spacing, MaxPoints)
	case c.Strength < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "strength must not be negative, got %v", c.Strength)
	case c.Margin < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "margin must not be negative, got %v", c.Margin)
	case !(c.Frequency >= 0):
		return errors.Wrapf(ErrInvalidConfiguration, "frequency must not be negative, got %v", c.Frequency)
	}
	return nil
}
