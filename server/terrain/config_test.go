// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected default config to be valid, got %v", err)
	}

	inverted := valid
	inverted.MinHeight, inverted.MaxHeight = 2, -2
	if err := inverted.Validate(); err != nil {
		t.Errorf("expected inverted heights to be allowed, got %v", err)
	}

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero spacing", func(c *Config) { c.Spacing = 0 }},
		{"negative spacing", func(c *Config) { c.Spacing = -0.5 }},
		{"NaN spacing", func(c *Config) { c.Spacing = math32.NaN() }},
		{"infinite width", func(c *Config) { c.Width = math32.Inf(1) }},
		{"tiny spacing", func(c *Config) { c.Spacing = 1e-7 }},
		{"negative margin", func(c *Config) { c.Margin = -1 }},
		{"negative frequency", func(c *Config) { c.Frequency = -1 }},
	}

	for _, test := range tests {
		config := valid
		test.modify(&config)
		if err := config.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%s: expected ErrInvalidConfiguration, got %v", test.name, err)
		}
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	config := Config{Width: 10, Spacing: 1}.WithDefaults()
	if config.Strength != DefaultStrength {
		t.Errorf("expected strength %d, got %g", DefaultStrength, config.Strength)
	}
	if config.Margin != DefaultMargin {
		t.Errorf("expected margin %d, got %g", DefaultMargin, config.Margin)
	}
	if config.Frequency != DefaultFrequency {
		t.Errorf("expected frequency %g, got %g", DefaultFrequency, config.Frequency)
	}

	custom := Config{Width: 10, Spacing: 1, Strength: 7, Margin: 1}.WithDefaults()
	if custom.Strength != 7 || custom.Margin != 1 {
		t.Errorf("expected explicit values to be kept, got %+v", custom)
	}
}

func TestConfig_Count(t *testing.T) {
	tests := []struct {
		width, spacing float32
		count          int
	}{
		{20, 1, 21},
		{20, 3, 7},
		{0.5, 1, 1},
		{1, 0.1, 11},
	}

	for _, test := range tests {
		config := Config{Width: test.width, Spacing: test.spacing}
		if c := config.Count(); c != test.count {
			t.Errorf("Count(%g, %g) = %d, expected %d", test.width, test.spacing, c, test.count)
		}
	}
}
