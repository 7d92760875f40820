// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config handles server configuration loading.
package config

import (
	"time"

	"github.com/SoftbearStudios/crater/server/terrain"
)

// Config holds all server settings.
type Config struct {
	Terrain terrain.Config `yaml:"terrain"`
	Server  ServerConfig   `yaml:"server"`
	Cloud   CloudConfig    `yaml:"cloud"`
	Logging LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds the hub and HTTP listener settings.
type ServerConfig struct {
	Port           int `yaml:"port"`
	MaxConnections int `yaml:"max_connections"`
	// BombardPeriod is how often a random impact is applied. 0 disables it.
	BombardPeriod time.Duration `yaml:"bombard_period"`
	// ImpactRadius is the radius of random impacts.
	ImpactRadius float32 `yaml:"impact_radius"`
}

// CloudConfig holds settings for uploading terrain snapshots.
// An empty Bucket keeps the server offline.
type CloudConfig struct {
	Bucket         string        `yaml:"bucket"`
	Region         string        `yaml:"region"`
	SnapshotPeriod time.Duration `yaml:"snapshot_period"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: terrain.DefaultConfig(),
		Server: ServerConfig{
			Port:           8192,
			MaxConnections: 256,
			ImpactRadius:   3,
		},
		Cloud: CloudConfig{
			Region:         "us-east-1",
			SnapshotPeriod: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
