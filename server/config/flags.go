// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"flag"
)

var (
	flagConfig         = flag.String("config", "", "Path to config file")
	flagDebug          = flag.Bool("debug", false, "Enable debug logging")
	flagPort           = flag.Int("port", 0, "http service port")
	flagMaxConnections = flag.Int("max-connections", 0, "maximum number of inbound TCP connections")
	flagSeed           = flag.Int64("seed", 0, "terrain seed (0 is random)")
	flagWidth          = flag.Float64("width", 0, "terrain width")
	flagBucket         = flag.String("bucket", "", "S3 bucket for terrain snapshots")
	flagBombard        = flag.Duration("bombard", 0, "period of random impacts (0 keeps the configured period)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPort != 0 {
		cfg.Server.Port = *flagPort
	}
	if *flagMaxConnections > 0 {
		cfg.Server.MaxConnections = *flagMaxConnections
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagWidth > 0 {
		cfg.Terrain.Width = float32(*flagWidth)
	}
	if *flagBucket != "" {
		cfg.Cloud.Bucket = *flagBucket
	}
	if *flagBombard > 0 {
		cfg.Server.BombardPeriod = *flagBombard
	}
}
