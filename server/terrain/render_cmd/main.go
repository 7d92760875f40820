// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"image/png"
	"math/rand"
	"os"
	"runtime/pprof"

	"github.com/SoftbearStudios/crater/server/logger"
	"github.com/SoftbearStudios/crater/server/terrain"
	"github.com/SoftbearStudios/crater/server/terrain/field"
	"github.com/SoftbearStudios/crater/server/world"
	"go.uber.org/zap"
)

func main() {
	var (
		cpuProfile string
		out        string
		size       int
		impacts    int
		radius     float64
	)

	config := terrain.DefaultConfig()
	var width, spacing float64
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.StringVar(&out, "out", "out.png", "output PNG `file`")
	flag.IntVar(&size, "size", 1024, "image width in pixels")
	flag.IntVar(&impacts, "impacts", 0, "number of random impacts to apply before rendering")
	flag.Float64Var(&radius, "radius", 3, "radius of random impacts")
	flag.Int64Var(&config.Seed, "seed", 56, "terrain seed (0 is random)")
	flag.Float64Var(&width, "width", float64(config.Width), "terrain width")
	flag.Float64Var(&spacing, "spacing", float64(config.Spacing), "terrain point spacing")
	flag.Parse()

	config.Width = float32(width)
	config.Spacing = float32(spacing)

	if err := logger.Init("info", ""); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			logger.Log.Fatal("could not create CPU profile", zap.Error(err))
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Log.Fatal("could not start CPU profile", zap.Error(err))
		}
		defer pprof.StopCPUProfile()
	}

	run(config, out, size, impacts, float32(radius))
}

func run(config terrain.Config, out string, size, impacts int, radius float32) {
	t, err := field.NewNoise(config)
	if err != nil {
		logger.Log.Fatal("could not generate terrain", zap.Error(err))
	}

	bounds := t.Bounds()
	for i := 0; i < impacts; i++ {
		x := bounds.X + rand.Float32()*bounds.Width
		t.Impact(world.Vec2f{X: x, Y: t.HeightAt(x)}, radius)
	}
	t.Debug()

	var data terrain.Data
	t.Snapshot(&data)

	img := terrain.RenderWidth(&data, size)

	file, err := os.Create(out)
	if err != nil {
		logger.Log.Fatal("could not create output", zap.Error(err))
	}
	defer file.Close()

	if err = png.Encode(file, img); err != nil {
		logger.Log.Fatal("could not encode PNG", zap.Error(err))
	}
	logger.Log.Info("rendered terrain", zap.String("out", out), zap.Int64("seed", data.Seed))
}
