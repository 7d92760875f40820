// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/SoftbearStudios/crater/server/world"
	"github.com/fogleman/gg"
	"image"
	"image/color"
)

var (
	skyColor     = RGB(150, 200, 235)
	groundColor  = RGB(105, 80, 55)
	surfaceColor = RGB(90, 180, 30)
	floorColor   = RGB(60, 45, 30)
)

const (
	// renderPadding is the fraction of the image left empty around the terrain.
	renderPadding = 0.05
	// minRenderHeight keeps very wide terrains visible.
	minRenderHeight = 64
	// maxRenderHeight bounds the image of very narrow terrains.
	maxRenderHeight = 4096
)

// RenderWidth renders data into an image of the given width whose height keeps roughly
// the aspect ratio of the boundary polygon, within [minRenderHeight, maxRenderHeight].
func RenderWidth(data *Data, width int) image.Image {
	h := float32(width)
	if view := world.AABBOf(data.Boundary); view.Width > 0 {
		h = float32(width) * view.Height / view.Width
	}

	// Clamp before converting, since h may be +Inf.
	height := minRenderHeight
	switch {
	case !(h < maxRenderHeight):
		height = maxRenderHeight
	case h > minRenderHeight:
		height = int(h)
	}
	return Render(data, width, height)
}

// Render rasterizes the boundary polygon (filled) and collision polyline (stroked) of data.
func Render(data *Data, width, height int) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetColor(skyColor)
	dc.Clear()

	if len(data.Boundary) < 3 {
		return dc.Image()
	}

	// Frame the boundary so the base is visible
	view := world.AABBOf(data.Boundary)
	if view.Width <= 0 || view.Height <= 0 {
		return dc.Image()
	}
	sx := float64(width) * (1 - 2*renderPadding) / float64(view.Width)
	sy := float64(height) * (1 - 2*renderPadding) / float64(view.Height)
	project := func(p world.Vec2f) (float64, float64) {
		x := float64(width)*renderPadding + float64(p.X-view.X)*sx
		// Image Y grows downwards
		y := float64(height)*(1-renderPadding) - float64(p.Y-view.Y)*sy
		return x, y
	}

	for i, p := range data.Boundary {
		x, y := project(p)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()

	top := float64(height) * renderPadding
	bottom := float64(height) * (1 - renderPadding)
	gradient := gg.NewLinearGradient(0, top, 0, bottom)
	gradient.AddColorStop(0, groundColor)
	gradient.AddColorStop(1, floorColor)
	dc.SetFillStyle(gradient)
	dc.Fill()

	for i, p := range data.Collision {
		x, y := project(p)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.SetColor(surfaceColor)
	dc.SetLineWidth(3)
	dc.Stroke()

	return dc.Image()
}

func RGB(r, g, b byte) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
