package core

import "image/color"

// ZOrder is the drawing layer of a draw command. Lower layers are drawn first.
type ZOrder int

const (
	ZMap ZOrder = iota
	ZUnit
	ZEffect
	ZHUD
)

// ImageID is an opaque handle into the renderer's asset table.
type ImageID int

const (
	ImageGround ImageID = iota
	ImageMountain
	ImageUnit
)

var (
	TintNone           = color.RGBA{255, 255, 255, 255}
	TintEnemyTerritory = color.RGBA{255, 85, 85, 255}
)

// DrawCommand asks the renderer to draw one image frame scaled to Width x Height.
type DrawCommand struct {
	Image  ImageID
	Frame  int
	X, Y   float64
	Z      ZOrder
	Width  float64
	Height float64
	Tint   color.RGBA
}

// Surface receives draw commands. The simulation never touches images itself.
type Surface interface {
	Draw(cmd DrawCommand)
}

// TerrainImage maps a terrain type to its image.
func TerrainImage(t Terrain) ImageID {
	if t == TerrainMountain {
		return ImageMountain
	}
	return ImageGround
}
