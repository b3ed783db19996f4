package common

import (
	"image/color"
)

// Terrain colors
var (
	GroundColor        = color.RGBA{96, 128, 56, 255}
	GroundDetailColor  = color.RGBA{110, 145, 66, 255}
	MountainColor      = color.RGBA{120, 110, 100, 255}
	MountainPeakColor  = color.RGBA{230, 230, 235, 255}
	UnitBaseColor      = color.RGBA{255, 255, 255, 255}
	UnitMuzzleColor    = color.RGBA{255, 220, 90, 255}
	UnitWreckColor     = color.RGBA{60, 60, 60, 255}
	SelectionColor     = color.RGBA{255, 255, 0, 160}
	EditorCursorColor  = color.RGBA{0, 255, 255, 160}
	FrontlineLineColor = color.RGBA{255, 60, 60, 200}
)

// UI colors
var (
	BackgroundColor = color.Black
	HUDTextColor    = color.White
	OverlayColor    = color.RGBA{0, 0, 0, 160}
)
