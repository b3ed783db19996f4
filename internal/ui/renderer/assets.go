package renderer

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mitchelldurbincs/frontline/internal/common"
	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// SpriteSize is the edge length in pixels of every generated sprite frame.
const SpriteSize = 32

// unitFrames matches the clip layout in core: dead 0-5, fire 6-7, idle 8-9.
const unitFrames = 10

// Sheet is a horizontal strip of equally sized frames.
type Sheet struct {
	image  *ebiten.Image
	frames []*ebiten.Image
}

func newSheet(src *image.RGBA, frames int) *Sheet {
	img := ebiten.NewImageFromImage(src)
	w := src.Bounds().Dx() / frames
	h := src.Bounds().Dy()
	s := &Sheet{image: img, frames: make([]*ebiten.Image, frames)}
	for i := range s.frames {
		s.frames[i] = img.SubImage(image.Rect(i*w, 0, (i+1)*w, h)).(*ebiten.Image)
	}
	return s
}

// Frame returns frame i, clamped to the sheet.
func (s *Sheet) Frame(i int) *ebiten.Image {
	return s.frames[common.Clamp(i, 0, len(s.frames)-1)]
}

// Size is the size of one frame.
func (s *Sheet) Size() (int, int) {
	b := s.frames[0].Bounds()
	return b.Dx(), b.Dy()
}

// NewAssets draws the sprite sheets. Sprites are drawn in light colours so the
// draw command tint can colour them.
func NewAssets() map[core.ImageID]*Sheet {
	return map[core.ImageID]*Sheet{
		core.ImageGround:   newSheet(groundSprite(), 1),
		core.ImageMountain: newSheet(mountainSprite(), 1),
		core.ImageUnit:     newSheet(unitSprites(), unitFrames),
	}
}

func groundSprite() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	fill(img, img.Bounds(), common.GroundColor)
	for y := 3; y < SpriteSize; y += 8 {
		for x := (y / 8 % 2) * 4; x < SpriteSize; x += 8 {
			img.Set(x, y, common.GroundDetailColor)
		}
	}
	return img
}

func mountainSprite() *image.RGBA {
	img := groundSprite()
	peak := SpriteSize / 2
	for y := 4; y < SpriteSize-2; y++ {
		half := (y - 4) * peak / (SpriteSize - 6)
		for x := peak - half; x <= peak+half; x++ {
			c := common.MountainColor
			if y < 12 {
				c = common.MountainPeakColor
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func unitSprites() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SpriteSize*unitFrames, SpriteSize))
	for frame := 0; frame < unitFrames; frame++ {
		r := image.Rect(frame*SpriteSize, 0, (frame+1)*SpriteSize, SpriteSize)
		switch {
		case frame <= core.ClipDead.Last:
			// wreck shrinks away as the death clip plays
			inset := 6 + frame*2
			fill(img, r.Inset(inset), common.UnitWreckColor)
		case frame <= core.ClipFire.Last:
			drawBody(img, r, 0)
			barrel := image.Rect(r.Min.X+14, r.Min.Y+2, r.Min.X+18, r.Min.Y+8)
			fill(img, barrel, common.UnitMuzzleColor)
		default:
			bob := frame - core.ClipIdle.First
			drawBody(img, r, bob)
		}
	}
	return img
}

func drawBody(img *image.RGBA, r image.Rectangle, bob int) {
	body := image.Rect(r.Min.X+8, r.Min.Y+10+bob, r.Max.X-8, r.Max.Y-6+bob)
	fill(img, body, common.UnitBaseColor)
	turret := image.Rect(r.Min.X+14, r.Min.Y+6+bob, r.Min.X+18, r.Min.Y+12+bob)
	fill(img, turret, common.UnitBaseColor)
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}
