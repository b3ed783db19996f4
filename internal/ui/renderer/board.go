package renderer

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// BoardRenderer collects draw commands from the simulation and blits them to
// the screen in Z order.
type BoardRenderer struct {
	assets      map[core.ImageID]*Sheet
	defaultFont font.Face
	queue       []core.DrawCommand
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(f font.Face) *BoardRenderer {
	return &BoardRenderer{assets: NewAssets(), defaultFont: f}
}

// Draw queues a command. It implements core.Surface.
func (br *BoardRenderer) Draw(cmd core.DrawCommand) {
	br.queue = append(br.queue, cmd)
}

// Flush draws every queued command onto screen, lower Z first and in
// submission order within a layer, then empties the queue.
func (br *BoardRenderer) Flush(screen *ebiten.Image) {
	slices.SortStableFunc(br.queue, func(a, b core.DrawCommand) int {
		return int(a.Z) - int(b.Z)
	})
	for _, cmd := range br.queue {
		sheet, ok := br.assets[cmd.Image]
		if !ok {
			continue
		}
		fw, fh := sheet.Size()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(cmd.Width/float64(fw), cmd.Height/float64(fh))
		op.GeoM.Translate(cmd.X, cmd.Y)
		op.ColorScale.ScaleWithColor(cmd.Tint)
		screen.DrawImage(sheet.Frame(cmd.Frame), op)
	}
	br.queue = br.queue[:0]
}

// Text draws a line of HUD text with its baseline at y.
func (br *BoardRenderer) Text(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, br.defaultFont, x, y, clr)
}

// TextWidth is the pixel width of s in the HUD font.
func (br *BoardRenderer) TextWidth(s string) int {
	return text.BoundString(br.defaultFont, s).Dx()
}

// Highlight outlines a w x h rectangle at (x, y).
func (br *BoardRenderer) Highlight(screen *ebiten.Image, x, y, w, h float32, clr color.Color) {
	const stroke = 2
	fillRect(screen, x, y, w, stroke, clr)
	fillRect(screen, x, y+h-stroke, w, stroke, clr)
	fillRect(screen, x, y, stroke, h, clr)
	fillRect(screen, x+w-stroke, y, stroke, h, clr)
}

// FillRect draws a solid rectangle.
func (br *BoardRenderer) FillRect(screen *ebiten.Image, x, y, w, h float32, clr color.Color) {
	fillRect(screen, x, y, w, h, clr)
}

// Overlay shades the whole screen, e.g. behind a pause banner.
func (br *BoardRenderer) Overlay(screen *ebiten.Image, clr color.Color) {
	b := screen.Bounds()
	fillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), clr)
}

func fillRect(screen *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(screen, x, y, w, h, clr, false)
}
