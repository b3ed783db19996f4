package core

import (
	"fmt"
	"image/color"
)

// Tile is one cell of the board. It holds at most one ground unit and at most
// one air unit, referenced by handle.
type Tile struct {
	Terrain Terrain
	ground  UnitID
	air     UnitID
	index   int
	board   *Board
}

// Index is the tile's position in the board's row-major tile list.
func (t *Tile) Index() int { return t.index }

// Board is the board that owns this tile.
func (t *Tile) Board() *Board { return t.board }

func (t *Tile) GroundUnit() *Unit { return t.board.Unit(t.ground) }
func (t *Tile) AirUnit() *Unit    { return t.board.Unit(t.air) }

// GroundEmpty reports whether a ground unit could stand here.
func (t *Tile) GroundEmpty() bool {
	return t.Terrain != TerrainMountain && t.ground == NoUnit
}

func (t *Tile) AirEmpty() bool { return t.air == NoUnit }
func (t *Tile) Empty() bool    { return t.GroundEmpty() && t.AirEmpty() }

// EmptyFor reports whether the slot for domain d is free, including the
// mountain restriction for ground units.
func (t *Tile) EmptyFor(d Domain) bool {
	if d == DomainAir {
		return t.AirEmpty()
	}
	return t.GroundEmpty()
}

// EachUnit visits the ground unit, then the air unit. Returning false from
// visit stops the iteration.
func (t *Tile) EachUnit(visit func(*Unit) bool) {
	if u := t.GroundUnit(); u != nil {
		if !visit(u) {
			return
		}
	}
	if u := t.AirUnit(); u != nil {
		visit(u)
	}
}

// WalkSurrounding walks pattern relative to this tile on its board.
func (t *Tile) WalkSurrounding(pattern []Point, o Orientation, walker func(*Tile) bool) error {
	return t.board.WalkTiles(t, pattern, o, walker)
}

// DrawAt draws the terrain, then the ground unit, then the air unit.
func (t *Tile) DrawAt(s Surface, x, y, width, height float64, tint color.RGBA) {
	s.Draw(DrawCommand{
		Image:  TerrainImage(t.Terrain),
		X:      x,
		Y:      y,
		Z:      ZMap,
		Width:  width,
		Height: height,
		Tint:   tint,
	})
	t.EachUnit(func(u *Unit) bool {
		u.Draw(s, x, y, width, height)
		return true
	})
}

func (t *Tile) slot(d Domain) UnitID {
	if d == DomainAir {
		return t.air
	}
	return t.ground
}

// assign puts u in its domain slot. An occupied slot is a broken invariant.
func (t *Tile) assign(u *Unit) {
	if d := u.Domain(); t.slot(d) != NoUnit {
		panic(fmt.Sprintf("tile %d: %s slot already holds unit %d, cannot assign %s",
			t.index, d, t.slot(d), u))
	}
	if u.AirUnit() {
		t.air = u.id
	} else {
		t.ground = u.id
	}
	u.tile = t.index
}

func (t *Tile) clear(u *Unit) {
	if u.AirUnit() {
		if t.air == u.id {
			t.air = NoUnit
		}
		return
	}
	if t.ground == u.id {
		t.ground = NoUnit
	}
}
