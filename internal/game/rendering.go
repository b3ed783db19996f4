package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// ANSI color codes
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorBlue  = "\033[34m"
	ColorGray  = "\033[90m"
)

const (
	GroundSymbol   = '.'
	MountainSymbol = '^'
	WreckSymbol    = 'x'
	unitSymbols    = "ITAB"
)

// UnitSymbol is the letter for a unit: upper case for friendly units, lower
// case for enemies, WreckSymbol for the dead.
func UnitSymbol(u *core.Unit) byte {
	if u.IsDead() {
		return WreckSymbol
	}
	c := unitSymbols[int(u.Kind())%len(unitSymbols)]
	if u.Enemy() {
		c += 'a' - 'A'
	}
	return c
}

// TerrainSymbol is the character used for terrain in text dumps and level files.
func TerrainSymbol(t core.Terrain) byte {
	if t == core.TerrainMountain {
		return MountainSymbol
	}
	return GroundSymbol
}

// RenderBoard draws the visible rows as text, top row first. Air units are
// shown over ground units. Rows beyond the frontline are marked with '>'.
func RenderBoard(b *core.Board, color bool) string {
	cols, rows := b.Columns(), b.VisibleRows()

	var sb strings.Builder
	sb.Grow((cols*2+4)*(rows+2) + 64)

	sb.WriteString("   ")
	for x := 0; x < cols; x++ {
		fmt.Fprintf(&sb, "%2d", x%100)
	}
	sb.WriteString("\n")

	for y := rows - 1; y >= 0; y-- {
		marker := ' '
		if b.EnemyTerritory(core.Point{X: 0, Y: y}) {
			marker = '>'
		}
		fmt.Fprintf(&sb, "%2d%c", y, marker)
		for x := 0; x < cols; x++ {
			tile, err := b.Tile(core.Point{X: x, Y: y})
			if err != nil {
				sb.WriteString(" ?")
				continue
			}
			writeTile(&sb, tile, color)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "base row %d, frontline %d, units %d\n", b.BaseRow(), b.Frontline(), b.UnitCount())
	return sb.String()
}

func writeTile(sb *strings.Builder, t *core.Tile, color bool) {
	u := t.AirUnit()
	if u == nil {
		u = t.GroundUnit()
	}

	sb.WriteByte(' ')
	switch {
	case u != nil:
		if color {
			if u.Enemy() {
				sb.WriteString(ColorRed)
			} else {
				sb.WriteString(ColorBlue)
			}
		}
		sb.WriteByte(UnitSymbol(u))
	case t.Terrain == core.TerrainMountain:
		if color {
			sb.WriteString(ColorGray)
		}
		sb.WriteByte(MountainSymbol)
	default:
		sb.WriteByte(GroundSymbol)
		return
	}
	if color {
		sb.WriteString(ColorReset)
	}
}

// Render draws the session's board as text.
func (p *Play) Render(color bool) string {
	return RenderBoard(p.board, color)
}
