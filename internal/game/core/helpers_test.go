package core

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.TileWidth = 30
	cfg.TileHeight = 28
	cfg.FrameDelay = 0
	return cfg
}

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(testConfig(), nil, zerolog.Nop())
	require.NoError(t, err)
	return b
}

func placeUnit(t *testing.T, b *Board, kind UnitKind, side Allegiance, at Point) *Unit {
	t.Helper()
	u := NewUnit(kind, side)
	require.NoError(t, b.AddUnit(u, at))
	return u
}

func setTerrain(t *testing.T, b *Board, at Point, terrain Terrain) {
	t.Helper()
	tile, err := b.Tile(at)
	require.NoError(t, err)
	tile.Terrain = terrain
}

// scrollOnce drives one full progress tick: progression, scroll, combat.
func scrollOnce(b *Board) TickResult {
	b.Progress()
	return b.Update(b.Config().TransitionTime + 1)
}

type recordingSurface struct {
	commands []DrawCommand
}

func (s *recordingSurface) Draw(cmd DrawCommand) {
	s.commands = append(s.commands, cmd)
}
