package testutil

import (
	"testing"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/stretchr/testify/require"
)

// UnitPlacement describes a unit to put on a test board, in view coordinates.
type UnitPlacement struct {
	Kind       core.UnitKind
	Allegiance core.Allegiance
	At         core.Point
}

// BoardConfig returns the default board config with frame delays disabled so
// every Update advances animations by one frame.
func BoardConfig() core.Config {
	cfg := core.DefaultConfig()
	cfg.FrameDelay = 0
	return cfg
}

// CreateTestBoard creates an all-ground board with no row generator.
func CreateTestBoard(t *testing.T) *core.Board {
	t.Helper()
	b, err := core.NewBoard(BoardConfig(), nil, NopLogger())
	require.NoError(t, err)
	return b
}

// CreateTestBoardWithUnits creates a test board and places the given units.
func CreateTestBoardWithUnits(t *testing.T, units ...UnitPlacement) (*core.Board, []*core.Unit) {
	t.Helper()
	b := CreateTestBoard(t)
	placed := make([]*core.Unit, len(units))
	for i, p := range units {
		u := core.NewUnit(p.Kind, p.Allegiance)
		require.NoError(t, b.AddUnit(u, p.At))
		placed[i] = u
	}
	return b, placed
}

// SetMountains turns the given view tiles into mountains.
func SetMountains(t *testing.T, b *core.Board, coords ...core.Point) {
	t.Helper()
	for _, c := range coords {
		tile, err := b.Tile(c)
		require.NoError(t, err)
		tile.Terrain = core.TerrainMountain
	}
}
