package game

import (
	"path/filepath"
	"testing"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
	"github.com/mitchelldurbincs/frontline/internal/level"
	"github.com/mitchelldurbincs/frontline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorRequiresEditing(t *testing.T) {
	p, _ := newTestPlay(t)

	_, err := p.CycleTerrain(core.Point{X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrNotEditing)
	assert.False(t, p.ScrollView(1))
	assert.ErrorIs(t, p.SaveLevel(filepath.Join(t.TempDir(), "l.yaml")), ErrNotEditing)
}

func TestCycleTerrain(t *testing.T) {
	p, _ := newTestPlay(t)
	require.NoError(t, p.ToggleEditor())

	terrain, err := p.EditAt(pixel(4, 6))
	require.NoError(t, err)
	assert.Equal(t, core.TerrainMountain, terrain)

	tile, err := p.Board().Tile(core.Point{X: 4, Y: 6})
	require.NoError(t, err)
	assert.Equal(t, core.TerrainMountain, tile.Terrain)

	terrain, err = p.CycleTerrain(core.Point{X: 4, Y: 6})
	require.NoError(t, err)
	assert.Equal(t, core.TerrainGround, terrain)

	_, err = p.CycleTerrain(core.Point{X: 4, Y: 20})
	assert.ErrorIs(t, err, core.ErrInvalidCoordinates)
}

func TestScrollView(t *testing.T) {
	p, _ := newTestPlay(t)
	require.NoError(t, p.ToggleEditor())

	assert.False(t, p.ScrollView(-1), "already at the bottom")
	assert.True(t, p.ScrollView(1))
	assert.Equal(t, 1, p.Board().BaseRow())
	assert.False(t, p.ScrollView(1), "no rows above the look-ahead row")

	require.NoError(t, p.ToggleEditor())
	assert.Equal(t, 22, p.Board().Rows(), "look-ahead row restored on leaving the editor")

	require.NoError(t, p.ToggleEditor())
	assert.True(t, p.ScrollView(-1))
	assert.Equal(t, 0, p.Board().BaseRow())
}

func TestSaveLevel(t *testing.T) {
	p, _ := newTestPlay(t)
	log := recordEvents(p.EventBus(), events.TypeLevelSaved)
	require.NoError(t, p.Place(core.Tank, core.Point{X: 1, Y: 1}))
	require.NoError(t, p.ToggleEditor())
	_, err := p.CycleTerrain(core.Point{X: 0, Y: 0})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "level.yaml")
	require.NoError(t, p.SaveLevel(path))
	assert.Equal(t, 1, log.count(events.TypeLevelSaved))

	lvl, err := level.Load(path)
	require.NoError(t, err)
	b, err := level.Restore(lvl, p.Board().Config(), plainRows{}, testutil.NopLogger())
	require.NoError(t, err)
	require.NoError(t, p.LoadBoard(b))

	tile, err := p.Board().Tile(core.Point{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, core.TerrainMountain, tile.Terrain)
	u, err := p.Board().FriendlyUnit(core.Point{X: 1, Y: 1})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, core.Tank, u.Kind())
}

func TestScrollViewSkippedRowsStillBreach(t *testing.T) {
	p, log := newTestPlay(t, noRegen)
	enemy := core.NewUnit(core.Tank, core.Enemy)
	require.NoError(t, p.Board().AddUnit(enemy, core.Point{X: 3, Y: 0}))

	require.NoError(t, p.ToggleEditor())
	require.True(t, p.ScrollView(1))
	require.NoError(t, p.ToggleEditor())

	scroll(p)

	assert.Equal(t, 2, p.Board().BaseRow())
	assert.True(t, enemy.Removed())
	assert.Equal(t, 0, p.Board().UnitCount())
	assert.Equal(t, 1, log.count(events.TypeEnemyBreached))
	assert.Equal(t, 14, p.Board().Frontline())
}
