package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchelldurbincs/frontline/internal/config"
	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	require.NoError(t, config.Init(path))
}

func TestConfigAccessors(t *testing.T) {
	initConfig(t, `
board:
  columns: 10
  visible_rows: 12
generation:
  seed: 5
  terrain_weights:
    mountain: 0
  spawn_weights:
    bomber: 7
play:
  start_ap: 30
  default_unit: artillery
`)

	b := BoardConfig(600, 600)
	assert.Equal(t, 10, b.Columns)
	assert.Equal(t, 12, b.VisibleRows)
	assert.Equal(t, 60, b.TileWidth)
	assert.Equal(t, 50, b.TileHeight)
	assert.NoError(t, b.Validate())

	g, err := GenerationConfig()
	require.NoError(t, err)
	assert.Equal(t, 0, g.TerrainWeights[core.TerrainMountain])
	assert.Equal(t, 95, g.TerrainWeights[core.TerrainGround])
	assert.Equal(t, 7, g.SpawnWeights[core.Bomber])
	assert.Equal(t, int64(5), Seed())

	tuning, err := PlayTuning()
	require.NoError(t, err)
	assert.Equal(t, 30, tuning.StartAP)
	assert.Equal(t, 100, tuning.MaxAP)
	assert.Equal(t, core.Artillery, tuning.DefaultUnit)

	assert.Equal(t, "level.yaml", LevelFile())
	assert.False(t, ShowCoordinates())
}

func TestPlayTuningUnknownUnit(t *testing.T) {
	initConfig(t, "logging:\n  level: info\n")
	config.Set("play.default_unit", "zeppelin")

	_, err := PlayTuning()
	assert.Error(t, err)
}

func TestDefaultTuningMatchesConfig(t *testing.T) {
	initConfig(t, "logging:\n  level: info\n")

	tuning, err := PlayTuning()
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tuning)
}
