package mapgen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/rs/zerolog"
)

// NoSpawn is the spawn table entry for "leave the tile empty".
const NoSpawn core.UnitKind = -1

// Config controls row generation.
type Config struct {
	TerrainWeights map[core.Terrain]int
	SpawnWeights   map[core.UnitKind]int
	// Rows below SafeRows never spawn enemies.
	SafeRows int
}

// DefaultConfig returns mostly open ground with sparse enemy spawns beyond the
// starting frontline.
func DefaultConfig() Config {
	return Config{
		TerrainWeights: map[core.Terrain]int{
			core.TerrainGround:   95,
			core.TerrainMountain: 5,
		},
		SpawnWeights: map[core.UnitKind]int{
			NoSpawn:        92,
			core.Infantry:  4,
			core.Tank:      2,
			core.Artillery: 1,
			core.Bomber:    1,
		},
		SafeRows: 16,
	}
}

// ParseTerrainWeights converts a name-keyed weight table, as found in config
// files, to terrain keys.
func ParseTerrainWeights(named map[string]int) (map[core.Terrain]int, error) {
	weights := make(map[core.Terrain]int, len(named))
	for name, w := range named {
		t, err := core.ParseTerrain(strings.ToLower(name))
		if err != nil {
			return nil, err
		}
		weights[t] = w
	}
	return weights, nil
}

// ParseSpawnWeights converts a name-keyed spawn table to unit kinds. The name
// "none" maps to NoSpawn.
func ParseSpawnWeights(named map[string]int) (map[core.UnitKind]int, error) {
	weights := make(map[core.UnitKind]int, len(named))
	for name, w := range named {
		if strings.EqualFold(name, "none") {
			weights[NoSpawn] = w
			continue
		}
		k, err := core.ParseUnitKind(name)
		if err != nil {
			return nil, err
		}
		weights[k] = w
	}
	return weights, nil
}

// Generator fills new board rows with terrain and enemy units. It implements
// core.RowPopulator.
type Generator struct {
	config  Config
	rng     *rand.Rand
	terrain *WeightedSelector[core.Terrain]
	spawns  *WeightedSelector[core.UnitKind]
	logger  zerolog.Logger
}

// NewGenerator creates a row generator drawing from rng.
func NewGenerator(config Config, rng *rand.Rand, logger zerolog.Logger) (*Generator, error) {
	terrain, err := NewWeightedSelector(config.TerrainWeights, rng)
	if err != nil {
		return nil, fmt.Errorf("terrain weights: %w", err)
	}
	spawns, err := NewWeightedSelector(config.SpawnWeights, rng)
	if err != nil {
		return nil, fmt.Errorf("spawn weights: %w", err)
	}
	return &Generator{
		config:  config,
		rng:     rng,
		terrain: terrain,
		spawns:  spawns,
		logger:  logger.With().Str("component", "Generator").Logger(),
	}, nil
}

// PopulateRow samples terrain for every tile of row, then, beyond the safe
// rows, samples one spawn per tile. Air units only spawn over mountains and
// ground units only on open ground; any other draw leaves the tile empty.
func (g *Generator) PopulateRow(b *core.Board, row int) {
	for col := 0; col < b.Columns(); col++ {
		tile, err := b.AbsoluteTile(core.Point{X: col, Y: row})
		if err != nil {
			g.logger.Error().Err(err).Int("row", row).Msg("Row not on board")
			return
		}
		tile.Terrain = g.terrain.Sample()
	}
	if row < g.config.SafeRows {
		return
	}

	for col := 0; col < b.Columns(); col++ {
		kind := g.spawns.Sample()
		if kind == NoSpawn {
			continue
		}
		tile, _ := b.AbsoluteTile(core.Point{X: col, Y: row})
		spec := kind.Spec()
		mountain := tile.Terrain == core.TerrainMountain
		if (spec.Domain == core.DomainAir) != mountain {
			continue
		}
		if err := b.AddUnitAbsolute(core.NewUnit(kind, core.Enemy), core.Point{X: col, Y: row}); err != nil {
			g.logger.Error().Err(err).Int("row", row).Int("col", col).Msg("Failed to spawn enemy")
			continue
		}
		g.logger.Debug().
			Str("kind", kind.String()).
			Int("row", row).
			Int("col", col).
			Msg("Enemy spawned")
	}
}
