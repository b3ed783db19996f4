package game

import (
	"fmt"

	"github.com/mitchelldurbincs/frontline/internal/config"
	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/mapgen"
)

// Tuning is the live-adjustable part of a session: the AP economy and how
// hard breaches push the frontline back.
type Tuning struct {
	MaxAP               int
	StartAP             int
	APRegenPerSecond    float64
	KillBonus           int
	DefaultUnit         core.UnitKind
	BreachFrontlineStep int
}

// DefaultTuning matches the shipped configuration defaults.
func DefaultTuning() Tuning {
	return Tuning{
		MaxAP:               100,
		StartAP:             50,
		APRegenPerSecond:    5,
		KillBonus:           5,
		DefaultUnit:         core.Infantry,
		BreachFrontlineStep: 1,
	}
}

// BoardConfig builds the board config from the loaded configuration, sizing
// tiles to fill a width x height window.
func BoardConfig(width, height int) core.Config {
	b := config.Get().Board
	return core.Config{
		Columns:        b.Columns,
		VisibleRows:    b.VisibleRows,
		ProgressTime:   b.ProgressTime,
		TransitionTime: b.TransitionTime,
		FrontlineStart: b.FrontlineStart,
		TileWidth:      max(1, width/b.Columns),
		TileHeight:     max(1, height/b.VisibleRows),
		FrameDelay:     b.FrameDelay,
	}
}

// GenerationConfig converts the name-keyed weight tables from the loaded
// configuration.
func GenerationConfig() (mapgen.Config, error) {
	g := config.Get().Generation
	terrain, err := mapgen.ParseTerrainWeights(g.TerrainWeights)
	if err != nil {
		return mapgen.Config{}, fmt.Errorf("generation.terrain_weights: %w", err)
	}
	spawns, err := mapgen.ParseSpawnWeights(g.SpawnWeights)
	if err != nil {
		return mapgen.Config{}, fmt.Errorf("generation.spawn_weights: %w", err)
	}
	return mapgen.Config{
		TerrainWeights: terrain,
		SpawnWeights:   spawns,
		SafeRows:       g.SafeRows,
	}, nil
}

// Seed is the configured generation seed; 0 means pick one at startup.
func Seed() int64 {
	return config.Get().Generation.Seed
}

// PlayTuning reads the play section of the loaded configuration.
func PlayTuning() (Tuning, error) {
	p := config.Get().Play
	unit, err := core.ParseUnitKind(p.DefaultUnit)
	if err != nil {
		return Tuning{}, fmt.Errorf("play.default_unit: %w", err)
	}
	return Tuning{
		MaxAP:               p.MaxAP,
		StartAP:             p.StartAP,
		APRegenPerSecond:    p.APRegenPerSecond,
		KillBonus:           p.KillBonus,
		DefaultUnit:         unit,
		BreachFrontlineStep: p.BreachFrontlineStep,
	}, nil
}

func LevelFile() string {
	return config.Get().UI.LevelFile
}

func ShowCoordinates() bool {
	return config.Get().Development.ShowCoordinates
}
