package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
	"github.com/mitchelldurbincs/frontline/internal/game/mapgen"
	"github.com/mitchelldurbincs/frontline/internal/game/states"
	"github.com/rs/zerolog"
)

// playInitializer handles the setup of a new Play session
type playInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

func newPlayInitializer(cfg GameConfig) *playInitializer {
	return &playInitializer{
		config: cfg,
		logger: cfg.Logger.With().Str("component", "Play").Logger(),
	}
}

func (pi *playInitializer) initialize() (*Play, error) {
	pi.setupDefaults()

	populator, err := pi.rowPopulator()
	if err != nil {
		return nil, fmt.Errorf("row generator setup failed: %w", err)
	}

	board, err := core.NewBoard(pi.config.Board, populator, pi.config.Logger)
	if err != nil {
		return nil, fmt.Errorf("board creation failed: %w", err)
	}

	p := &Play{
		board:      board,
		boardCfg:   pi.config.Board,
		populator:  populator,
		rng:        pi.config.Rng,
		seed:       pi.config.Seed,
		ap:         float64(pi.config.Tuning.StartAP),
		tuning:     pi.config.Tuning,
		selected:   pi.config.Tuning.DefaultUnit,
		gameID:     pi.config.GameID,
		eventBus:   pi.config.EventBus,
		logger:     pi.logger,
		rootLogger: pi.config.Logger,
	}

	ctx := states.NewGameContext(p.gameID, pi.logger)
	p.stateMachine = states.NewStateMachine(ctx, p.eventBus)

	p.eventBus.Publish(events.NewGameStartedEvent(
		p.gameID,
		pi.config.Board.Columns,
		pi.config.Board.VisibleRows,
		pi.config.Seed,
	))

	pi.logger.Info().
		Str("game_id", p.gameID).
		Int("columns", pi.config.Board.Columns).
		Int("visible_rows", pi.config.Board.VisibleRows).
		Int64("seed", pi.config.Seed).
		Msg("Play session created successfully")

	return p, nil
}

// setupDefaults fills in missing configuration
func (pi *playInitializer) setupDefaults() {
	if pi.config.Board == (core.Config{}) {
		pi.config.Board = core.DefaultConfig()
	}
	if pi.config.Generation.TerrainWeights == nil && pi.config.Generation.SpawnWeights == nil {
		pi.config.Generation = mapgen.DefaultConfig()
	}
	if pi.config.Tuning == (Tuning{}) {
		pi.config.Tuning = DefaultTuning()
	}
	if pi.config.Rng == nil {
		if pi.config.Seed == 0 {
			pi.config.Seed = time.Now().UnixNano()
		}
		pi.logger.Debug().Int64("seed", pi.config.Seed).Msg("No RNG provided, creating seeded RNG")
		pi.config.Rng = rand.New(rand.NewSource(pi.config.Seed))
	}
	if pi.config.GameID == "" {
		pi.config.GameID = uuid.NewString()
	}
	if pi.config.EventBus == nil {
		pi.config.EventBus = events.NewEventBus(pi.config.Logger)
	}
}

func (pi *playInitializer) rowPopulator() (core.RowPopulator, error) {
	if pi.config.Populator != nil {
		return pi.config.Populator, nil
	}
	return mapgen.NewGenerator(pi.config.Generation, pi.config.Rng, pi.config.Logger)
}
