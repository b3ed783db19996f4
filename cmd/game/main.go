package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/frontline/internal/config"
	"github.com/mitchelldurbincs/frontline/internal/game"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
	"github.com/mitchelldurbincs/frontline/internal/game/states"
)

// frameMillis is one simulated frame at 60 ticks per second.
const frameMillis = 1000 / 60

func main() {
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Int64("seed", 0, "Generation seed (0 for a random seed)")
	scrolls := flag.Int("scrolls", 30, "Number of board scrolls to simulate")
	placements := flag.Int("placements", 3, "Random placements attempted after each scroll")
	color := flag.Bool("color", true, "Use ANSI colors in the board dump")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	logLevel, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if *seed == 0 {
		*seed = game.Seed()
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	fmt.Printf("Game seed: %d\n", *seed)

	generation, err := game.GenerationConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid generation config")
	}
	tuning, err := game.PlayTuning()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid play config")
	}

	rng := rand.New(rand.NewSource(*seed))
	bus := events.NewEventBus(logger)
	scrolled := 0
	bus.SubscribeFunc(events.TypeBoardScrolled, func(events.Event) { scrolled++ })

	play, err := game.NewPlay(game.GameConfig{
		Board:      game.BoardConfig(cfg.UI.Window.Width, cfg.UI.Window.Height),
		Generation: generation,
		Tuning:     tuning,
		Seed:       *seed,
		Rng:        rng,
		Logger:     logger,
		EventBus:   bus,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to start session")
	}

	fmt.Printf("Initial board:\n%s\n", play.Render(*color))

	// the demo's own choices use a separate stream so the map stays reproducible
	actionRng := rand.New(rand.NewSource(*seed + 1))
	for scrolled < *scrolls && play.Phase() != states.PhaseOver {
		before := scrolled
		play.Update(frameMillis)
		if scrolled == before {
			continue
		}

		for _, a := range game.GenerateRandomPlacements(play, actionRng, *placements) {
			if err := play.Place(a.Unit, a.At); err != nil {
				logger.Debug().Err(err).Msg("Placement rejected")
			}
		}
		fmt.Printf("Scroll %d (%s):\n%s\n", scrolled, play.HUD(), play.Render(*color))
	}

	ctx := play.Context()
	if play.Phase() == states.PhaseOver {
		fmt.Printf("Frontline overrun after %d rows, %d kills.\n", ctx.RowsAdvanced, ctx.Kills)
	} else {
		fmt.Printf("Held the line for %d rows, %d kills.\n", ctx.RowsAdvanced, ctx.Kills)
	}
}
