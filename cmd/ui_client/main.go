package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/frontline/internal/config"
	"github.com/mitchelldurbincs/frontline/internal/game"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
	"github.com/mitchelldurbincs/frontline/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/frontline/internal/level"
	"github.com/mitchelldurbincs/frontline/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay (loads config.<env>.yaml)")
	levelPath := flag.String("level", "", "Start from a saved level file")
	seed := flag.Int64("seed", 0, "Generation seed (0 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	logger := setupLogging(*logLevel, cfg.Logging.Format)

	if *seed == 0 {
		*seed = game.Seed()
	}

	generation, err := game.GenerationConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid generation config")
	}
	tuning, err := game.PlayTuning()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid play config")
	}

	bus := events.NewEventBus(logger)
	eventLogger := subscribers.NewLoggerSubscriber("ui_client", logger, zerolog.InfoLevel)
	eventLogger.SetDevMode(cfg.Development.VerboseLogging)
	bus.Subscribe(eventLogger)

	play, err := game.NewPlay(game.GameConfig{
		Board:      game.BoardConfig(cfg.UI.Window.Width, cfg.UI.Window.Height),
		Generation: generation,
		Tuning:     tuning,
		Seed:       *seed,
		Logger:     logger,
		EventBus:   bus,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to start session")
	}

	if *levelPath != "" {
		lvl, err := level.Load(*levelPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *levelPath).Msg("Failed to load level")
		}
		board, err := level.Restore(lvl, play.Board().Config(), play.RowPopulator(), logger)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *levelPath).Msg("Failed to restore level")
		}
		if err := play.LoadBoard(board); err != nil {
			logger.Fatal().Err(err).Msg("Level does not fit the window config")
		}
	}

	config.WatchConfig(func() {
		if t, err := game.PlayTuning(); err == nil {
			play.ApplyTuning(t)
		} else {
			logger.Warn().Err(err).Msg("Ignoring reloaded play config")
		}
		if g, err := game.GenerationConfig(); err == nil {
			if err := play.ApplyGeneration(g); err != nil {
				logger.Warn().Err(err).Msg("Ignoring reloaded generation config")
			}
		}
	})

	uiGame := ui.NewUIGame(play, ui.Options{
		Width:           cfg.UI.Window.Width,
		Height:          cfg.UI.Window.Height,
		LevelFile:       cfg.UI.LevelFile,
		ShowCoordinates: cfg.Development.ShowCoordinates,
	}, logger)

	ebiten.SetWindowSize(cfg.UI.Window.Width, cfg.UI.Window.Height)
	ebiten.SetWindowTitle(cfg.UI.Window.Title)

	if err := ebiten.RunGame(uiGame); err != nil {
		logger.Fatal().Err(err).Msg("Game loop failed")
	}
}

func setupLogging(level, format string) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
	return log.Logger
}
