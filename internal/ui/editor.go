package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/frontline/internal/game"
	"github.com/mitchelldurbincs/frontline/internal/ui/input"
)

// Editor turns input into level edits while the session is in the editing
// phase: clicks cycle terrain, the wheel scrolls the view, S saves and C
// copies a text dump of the view.
type Editor struct {
	play      *game.Play
	levelFile string
	copyText  func(string) error
	logger    zerolog.Logger
}

func NewEditor(play *game.Play, levelFile string, logger zerolog.Logger) *Editor {
	return &Editor{
		play:      play,
		levelFile: levelFile,
		copyText:  clipboard.WriteAll,
		logger:    logger.With().Str("component", "Editor").Logger(),
	}
}

// Update applies one tick of input and returns a status message, if any.
func (e *Editor) Update(frame input.Frame) string {
	var status string

	if frame.LeftPressed {
		if terrain, err := e.play.EditAt(frame.Cursor); err == nil {
			status = "Tile set to " + terrain.String()
		}
	}

	switch {
	case frame.WheelY > 0:
		e.play.ScrollView(1)
	case frame.WheelY < 0:
		e.play.ScrollView(-1)
	}

	for _, cmd := range frame.Commands {
		switch cmd {
		case input.CommandSave:
			status = e.save()
		case input.CommandCopy:
			status = e.copy()
		}
	}
	return status
}

func (e *Editor) save() string {
	if err := e.play.SaveLevel(e.levelFile); err != nil {
		e.logger.Error().Err(err).Str("path", e.levelFile).Msg("Failed to save level")
		return "Save failed: " + err.Error()
	}
	e.logger.Info().Str("path", e.levelFile).Msg("Level saved")
	return fmt.Sprintf("Saved %s", e.levelFile)
}

func (e *Editor) copy() string {
	if err := e.copyText(e.play.Render(false)); err != nil {
		e.logger.Warn().Err(err).Msg("Clipboard unavailable")
		return "Copy failed: " + err.Error()
	}
	return "Board copied to clipboard"
}
