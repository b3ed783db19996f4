package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides session information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this session
	GameID string

	Logger zerolog.Logger

	// StartTime is when the current round started
	StartTime time.Time

	// PauseTime is when the session was last suspended (paused or editing)
	PauseTime time.Time

	// TotalPauseDuration tracks total time spent suspended this round
	TotalPauseDuration time.Duration

	// EndTime is set when the round is over
	EndTime time.Time

	// RowsAdvanced and Kills are the round's score
	RowsAdvanced int
	Kills        int

	// Now is the clock used for all timestamps
	Now func() time.Time
}

// NewGameContext creates a new session context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID: gameID,
		Logger: logger.With().Str("game_id", gameID).Logger(),
		Now:    time.Now,
	}
}

// GetElapsedTime returns unsuspended time since the round started
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	end := gc.Now()
	if !gc.EndTime.IsZero() {
		end = gc.EndTime
	}
	return end.Sub(gc.StartTime) - gc.TotalPauseDuration
}

// resetRound clears the score and timers for a fresh round.
func (gc *GameContext) resetRound() {
	gc.StartTime = gc.Now()
	gc.PauseTime = time.Time{}
	gc.TotalPauseDuration = 0
	gc.EndTime = time.Time{}
	gc.RowsAdvanced = 0
	gc.Kills = 0
}
