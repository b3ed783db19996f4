package states

import (
	"errors"
	"time"
)

// PlayingState represents active play
type PlayingState struct{}

func NewPlayingState() State {
	return &PlayingState{}
}

func (s *PlayingState) Phase() GamePhase {
	return PhasePlaying
}

func (s *PlayingState) Enter(ctx *GameContext) error {
	if ctx.StartTime.IsZero() || !ctx.EndTime.IsZero() {
		ctx.resetRound()
		ctx.Logger.Info().
			Time("start_time", ctx.StartTime).
			Msg("Round started")
	}
	return nil
}

func (s *PlayingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Leaving play")
	return nil
}

func (s *PlayingState) Validate(ctx *GameContext) error {
	return nil
}

// suspendedState is shared by the paused and editing phases: the session
// clock stops while either is active.
type suspendedState struct {
	phase GamePhase
}

// NewPausedState returns the state for PhasePaused
func NewPausedState() State {
	return &suspendedState{phase: PhasePaused}
}

// NewEditingState returns the state for PhaseEditing
func NewEditingState() State {
	return &suspendedState{phase: PhaseEditing}
}

func (s *suspendedState) Phase() GamePhase {
	return s.phase
}

func (s *suspendedState) Enter(ctx *GameContext) error {
	ctx.PauseTime = ctx.Now()
	ctx.Logger.Info().
		Str("phase", s.phase.String()).
		Time("pause_time", ctx.PauseTime).
		Msg("Session suspended")
	return nil
}

func (s *suspendedState) Exit(ctx *GameContext) error {
	if !ctx.PauseTime.IsZero() {
		pauseDuration := ctx.Now().Sub(ctx.PauseTime)
		ctx.TotalPauseDuration += pauseDuration
		ctx.PauseTime = time.Time{}
		ctx.Logger.Info().
			Str("phase", s.phase.String()).
			Dur("pause_duration", pauseDuration).
			Dur("total_pause_duration", ctx.TotalPauseDuration).
			Msg("Session resumed")
	}
	return nil
}

func (s *suspendedState) Validate(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		return errors.New("cannot suspend a session that hasn't started")
	}
	return nil
}

// OverState represents a lost round
type OverState struct{}

func NewOverState() State {
	return &OverState{}
}

func (s *OverState) Phase() GamePhase {
	return PhaseOver
}

func (s *OverState) Enter(ctx *GameContext) error {
	ctx.EndTime = ctx.Now()
	ctx.Logger.Info().
		Int("rows_advanced", ctx.RowsAdvanced).
		Int("kills", ctx.Kills).
		Dur("game_duration", ctx.GetElapsedTime()).
		Msg("Game over")
	return nil
}

func (s *OverState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Restarting after game over")
	return nil
}

func (s *OverState) Validate(ctx *GameContext) error {
	return nil
}
