package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
	"github.com/mitchelldurbincs/frontline/internal/game/mapgen"
	"github.com/mitchelldurbincs/frontline/internal/game/states"
	"github.com/rs/zerolog"
)

// GameConfig holds everything needed to start a Play session. Zero values
// fall back to the defaults.
type GameConfig struct {
	Board      core.Config
	Generation mapgen.Config
	Tuning     Tuning
	Seed       int64
	Rng        *rand.Rand
	GameID     string
	Logger     zerolog.Logger
	EventBus   events.Bus
	Populator  core.RowPopulator
}

// Play is one session: the board, the AP pool and the player's input.
type Play struct {
	board     *core.Board
	boardCfg  core.Config
	populator core.RowPopulator
	rng       *rand.Rand
	seed      int64

	ap        float64
	tuning    Tuning
	selected  core.UnitKind
	mouseDown *core.Point

	gameID       string
	eventBus     events.Bus
	stateMachine *states.StateMachine
	logger       zerolog.Logger
	rootLogger   zerolog.Logger

	// Reloaded config arrives off the frame loop and is applied on the next Update.
	mu               sync.Mutex
	pendingTuning    *Tuning
	pendingGenerator core.RowPopulator
}

// NewPlay creates a session with a freshly generated board.
func NewPlay(cfg GameConfig) (*Play, error) {
	return newPlayInitializer(cfg).initialize()
}

func (p *Play) Board() *core.Board           { return p.board }
func (p *Play) GameID() string               { return p.gameID }
func (p *Play) EventBus() events.Bus         { return p.eventBus }
func (p *Play) Selected() core.UnitKind      { return p.selected }
func (p *Play) Tuning() Tuning               { return p.tuning }
func (p *Play) Phase() states.GamePhase      { return p.stateMachine.CurrentPhase() }
func (p *Play) Context() *states.GameContext { return p.stateMachine.GetContext() }
func (p *Play) Seed() int64                  { return p.seed }

// RowPopulator is the generator used for rows appended to the board.
func (p *Play) RowPopulator() core.RowPopulator { return p.populator }

// AP is the whole number of action points available.
func (p *Play) AP() int { return int(p.ap) }

// HUD is the status line drawn over the board.
func (p *Play) HUD() string {
	return fmt.Sprintf("AP: %d", p.AP())
}

// Select chooses the unit kind placed by the next click.
func (p *Play) Select(kind core.UnitKind) {
	p.selected = kind
	p.logger.Debug().Str("unit", kind.String()).Msg("Unit kind selected")
}

// ApplyTuning swaps the AP economy. It is safe to call from any goroutine;
// the change takes effect on the next Update.
func (p *Play) ApplyTuning(t Tuning) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pendingTuning = &t
}

// ApplyGeneration swaps the generator for rows appended from now on. It is
// safe to call from any goroutine.
func (p *Play) ApplyGeneration(cfg mapgen.Config) error {
	gen, err := mapgen.NewGenerator(cfg, p.rng, p.rootLogger)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pendingGenerator = gen
	return nil
}

func (p *Play) applyPending() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pendingTuning != nil {
		p.tuning = *p.pendingTuning
		p.ap = min(p.ap, float64(p.tuning.MaxAP))
		p.pendingTuning = nil
		p.logger.Info().
			Int("max_ap", p.tuning.MaxAP).
			Float64("ap_regen_per_second", p.tuning.APRegenPerSecond).
			Msg("Play tuning applied")
	}
	if p.pendingGenerator != nil {
		p.populator = p.pendingGenerator
		p.board.SetRowPopulator(p.populator)
		p.pendingGenerator = nil
		p.logger.Info().Msg("Row generator replaced")
	}
}

// Update advances the session by elapsed milliseconds. Nothing moves unless
// the session is playing.
func (p *Play) Update(elapsed int) {
	p.applyPending()
	if !p.Phase().CanSimulate() {
		return
	}
	p.gainAP(p.tuning.APRegenPerSecond * float64(elapsed) / 1000)
	p.handleTick(p.board.Update(elapsed))
}

func (p *Play) gainAP(amount float64) {
	p.ap = min(p.ap+amount, float64(p.tuning.MaxAP))
}

func (p *Play) handleTick(res core.TickResult) {
	ctx := p.Context()
	if res.Progressed {
		p.eventBus.Publish(events.NewBoardProgressedEvent(p.gameID, p.board.BaseRow(), res.Migrated))
	}
	for _, shot := range res.Shots {
		p.eventBus.Publish(events.NewUnitFiredEvent(p.gameID, shot))
		if shot.Attacker.Friendly() && shot.Target.Enemy() {
			ctx.Kills++
			p.gainAP(float64(p.tuning.KillBonus))
		}
	}
	for _, u := range res.Removed {
		p.eventBus.Publish(events.NewUnitRemovedEvent(p.gameID, u))
	}
	for _, u := range res.ScrolledOut {
		if u.Enemy() && u.IsAlive() {
			p.breach(u)
			continue
		}
		if u.Friendly() {
			p.eventBus.Publish(events.NewUnitLostEvent(p.gameID, u))
		}
	}
	if res.Scrolled {
		ctx.RowsAdvanced++
		p.eventBus.Publish(events.NewBoardScrolledEvent(p.gameID, p.board.BaseRow(), p.board.Rows(), len(res.Shots)))
	}
	if p.board.Frontline() < 0 {
		p.endRound()
	}
}

// breach pushes the frontline back after a living enemy leaves the bottom of
// the view.
func (p *Play) breach(u *core.Unit) {
	p.eventBus.Publish(events.NewEnemyBreachedEvent(p.gameID, u))
	from := p.board.Frontline()
	to := from - p.tuning.BreachFrontlineStep
	p.board.SetFrontline(to)
	p.eventBus.Publish(events.NewFrontlineMovedEvent(p.gameID, from, to))
	p.logger.Info().
		Str("unit", u.String()).
		Int("frontline", to).
		Msg("Enemy broke through")
}

func (p *Play) endRound() {
	if err := p.stateMachine.TransitionTo(states.PhaseOver, "frontline overrun"); err != nil {
		p.logger.Error().Err(err).Msg("Failed to end round")
		return
	}
	ctx := p.Context()
	p.eventBus.Publish(events.NewGameEndedEvent(p.gameID, ctx.RowsAdvanced, ctx.Kills, ctx.GetElapsedTime()))
	p.logger.Info().
		Int("rows_advanced", ctx.RowsAdvanced).
		Int("kills", ctx.Kills).
		Msg("Round over")
}

// MouseDown records the tile under the cursor as the start of a click or drag.
func (p *Play) MouseDown(pos core.Point) {
	if !p.Phase().CanSimulate() {
		return
	}
	at := p.board.MousePosToTileCoords(pos)
	p.mouseDown = &at
}

// MouseUp completes a click (same tile: place the selected kind) or a drag
// (different tile: move the friendly unit). Rejections are returned and
// published.
func (p *Play) MouseUp(pos core.Point) error {
	down := p.mouseDown
	p.mouseDown = nil
	if down == nil || !p.Phase().CanSimulate() {
		return nil
	}
	up := p.board.MousePosToTileCoords(pos)
	if up == *down {
		return p.Place(p.selected, up)
	}
	return p.Move(*down, up)
}

// Place buys a friendly unit of kind at a view coordinate.
func (p *Play) Place(kind core.UnitKind, at core.Point) error {
	action := PlaceAction{Unit: kind, At: at}
	if err := p.checkPlaying(); err != nil {
		return p.reject(action.Type(), at, err)
	}
	if err := action.Validate(p.board, p.AP()); err != nil {
		return p.reject(action.Type(), at, err)
	}
	u := core.NewUnit(kind, core.Friendly)
	if err := p.board.AddUnit(u, at); err != nil {
		return p.reject(action.Type(), at, err)
	}
	p.ap -= float64(action.Cost())
	p.eventBus.Publish(events.NewUnitPlacedEvent(p.gameID, u, at, action.Cost()))
	return nil
}

// Move drags the friendly unit at from to another view coordinate.
func (p *Play) Move(from, to core.Point) error {
	action := MoveAction{From: from, To: to}
	if err := p.checkPlaying(); err != nil {
		return p.reject(action.Type(), from, err)
	}
	u, err := action.Validate(p.board, p.AP())
	if err != nil {
		return p.reject(action.Type(), from, err)
	}
	if err := p.board.MoveUnit(u, to); err != nil {
		return p.reject(action.Type(), from, err)
	}
	p.ap -= float64(u.MoveCost())
	p.eventBus.Publish(events.NewUnitMovedEvent(p.gameID, u, from, to, u.MoveCost()))
	return nil
}

func (p *Play) checkPlaying() error {
	if phase := p.Phase(); !phase.CanSimulate() {
		return fmt.Errorf("%w: %s", ErrNotPlaying, phase)
	}
	return nil
}

func (p *Play) reject(t ActionType, at core.Point, err error) error {
	p.eventBus.Publish(events.NewActionRejectedEvent(p.gameID, t.String(), at, err))
	return err
}

// TogglePause switches between playing and paused.
func (p *Play) TogglePause() error {
	return p.toggle(states.PhasePaused, "pause toggled")
}

// ToggleEditor switches between playing and the level editor.
func (p *Play) ToggleEditor() error {
	return p.toggle(states.PhaseEditing, "editor toggled")
}

func (p *Play) toggle(suspended states.GamePhase, reason string) error {
	p.mouseDown = nil
	switch p.Phase() {
	case states.PhasePlaying:
		return p.stateMachine.TransitionTo(suspended, reason)
	case suspended:
		if err := p.stateMachine.TransitionTo(states.PhasePlaying, reason); err != nil {
			return err
		}
		// the editor may leave the view on the last saved row
		p.board.EnsureRows(p.board.BaseRow() + p.board.VisibleRows() + 1)
		return nil
	default:
		return fmt.Errorf("%w: cannot toggle %s from %s", states.ErrInvalidTransition, suspended, p.Phase())
	}
}

// Restart starts a new round on a freshly generated board after a game over.
func (p *Play) Restart() error {
	if p.Phase() != states.PhaseOver {
		return fmt.Errorf("%w: restart requires %s", states.ErrInvalidTransition, states.PhaseOver)
	}
	board, err := core.NewBoard(p.boardCfg, p.populator, p.rootLogger)
	if err != nil {
		return fmt.Errorf("rebuilding board: %w", err)
	}
	if err := p.stateMachine.TransitionTo(states.PhasePlaying, "restart"); err != nil {
		return err
	}
	p.board = board
	p.ap = float64(p.tuning.StartAP)
	p.mouseDown = nil
	p.eventBus.Publish(events.NewGameStartedEvent(p.gameID, p.boardCfg.Columns, p.boardCfg.VisibleRows, p.seed))
	return nil
}

// LoadBoard replaces the session's board, e.g. with a restored level. The
// board must match the session's dimensions.
func (p *Play) LoadBoard(b *core.Board) error {
	if b == nil {
		return errors.New("nil board")
	}
	cfg := b.Config()
	if cfg.Columns != p.boardCfg.Columns || cfg.VisibleRows != p.boardCfg.VisibleRows {
		return fmt.Errorf("%w: board is %dx%d, session is %dx%d", core.ErrInvalidConfig,
			cfg.Columns, cfg.VisibleRows, p.boardCfg.Columns, p.boardCfg.VisibleRows)
	}
	p.board = b
	p.mouseDown = nil
	p.logger.Info().
		Int("base_row", b.BaseRow()).
		Int("rows", b.Rows()).
		Int("units", b.UnitCount()).
		Msg("Board loaded")
	return nil
}

// Draw renders the board.
func (p *Play) Draw(s core.Surface) {
	p.board.Draw(s)
}
