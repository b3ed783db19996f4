package events

import (
	"time"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeUnitPlaced      = "unit.placed"
	TypeUnitMoved       = "unit.moved"
	TypeUnitFired       = "unit.fired"
	TypeUnitRemoved     = "unit.removed"
	TypeUnitLost        = "unit.lost"
	TypeActionRejected  = "action.rejected"
	TypeBoardProgressed = "board.progressed"
	TypeBoardScrolled   = "board.scrolled"
	TypeEnemyBreached   = "enemy.breached"
	TypeFrontlineMoved  = "frontline.moved"
	TypeLevelSaved      = "level.saved"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published when a new session begins
type GameStartedEvent struct {
	BaseEvent
	Columns     int
	VisibleRows int
	Seed        int64
}

func NewGameStartedEvent(gameID string, columns, visibleRows int, seed int64) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:   newBase(TypeGameStarted, gameID),
		Columns:     columns,
		VisibleRows: visibleRows,
		Seed:        seed,
	}
}

// GameEndedEvent is published when the frontline is pushed off the board
type GameEndedEvent struct {
	BaseEvent
	RowsAdvanced int
	Kills        int
	Duration     time.Duration
}

func NewGameEndedEvent(gameID string, rowsAdvanced, kills int, duration time.Duration) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent:    newBase(TypeGameEnded, gameID),
		RowsAdvanced: rowsAdvanced,
		Kills:        kills,
		Duration:     duration,
	}
}

// UnitPlacedEvent is published when the player buys a unit
type UnitPlacedEvent struct {
	BaseEvent
	UnitID core.UnitID
	Kind   core.UnitKind
	At     core.Point
	Cost   int
}

func NewUnitPlacedEvent(gameID string, u *core.Unit, at core.Point, cost int) *UnitPlacedEvent {
	return &UnitPlacedEvent{
		BaseEvent: newBase(TypeUnitPlaced, gameID),
		UnitID:    u.ID(),
		Kind:      u.Kind(),
		At:        at,
		Cost:      cost,
	}
}

// UnitMovedEvent is published when the player drags a unit to a new tile
type UnitMovedEvent struct {
	BaseEvent
	UnitID   core.UnitID
	Kind     core.UnitKind
	From, To core.Point
	Cost     int
}

func NewUnitMovedEvent(gameID string, u *core.Unit, from, to core.Point, cost int) *UnitMovedEvent {
	return &UnitMovedEvent{
		BaseEvent: newBase(TypeUnitMoved, gameID),
		UnitID:    u.ID(),
		Kind:      u.Kind(),
		From:      from,
		To:        to,
		Cost:      cost,
	}
}

// UnitFiredEvent is published for every shot resolved after a scroll
type UnitFiredEvent struct {
	BaseEvent
	AttackerID         core.UnitID
	AttackerKind       core.UnitKind
	AttackerAllegiance core.Allegiance
	TargetID           core.UnitID
	TargetKind         core.UnitKind
	From, To           core.Point
}

func NewUnitFiredEvent(gameID string, shot core.Shot) *UnitFiredEvent {
	return &UnitFiredEvent{
		BaseEvent:          newBase(TypeUnitFired, gameID),
		AttackerID:         shot.Attacker.ID(),
		AttackerKind:       shot.Attacker.Kind(),
		AttackerAllegiance: shot.Attacker.Allegiance(),
		TargetID:           shot.Target.ID(),
		TargetKind:         shot.Target.Kind(),
		From:               shot.From,
		To:                 shot.To,
	}
}

// UnitRemovedEvent is published when a dead unit finishes its death animation
type UnitRemovedEvent struct {
	BaseEvent
	UnitID     core.UnitID
	Kind       core.UnitKind
	Allegiance core.Allegiance
}

func NewUnitRemovedEvent(gameID string, u *core.Unit) *UnitRemovedEvent {
	return &UnitRemovedEvent{
		BaseEvent:  newBase(TypeUnitRemoved, gameID),
		UnitID:     u.ID(),
		Kind:       u.Kind(),
		Allegiance: u.Allegiance(),
	}
}

// UnitLostEvent is published when a friendly unit scrolls out below the view
type UnitLostEvent struct {
	BaseEvent
	UnitID core.UnitID
	Kind   core.UnitKind
}

func NewUnitLostEvent(gameID string, u *core.Unit) *UnitLostEvent {
	return &UnitLostEvent{
		BaseEvent: newBase(TypeUnitLost, gameID),
		UnitID:    u.ID(),
		Kind:      u.Kind(),
	}
}

// ActionRejectedEvent is published when a place or move request fails validation
type ActionRejectedEvent struct {
	BaseEvent
	Action string
	At     core.Point
	Reason string
}

func NewActionRejectedEvent(gameID, action string, at core.Point, err error) *ActionRejectedEvent {
	return &ActionRejectedEvent{
		BaseEvent: newBase(TypeActionRejected, gameID),
		Action:    action,
		At:        at,
		Reason:    err.Error(),
	}
}

// BoardProgressedEvent is published when a scroll transition starts
type BoardProgressedEvent struct {
	BaseEvent
	BaseRow  int
	Migrated int
}

func NewBoardProgressedEvent(gameID string, baseRow, migrated int) *BoardProgressedEvent {
	return &BoardProgressedEvent{
		BaseEvent: newBase(TypeBoardProgressed, gameID),
		BaseRow:   baseRow,
		Migrated:  migrated,
	}
}

// BoardScrolledEvent is published when a scroll transition completes
type BoardScrolledEvent struct {
	BaseEvent
	BaseRow int
	Rows    int
	Shots   int
}

func NewBoardScrolledEvent(gameID string, baseRow, rows, shots int) *BoardScrolledEvent {
	return &BoardScrolledEvent{
		BaseEvent: newBase(TypeBoardScrolled, gameID),
		BaseRow:   baseRow,
		Rows:      rows,
		Shots:     shots,
	}
}

// EnemyBreachedEvent is published when an enemy unit scrolls out below the view
type EnemyBreachedEvent struct {
	BaseEvent
	UnitID core.UnitID
	Kind   core.UnitKind
}

func NewEnemyBreachedEvent(gameID string, u *core.Unit) *EnemyBreachedEvent {
	return &EnemyBreachedEvent{
		BaseEvent: newBase(TypeEnemyBreached, gameID),
		UnitID:    u.ID(),
		Kind:      u.Kind(),
	}
}

// FrontlineMovedEvent is published when breaches push the frontline back
type FrontlineMovedEvent struct {
	BaseEvent
	From, To int
}

func NewFrontlineMovedEvent(gameID string, from, to int) *FrontlineMovedEvent {
	return &FrontlineMovedEvent{
		BaseEvent: newBase(TypeFrontlineMoved, gameID),
		From:      from,
		To:        to,
	}
}

// LevelSavedEvent is published when the editor writes a level file
type LevelSavedEvent struct {
	BaseEvent
	Path string
}

func NewLevelSavedEvent(gameID, path string) *LevelSavedEvent {
	return &LevelSavedEvent{
		BaseEvent: newBase(TypeLevelSaved, gameID),
		Path:      path,
	}
}

// StateTransitionEvent is published when the session state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
