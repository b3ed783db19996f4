package game

import (
	"errors"
	"fmt"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

var (
	ErrInsufficientAP = errors.New("not enough AP")
	ErrEnemyTerritory = errors.New("cannot place units in enemy territory")
	ErrTileOccupied   = errors.New("tile is occupied")
	ErrNoFriendlyUnit = errors.New("no friendly unit on tile")
	ErrIllegalMove    = errors.New("illegal move")
	ErrNotPlaying     = errors.New("session is not playing")
)

// ActionType represents the type of action
type ActionType int

const (
	ActionTypePlace ActionType = iota
	ActionTypeMove
)

func (t ActionType) String() string {
	if t == ActionTypeMove {
		return "move"
	}
	return "place"
}

// PlaceAction buys a new friendly unit on an empty tile.
type PlaceAction struct {
	Unit core.UnitKind
	At   core.Point
}

func (a PlaceAction) Type() ActionType { return ActionTypePlace }
func (a PlaceAction) Cost() int        { return a.Unit.Spec().PlaceCost }

// Validate checks the placement against the board and the available AP.
func (a PlaceAction) Validate(b *core.Board, ap int) error {
	tile, err := b.Tile(a.At)
	if err != nil {
		return err
	}
	if b.EnemyTerritory(a.At) {
		return ErrEnemyTerritory
	}
	if !tile.EmptyFor(a.Unit.Spec().Domain) {
		return fmt.Errorf("%w: %s", ErrTileOccupied, a.At)
	}
	if ap < a.Cost() {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientAP, ap, a.Cost())
	}
	return nil
}

// MoveAction drags a friendly unit to another tile.
type MoveAction struct {
	From core.Point
	To   core.Point
}

func (a MoveAction) Type() ActionType { return ActionTypeMove }

// Validate resolves the unit being moved and checks the move. The move
// pattern is not consulted; any tile whose slot is free will do.
func (a MoveAction) Validate(b *core.Board, ap int) (*core.Unit, error) {
	u, err := b.FriendlyUnit(a.From)
	if err != nil {
		return nil, err
	}
	if u == nil || u.IsDead() {
		return nil, fmt.Errorf("%w: %s", ErrNoFriendlyUnit, a.From)
	}
	if !b.MoveLegal(u, a.To) {
		return nil, fmt.Errorf("%w: %s to %s", ErrIllegalMove, a.From, a.To)
	}
	dest, err := b.Tile(a.To)
	if err != nil {
		return nil, err
	}
	if !dest.EmptyFor(u.Domain()) {
		return nil, fmt.Errorf("%w: %s", ErrTileOccupied, a.To)
	}
	if ap < u.MoveCost() {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientAP, ap, u.MoveCost())
	}
	return u, nil
}
