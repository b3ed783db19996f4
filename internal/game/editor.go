package game

import (
	"errors"
	"fmt"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
	"github.com/mitchelldurbincs/frontline/internal/game/states"
	"github.com/mitchelldurbincs/frontline/internal/level"
)

var ErrNotEditing = errors.New("editor is not open")

func (p *Play) checkEditing() error {
	if phase := p.Phase(); phase != states.PhaseEditing {
		return fmt.Errorf("%w: %s", ErrNotEditing, phase)
	}
	return nil
}

// CycleTerrain switches the tile at a view coordinate to the next terrain
// type and returns the new terrain.
func (p *Play) CycleTerrain(at core.Point) (core.Terrain, error) {
	if err := p.checkEditing(); err != nil {
		return core.TerrainGround, err
	}
	tile, err := p.board.Tile(at)
	if err != nil {
		return core.TerrainGround, err
	}
	tile.Terrain = tile.Terrain.Next()
	p.logger.Debug().
		Str("at", at.String()).
		Str("terrain", tile.Terrain.String()).
		Msg("Terrain edited")
	return tile.Terrain, nil
}

// EditAt cycles the terrain under a window position.
func (p *Play) EditAt(pos core.Point) (core.Terrain, error) {
	return p.CycleTerrain(p.board.MousePosToTileCoords(pos))
}

// ScrollView moves the view by delta rows while editing. The view stays on
// instantiated rows; a step past either end is ignored. Reports whether the
// view moved.
func (p *Play) ScrollView(delta int) bool {
	if p.checkEditing() != nil {
		return false
	}
	if err := p.board.SetBaseRow(p.board.BaseRow() + delta); err != nil {
		return false
	}
	return true
}

// SaveLevel writes the board to path.
func (p *Play) SaveLevel(path string) error {
	if err := p.checkEditing(); err != nil {
		return err
	}
	if err := level.SaveBoard(path, p.board); err != nil {
		return err
	}
	p.eventBus.Publish(events.NewLevelSavedEvent(p.gameID, path))
	return nil
}
