package core

// ViableTarget reports whether u may shoot at other: other must be alive, on
// the opposing side, and in a domain u can hit.
func (u *Unit) ViableTarget(other *Unit) bool {
	switch {
	case other == nil || other.IsDead():
		return false
	case other.Enemy() == u.Enemy():
		return false
	case other.GroundUnit() && !u.HitsGround():
		return false
	case other.AirUnit() && !u.HitsAir():
		return false
	default:
		return true
	}
}

// Run scans the unit's fire pattern, facing its allegiance's direction, and
// shoots the first viable target. Tiles are checked in pattern order, ground
// unit before air unit; a mountain ends the scan. Returns the unit shot, if any.
func (u *Unit) Run(b *Board) *Unit {
	if !u.Placed() || u.IsDead() {
		return nil
	}
	start := b.tiles[u.tile]

	var target *Unit
	err := start.WalkSurrounding(u.FirePattern(), u.Facing(), func(t *Tile) bool {
		// Can't shoot through mountains
		if t.Terrain == TerrainMountain {
			return false
		}
		t.EachUnit(func(candidate *Unit) bool {
			if u.ViableTarget(candidate) {
				target = candidate
				return false
			}
			return true
		})
		return target == nil
	})
	if err != nil {
		b.logger.Error().Err(err).Str("unit", u.String()).Msg("Fire pattern walk failed")
		return nil
	}
	if target == nil {
		return nil
	}

	u.setState(UnitFiring)
	target.Damage()
	return target
}

// WalkTiles visits the tiles at each offset of pattern, rotated to o, relative
// to start. Offsets that leave the visible window are skipped. The walker
// returns false to stop the walk.
func (b *Board) WalkTiles(start *Tile, pattern []Point, o Orientation, walker func(*Tile) bool) error {
	if start == nil || start.board != b {
		return ErrForeignTile
	}
	origin := b.ViewCoords(start.index)
	for _, offset := range RotatePattern(pattern, o) {
		coord := origin.Add(offset)
		if !b.InView(coord) {
			b.logger.Debug().
				Str("origin", origin.String()).
				Str("offset", offset.String()).
				Msg("Skipping walk step outside the board")
			continue
		}
		if !walker(b.tiles[b.index(coord)]) {
			return nil
		}
	}
	return nil
}
