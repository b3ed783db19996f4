package core

// Shot records one unit firing at another during combat resolution.
type Shot struct {
	Attacker *Unit
	Target   *Unit
	From, To Point // view coordinates after the scroll
}

// TickResult summarises what changed during one Update.
type TickResult struct {
	Progressed  bool
	Scrolled    bool
	Migrated    int
	Shots       []Shot
	Removed     []*Unit // finished their death animation
	ScrolledOut []*Unit // dropped off the bottom of the view
}

// Update advances the board by elapsed milliseconds: progression timers
// first, then every unit's animation.
func (b *Board) Update(elapsed int) TickResult {
	switch b.status {
	case ScrollDefault:
		b.progressTime += elapsed
		if b.progressTime > b.cfg.ProgressTime {
			b.Progress()
		}
	case ScrollScrolling:
		b.transitionTime += elapsed
		if b.transitionTime > b.cfg.TransitionTime {
			b.finishScroll()
		} else {
			b.drawOffset = float64(b.transitionTime) / float64(b.cfg.TransitionTime) * float64(b.cfg.TileHeight)
		}
	}

	b.eachLoadedUnit(func(u *Unit) {
		u.Update(b, elapsed)
	})

	result := b.pending
	b.pending = TickResult{}
	return result
}

// Progress starts a scroll and drives friendly ground units one row forward
// where the tile ahead is free. Tiles are visited from the highest index down
// so no unit moves twice. Returns the number of units moved.
func (b *Board) Progress() int {
	b.progressTime = 0
	b.transitionTime = 0
	b.status = ScrollScrolling

	cols := b.cfg.Columns
	moved := 0
	for idx := len(b.tiles) - 1; idx >= b.loadedStart(); idx-- {
		u := b.tiles[idx].GroundUnit()
		if u == nil || !u.Friendly() {
			continue
		}
		ahead := idx + cols
		if ahead >= len(b.tiles) || !b.tiles[ahead].GroundEmpty() {
			continue
		}
		b.relocate(u, b.tiles[ahead])
		moved++
	}

	b.pending.Progressed = true
	b.pending.Migrated += moved
	b.logger.Debug().
		Int("base_row", b.baseRow).
		Int("migrated", moved).
		Msg("Board progressing")
	return moved
}

// finishScroll completes the transition: the view moves up a row, a new row is
// generated above it, units below the view are dropped and combat resolves.
func (b *Board) finishScroll() {
	b.status = ScrollDefault
	b.transitionTime = 0
	b.drawOffset = 0
	b.baseRow++

	b.dropRowsBelow(b.baseRow)
	b.EnsureRows(b.baseRow + b.cfg.VisibleRows + 1)
	b.pending.Scrolled = true

	b.resolveCombat()
	b.logger.Debug().
		Int("base_row", b.baseRow).
		Int("rows", b.Rows()).
		Int("units", len(b.units)).
		Msg("Board scrolled")
}

// dropRowsBelow removes every unit on rows below row that have not been
// cleared yet, including rows the view jumped past with SetBaseRow.
func (b *Board) dropRowsBelow(row int) {
	for ; b.cleared < row; b.cleared++ {
		b.dropRow(b.cleared)
	}
}

func (b *Board) dropRow(row int) {
	cols := b.cfg.Columns
	for idx := row * cols; idx < (row+1)*cols; idx++ {
		b.tiles[idx].EachUnit(func(u *Unit) bool {
			b.tiles[idx].clear(u)
			delete(b.units, u.id)
			u.tile = -1
			u.removed = true
			b.pending.ScrolledOut = append(b.pending.ScrolledOut, u)
			return true
		})
	}
}

// resolveCombat runs every friendly unit on the loaded rows, in tile order,
// before any enemy unit runs. Units in the look-ahead row fire too, but
// targets are limited to the view.
func (b *Board) resolveCombat() {
	for _, side := range []Allegiance{Friendly, Enemy} {
		for idx := b.loadedStart(); idx < len(b.tiles); idx++ {
			b.tiles[idx].EachUnit(func(u *Unit) bool {
				if u.Allegiance() != side {
					return true
				}
				if target := u.Run(b); target != nil {
					b.pending.Shots = append(b.pending.Shots, Shot{
						Attacker: u,
						Target:   target,
						From:     b.ViewCoords(u.tile),
						To:       b.ViewCoords(target.tile),
					})
				}
				return true
			})
		}
	}
}

// Draw renders the visible rows and the look-ahead row, offset by the current
// scroll transition. Rows beyond the frontline are tinted.
func (b *Board) Draw(s Surface) {
	tw, th := b.cfg.TileWidth, b.cfg.TileHeight
	screenHeight := float64(b.cfg.VisibleRows * th)
	for row := 0; row <= b.cfg.VisibleRows; row++ {
		absRow := b.baseRow + row
		if absRow >= b.Rows() {
			break
		}
		tint := TintNone
		if row > b.frontline {
			tint = TintEnemyTerritory
		}
		for col := 0; col < b.cfg.Columns; col++ {
			b.tiles[absRow*b.cfg.Columns+col].DrawAt(s,
				float64(col*tw),
				screenHeight-float64((row+1)*th)+b.drawOffset,
				float64(tw), float64(th), tint)
		}
	}
}
