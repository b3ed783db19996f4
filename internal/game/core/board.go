package core

import (
	"fmt"

	"github.com/mitchelldurbincs/frontline/internal/common"
	"github.com/rs/zerolog"
)

// Config holds the board dimensions and timings. Times are in milliseconds.
type Config struct {
	Columns        int
	VisibleRows    int
	ProgressTime   int // time between board progressions
	TransitionTime int // time taken to scroll the board one row
	FrontlineStart int
	TileWidth      int
	TileHeight     int
	FrameDelay     int
}

// DefaultConfig returns the standard 20x20 board on a 600x600 window.
func DefaultConfig() Config {
	return Config{
		Columns:        20,
		VisibleRows:    20,
		ProgressTime:   5000,
		TransitionTime: 500,
		FrontlineStart: 15,
		TileWidth:      30,
		TileHeight:     30,
		FrameDelay:     DefaultFrameDelay,
	}
}

// Validate checks the config can build a board.
func (c Config) Validate() error {
	switch {
	case c.Columns <= 0:
		return fmt.Errorf("%w: columns must be positive", ErrInvalidConfig)
	case c.VisibleRows <= 0:
		return fmt.Errorf("%w: visible rows must be positive", ErrInvalidConfig)
	case c.ProgressTime <= 0 || c.TransitionTime <= 0:
		return fmt.Errorf("%w: progress and transition times must be positive", ErrInvalidConfig)
	case c.TileWidth <= 0 || c.TileHeight <= 0:
		return fmt.Errorf("%w: tile size must be positive", ErrInvalidConfig)
	case c.FrameDelay < 0:
		return fmt.Errorf("%w: frame delay must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// RowPopulator fills in a freshly appended row: terrain and any spawned units.
type RowPopulator interface {
	PopulateRow(b *Board, row int)
}

// ScrollState is the board's progression state.
type ScrollState int

const (
	ScrollDefault ScrollState = iota
	ScrollScrolling
)

func (s ScrollState) String() string {
	if s == ScrollScrolling {
		return "scrolling"
	}
	return "default"
}

// Board is the scrolling grid of tiles. Tiles are stored in rows from the
// bottom of the screen to the top, left to right within a row:
//
//	  |C0 C1 C2
//	--|--------
//	R2|
//	R1|
//	R0|
//
//	[ (C0, R0), (C1, R0), (C2, R0), (C0, R1) ... ]
//
// Rows are only ever appended. baseRow is the row shown at the bottom of the
// window; one extra row above the window is kept for the scroll transition.
type Board struct {
	cfg       Config
	tiles     []*Tile
	units     map[UnitID]*Unit
	nextID    UnitID
	baseRow   int
	frontline int
	cleared   int // rows below this have had their units dropped

	status         ScrollState
	progressTime   int
	transitionTime int
	drawOffset     float64

	populator RowPopulator
	logger    zerolog.Logger
	pending   TickResult
}

// NewBoard builds the visible rows plus the look-ahead row, handing each new
// row to populator. A nil populator leaves plain ground.
func NewBoard(cfg Config, populator RowPopulator, logger zerolog.Logger) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		cfg:       cfg,
		tiles:     make([]*Tile, 0, (cfg.VisibleRows+1)*cfg.Columns),
		units:     make(map[UnitID]*Unit),
		frontline: cfg.FrontlineStart,
		populator: populator,
		logger:    logger.With().Str("component", "Board").Logger(),
	}
	b.EnsureRows(cfg.VisibleRows + 1)
	return b, nil
}

func (b *Board) Config() Config         { return b.cfg }
func (b *Board) Columns() int           { return b.cfg.Columns }
func (b *Board) VisibleRows() int       { return b.cfg.VisibleRows }
func (b *Board) Rows() int              { return len(b.tiles) / b.cfg.Columns }
func (b *Board) BaseRow() int           { return b.baseRow }
func (b *Board) Frontline() int         { return b.frontline }
func (b *Board) SetFrontline(row int)   { b.frontline = row }
func (b *Board) Status() ScrollState    { return b.status }
func (b *Board) DrawOffset() float64    { return b.drawOffset }
func (b *Board) ProgressElapsed() int   { return b.progressTime }
func (b *Board) TransitionElapsed() int { return b.transitionTime }
func (b *Board) UnitCount() int         { return len(b.units) }

// SetRowPopulator replaces the generator used for rows appended from now on.
func (b *Board) SetRowPopulator(p RowPopulator) {
	b.populator = p
}

// Unit resolves a handle. It returns nil for NoUnit or a removed unit.
func (b *Board) Unit(id UnitID) *Unit {
	if id == NoUnit {
		return nil
	}
	return b.units[id]
}

// EnsureRows appends populated rows until the board has at least n rows.
func (b *Board) EnsureRows(n int) {
	for b.Rows() < n {
		b.appendRow()
	}
}

func (b *Board) appendRow() {
	row := b.Rows()
	for col := 0; col < b.cfg.Columns; col++ {
		b.tiles = append(b.tiles, &Tile{index: len(b.tiles), board: b})
	}
	if b.populator != nil {
		b.populator.PopulateRow(b, row)
	}
}

// SetBaseRow scrolls the view directly to row. The view must stay within the
// instantiated rows. Units on rows skipped past are dropped by the next scroll.
func (b *Board) SetBaseRow(row int) error {
	if row < 0 || row+b.cfg.VisibleRows > b.Rows() {
		return fmt.Errorf("%w: %d (rows %d)", ErrInvalidBaseRow, row, b.Rows())
	}
	b.baseRow = row
	return nil
}

// InView reports whether coord addresses a tile in the visible window.
func (b *Board) InView(coord Point) bool {
	return common.IsValidCoordinate(coord.X, coord.Y, b.cfg.Columns, b.cfg.VisibleRows)
}

func (b *Board) index(coord Point) int {
	return (b.baseRow+coord.Y)*b.cfg.Columns + coord.X
}

// ViewCoords converts a tile index to view-relative coordinates.
func (b *Board) ViewCoords(idx int) Point {
	return Point{X: idx % b.cfg.Columns, Y: idx/b.cfg.Columns - b.baseRow}
}

// Tile returns the tile at a view-relative coordinate.
func (b *Board) Tile(coord Point) (*Tile, error) {
	if !b.InView(coord) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCoordinates, coord)
	}
	return b.tiles[b.index(coord)], nil
}

// AbsoluteTile returns the tile at column p.X of absolute row p.Y.
func (b *Board) AbsoluteTile(p Point) (*Tile, error) {
	if p.X < 0 || p.X >= b.cfg.Columns || p.Y < 0 || p.Y >= b.Rows() {
		return nil, fmt.Errorf("%w: absolute %s", ErrInvalidCoordinates, p)
	}
	return b.tiles[p.Y*b.cfg.Columns+p.X], nil
}

// TileAt returns the tile with board index idx.
func (b *Board) TileAt(idx int) (*Tile, error) {
	if idx < 0 || idx >= len(b.tiles) {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidTile, idx)
	}
	return b.tiles[idx], nil
}

// MousePosToTileCoords maps a window pixel to view coordinates. Screen Y grows
// downwards while board rows grow upwards.
func (b *Board) MousePosToTileCoords(pos Point) Point {
	return Point{
		X: common.FloorDiv(pos.X, b.cfg.TileWidth),
		Y: b.cfg.VisibleRows - 1 - common.FloorDiv(pos.Y, b.cfg.TileHeight),
	}
}

// EnemyTerritory reports whether coord lies beyond the frontline.
func (b *Board) EnemyTerritory(coord Point) bool {
	return coord.Y > b.frontline
}

// AddUnit places u on the tile at coord in the slot matching its domain. The
// caller checks the slot is free and pays any cost.
func (b *Board) AddUnit(u *Unit, coord Point) error {
	t, err := b.Tile(coord)
	if err != nil {
		return err
	}
	return b.place(u, t)
}

// AddUnitAbsolute places u at column p.X of absolute row p.Y.
func (b *Board) AddUnitAbsolute(u *Unit, p Point) error {
	t, err := b.AbsoluteTile(p)
	if err != nil {
		return err
	}
	return b.place(u, t)
}

func (b *Board) place(u *Unit, t *Tile) error {
	if u.Placed() || u.removed {
		return fmt.Errorf("%w: %s", ErrUnitAlreadyPlaced, u)
	}
	b.nextID++
	u.id = b.nextID
	u.frameDelay = b.cfg.FrameDelay
	u.setState(u.state)
	t.assign(u)
	b.units[u.id] = u
	b.logger.Debug().
		Uint32("unit_id", uint32(u.id)).
		Str("unit", u.String()).
		Int("tile", t.index).
		Msg("Unit added")
	return nil
}

// MoveLegal reports whether u may move to coord: the destination slot for the
// unit's domain must be free. The move pattern is not consulted.
func (b *Board) MoveLegal(u *Unit, to Point) bool {
	t, err := b.Tile(to)
	if err != nil {
		return false
	}
	return t.slot(u.Domain()) == NoUnit
}

// MoveUnit moves u from its tile to the tile at coord.
func (b *Board) MoveUnit(u *Unit, to Point) error {
	if !u.Placed() {
		return fmt.Errorf("%w: %s", ErrUnitNotPlaced, u)
	}
	dest, err := b.Tile(to)
	if err != nil {
		return err
	}
	b.relocate(u, dest)
	return nil
}

func (b *Board) relocate(u *Unit, dest *Tile) {
	b.tiles[u.tile].clear(u)
	dest.assign(u)
}

// FriendlyUnit returns the friendly unit at coord, preferring the air unit.
// Enemy units are never returned.
func (b *Board) FriendlyUnit(coord Point) (*Unit, error) {
	t, err := b.Tile(coord)
	if err != nil {
		return nil, err
	}
	if u := t.AirUnit(); u != nil && u.Friendly() {
		return u, nil
	}
	if u := t.GroundUnit(); u != nil && u.Friendly() {
		return u, nil
	}
	return nil, nil
}

// Units returns every unit on the loaded rows in tile order, ground before air.
func (b *Board) Units() []*Unit {
	units := make([]*Unit, 0, len(b.units))
	b.eachLoadedUnit(func(u *Unit) {
		units = append(units, u)
	})
	return units
}

func (b *Board) loadedStart() int {
	return b.baseRow * b.cfg.Columns
}

func (b *Board) eachLoadedUnit(visit func(*Unit)) {
	for idx := b.loadedStart(); idx < len(b.tiles); idx++ {
		b.tiles[idx].EachUnit(func(u *Unit) bool {
			visit(u)
			return true
		})
	}
}

// unlink removes u from its tile and from the arena.
func (b *Board) unlink(u *Unit) {
	if u.Placed() {
		b.tiles[u.tile].clear(u)
	}
	delete(b.units, u.id)
	u.tile = -1
	u.removed = true
	b.pending.Removed = append(b.pending.Removed, u)
	b.logger.Debug().
		Uint32("unit_id", uint32(u.id)).
		Str("unit", u.String()).
		Msg("Unit removed from board")
}
