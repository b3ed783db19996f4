// Package level saves boards to versioned YAML files and restores them.
package level

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Version is the schema version written by Save.
const Version = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported level version")
	ErrMalformedLevel     = errors.New("malformed level")
	ErrDimensionMismatch  = errors.New("level dimensions do not match the board config")
)

const (
	groundSymbol   = '.'
	mountainSymbol = '^'
)

// Level is the on-disk form of a board. Terrain rows are listed bottom
// first, one character per column.
type Level struct {
	Version     int      `yaml:"version"`
	Columns     int      `yaml:"columns"`
	VisibleRows int      `yaml:"visible_rows"`
	BaseRow     int      `yaml:"base_row"`
	Frontline   int      `yaml:"frontline"`
	Terrain     []string `yaml:"terrain"`
	Units       []Unit   `yaml:"units,omitempty"`
}

// Unit places one unit at column Col of absolute row Row.
type Unit struct {
	Kind       string `yaml:"kind"`
	Allegiance string `yaml:"allegiance"`
	Col        int    `yaml:"col"`
	Row        int    `yaml:"row"`
}

// FromBoard captures every instantiated row of b. Dead units are not saved.
func FromBoard(b *core.Board) *Level {
	cols := b.Columns()
	lvl := &Level{
		Version:     Version,
		Columns:     cols,
		VisibleRows: b.VisibleRows(),
		BaseRow:     b.BaseRow(),
		Frontline:   b.Frontline(),
		Terrain:     make([]string, b.Rows()),
	}

	row := make([]byte, cols)
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < cols; x++ {
			tile, _ := b.AbsoluteTile(core.Point{X: x, Y: y})
			row[x] = groundSymbol
			if tile.Terrain == core.TerrainMountain {
				row[x] = mountainSymbol
			}
		}
		lvl.Terrain[y] = string(row)
	}

	for _, u := range b.Units() {
		if u.IsDead() {
			continue
		}
		lvl.Units = append(lvl.Units, Unit{
			Kind:       u.Kind().String(),
			Allegiance: u.Allegiance().String(),
			Col:        u.TileIndex() % cols,
			Row:        u.TileIndex() / cols,
		})
	}
	return lvl
}

// Validate checks the level can be restored.
func (l *Level) Validate() error {
	if l.Version != Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, l.Version)
	}
	if l.Columns <= 0 || l.VisibleRows <= 0 {
		return fmt.Errorf("%w: %dx%d board", ErrMalformedLevel, l.Columns, l.VisibleRows)
	}
	if l.BaseRow < 0 || l.BaseRow+l.VisibleRows > len(l.Terrain) {
		return fmt.Errorf("%w: base row %d with %d terrain rows", ErrMalformedLevel, l.BaseRow, len(l.Terrain))
	}
	for y, row := range l.Terrain {
		if len(row) != l.Columns {
			return fmt.Errorf("%w: terrain row %d has %d columns, want %d", ErrMalformedLevel, y, len(row), l.Columns)
		}
		for x := 0; x < len(row); x++ {
			if row[x] != groundSymbol && row[x] != mountainSymbol {
				return fmt.Errorf("%w: terrain row %d col %d: unknown symbol %q", ErrMalformedLevel, y, x, row[x])
			}
		}
	}
	for i, u := range l.Units {
		if _, err := core.ParseUnitKind(u.Kind); err != nil {
			return fmt.Errorf("%w: unit %d: %v", ErrMalformedLevel, i, err)
		}
		if _, err := core.ParseAllegiance(u.Allegiance); err != nil {
			return fmt.Errorf("%w: unit %d: %v", ErrMalformedLevel, i, err)
		}
		if u.Col < 0 || u.Col >= l.Columns || u.Row < 0 || u.Row >= len(l.Terrain) {
			return fmt.Errorf("%w: unit %d at (%d, %d) is off the board", ErrMalformedLevel, i, u.Col, u.Row)
		}
	}
	return nil
}

// Save writes the level to path as YAML.
func Save(path string, l *Level) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("encoding level: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing level %s: %w", path, err)
	}
	return nil
}

// SaveBoard captures b and writes it to path.
func SaveBoard(path string, b *core.Board) error {
	return Save(path, FromBoard(b))
}

// Load reads and validates a level file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML level.
func Parse(data []byte) (*Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLevel, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Restore builds a board from the level. cfg must have the level's columns
// and visible rows; its timings and tile size are kept. Rows appended after
// the saved ones, including the look-ahead row when the save has none, come
// from populator. Unit handles are reassigned.
func Restore(l *Level, cfg core.Config, populator core.RowPopulator, logger zerolog.Logger) (*core.Board, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if cfg.Columns != l.Columns || cfg.VisibleRows != l.VisibleRows {
		return nil, fmt.Errorf("%w: level is %dx%d, config is %dx%d", ErrDimensionMismatch,
			l.Columns, l.VisibleRows, cfg.Columns, cfg.VisibleRows)
	}

	b, err := core.NewBoard(cfg, nil, logger)
	if err != nil {
		return nil, err
	}
	b.EnsureRows(len(l.Terrain))

	for y, row := range l.Terrain {
		for x := 0; x < len(row); x++ {
			tile, err := b.AbsoluteTile(core.Point{X: x, Y: y})
			if err != nil {
				return nil, err
			}
			tile.Terrain = core.TerrainGround
			if row[x] == mountainSymbol {
				tile.Terrain = core.TerrainMountain
			}
		}
	}

	for i, lu := range l.Units {
		kind, _ := core.ParseUnitKind(lu.Kind)
		allegiance, _ := core.ParseAllegiance(lu.Allegiance)
		at := core.Point{X: lu.Col, Y: lu.Row}
		tile, err := b.AbsoluteTile(at)
		if err != nil {
			return nil, err
		}
		if !tile.EmptyFor(kind.Spec().Domain) {
			return nil, fmt.Errorf("%w: unit %d at %s: slot unavailable", ErrMalformedLevel, i, at)
		}
		if err := b.AddUnitAbsolute(core.NewUnit(kind, allegiance), at); err != nil {
			return nil, err
		}
	}

	if err := b.SetBaseRow(l.BaseRow); err != nil {
		return nil, err
	}
	b.SetFrontline(l.Frontline)
	b.SetRowPopulator(populator)
	b.EnsureRows(l.BaseRow + l.VisibleRows + 1)

	logger.Info().
		Int("rows", b.Rows()).
		Int("base_row", b.BaseRow()).
		Int("units", b.UnitCount()).
		Msg("Level restored")
	return b, nil
}
