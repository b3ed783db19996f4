package core

import (
	"fmt"
	"image/color"
	"strings"
)

// UnitKind selects a row of the unit table.
type UnitKind int

const (
	Infantry UnitKind = iota
	Tank
	Artillery
	Bomber
)

// UnitKinds lists every kind in table order.
var UnitKinds = []UnitKind{Infantry, Tank, Artillery, Bomber}

// Allegiance is the side a unit fights for. It never changes after creation.
type Allegiance int

const (
	Friendly Allegiance = iota
	Enemy
)

func (a Allegiance) String() string {
	if a == Enemy {
		return "enemy"
	}
	return "friendly"
}

// ParseAllegiance converts "friendly" or "enemy" back to an Allegiance.
func ParseAllegiance(s string) (Allegiance, error) {
	switch strings.ToLower(s) {
	case "friendly":
		return Friendly, nil
	case "enemy":
		return Enemy, nil
	default:
		return Friendly, fmt.Errorf("unknown allegiance %q", s)
	}
}

// Domain is the tile slot a unit occupies.
type Domain int

const (
	DomainGround Domain = iota
	DomainAir
)

func (d Domain) String() string {
	if d == DomainAir {
		return "air"
	}
	return "ground"
}

// UnitState is the lifecycle state of a unit.
type UnitState int

const (
	UnitIdle UnitState = iota
	UnitFiring
	UnitDead
)

func (s UnitState) String() string {
	switch s {
	case UnitIdle:
		return "idle"
	case UnitFiring:
		return "firing"
	case UnitDead:
		return "dead"
	default:
		return fmt.Sprintf("UnitState(%d)", int(s))
	}
}

// UnitSpec is the constant data shared by every unit of a kind.
type UnitSpec struct {
	Name        string
	Domain      Domain
	HitsGround  bool
	HitsAir     bool
	FirePattern []Point
	MovePattern []Point
	PlaceCost   int
	MoveCost    int
	Tint        color.RGBA
}

var unitSpecs = [...]UnitSpec{
	Infantry: {
		Name:        "Infantry",
		Domain:      DomainGround,
		HitsGround:  true,
		FirePattern: []Point{{0, 1}},
		MovePattern: []Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}},
		PlaceCost:   10,
		MoveCost:    10,
		Tint:        color.RGBA{255, 255, 255, 255},
	},
	Tank: {
		Name:        "Tank",
		Domain:      DomainGround,
		HitsGround:  true,
		FirePattern: []Point{{-1, 1}, {0, 1}, {1, 1}},
		MovePattern: []Point{{0, 1}, {0, 2}},
		PlaceCost:   20,
		MoveCost:    20,
		Tint:        color.RGBA{255, 0, 0, 255},
	},
	Artillery: {
		Name:        "Artillery",
		Domain:      DomainGround,
		HitsGround:  true,
		FirePattern: []Point{{0, 2}, {0, 3}},
		MovePattern: []Point{{0, 1}, {1, 0}, {-1, 0}},
		PlaceCost:   20,
		MoveCost:    40,
		Tint:        color.RGBA{0, 255, 0, 255},
	},
	Bomber: {
		Name:        "Bomber",
		Domain:      DomainAir,
		HitsGround:  true,
		FirePattern: []Point{{0, 0}},
		MovePattern: []Point{{0, 1}, {0, 2}, {0, 3}, {0, 4}},
		Tint:        color.RGBA{0, 0, 255, 255},
	},
}

// Spec returns the table entry for k. It panics on an unknown kind.
func (k UnitKind) Spec() UnitSpec {
	if k < 0 || int(k) >= len(unitSpecs) {
		panic(fmt.Sprintf("unknown unit kind %d", int(k)))
	}
	return unitSpecs[k]
}

func (k UnitKind) String() string {
	if k < 0 || int(k) >= len(unitSpecs) {
		return fmt.Sprintf("UnitKind(%d)", int(k))
	}
	return unitSpecs[k].Name
}

// ParseUnitKind converts a kind name (case-insensitive) back to a UnitKind.
func ParseUnitKind(s string) (UnitKind, error) {
	for _, k := range UnitKinds {
		if strings.EqualFold(k.String(), s) {
			return k, nil
		}
	}
	return Infantry, fmt.Errorf("unknown unit kind %q", s)
}

// UnitID is the arena handle of a unit. Zero means no unit.
type UnitID uint32

// NoUnit is the empty slot handle.
const NoUnit UnitID = 0

// Unit is a single combatant. Its tile is referenced by board index; the board
// arena owns it and tiles refer to it by UnitID.
type Unit struct {
	id         UnitID
	kind       UnitKind
	allegiance Allegiance
	state      UnitState
	tile       int
	frameDelay int
	anim       Animation
	removed    bool
}

// NewUnit creates an idle, unplaced unit.
func NewUnit(kind UnitKind, allegiance Allegiance) *Unit {
	_ = kind.Spec()
	u := &Unit{
		kind:       kind,
		allegiance: allegiance,
		tile:       -1,
		frameDelay: DefaultFrameDelay,
	}
	u.setState(UnitIdle)
	return u
}

func (u *Unit) ID() UnitID             { return u.id }
func (u *Unit) Kind() UnitKind         { return u.kind }
func (u *Unit) Spec() UnitSpec         { return u.kind.Spec() }
func (u *Unit) Allegiance() Allegiance { return u.allegiance }
func (u *Unit) State() UnitState       { return u.state }
func (u *Unit) Friendly() bool         { return u.allegiance == Friendly }
func (u *Unit) Enemy() bool            { return u.allegiance == Enemy }
func (u *Unit) Domain() Domain         { return u.Spec().Domain }
func (u *Unit) GroundUnit() bool       { return u.Domain() == DomainGround }
func (u *Unit) AirUnit() bool          { return u.Domain() == DomainAir }
func (u *Unit) HitsGround() bool       { return u.Spec().HitsGround }
func (u *Unit) HitsAir() bool          { return u.Spec().HitsAir }
func (u *Unit) FirePattern() []Point   { return u.Spec().FirePattern }
func (u *Unit) MovePattern() []Point   { return u.Spec().MovePattern }
func (u *Unit) PlaceCost() int         { return u.Spec().PlaceCost }
func (u *Unit) MoveCost() int          { return u.Spec().MoveCost }
func (u *Unit) IsAlive() bool          { return u.state != UnitDead }
func (u *Unit) IsDead() bool           { return u.state == UnitDead }

// Placed reports whether the unit currently occupies a tile.
func (u *Unit) Placed() bool { return u.tile >= 0 }

// TileIndex is the board index of the unit's tile, or -1 when unplaced.
func (u *Unit) TileIndex() int { return u.tile }

// Removed reports whether the unit finished dying and left the board.
func (u *Unit) Removed() bool { return u.removed }

// Frame is the sprite sheet frame to draw.
func (u *Unit) Frame() int { return u.anim.Frame() }

// Facing is the orientation applied to the unit's patterns.
func (u *Unit) Facing() Orientation {
	if u.Enemy() {
		return Down
	}
	return Up
}

func (u *Unit) String() string {
	if u.Enemy() {
		return "Enemy " + u.kind.String()
	}
	return "Friendly " + u.kind.String()
}

func (u *Unit) setState(s UnitState) {
	u.state = s
	switch s {
	case UnitDead:
		u.anim = NewAnimation(ClipDead, u.frameDelay)
	case UnitFiring:
		u.anim = NewAnimation(ClipFire, u.frameDelay)
	default:
		u.anim = NewAnimation(ClipIdle, u.frameDelay)
	}
}

// Damage kills the unit. The unit stays on its tile until Update plays out the
// death animation. Damaging a dead unit does nothing.
func (u *Unit) Damage() {
	if u.state == UnitDead {
		return
	}
	u.setState(UnitDead)
}

// Update advances the unit's animation by elapsed milliseconds. A firing unit
// returns to idle when its fire clip ends; a dead unit is unlinked from b when
// its death clip ends.
func (u *Unit) Update(b *Board, elapsed int) {
	if u.removed {
		return
	}
	u.anim.Next(elapsed)
	switch {
	case u.state == UnitDead && u.anim.LastFrame():
		b.unlink(u)
	case u.state == UnitFiring && u.anim.LastFrame():
		u.setState(UnitIdle)
	}
}

// Draw renders the unit's current frame at the given position.
func (u *Unit) Draw(s Surface, x, y, width, height float64) {
	s.Draw(DrawCommand{
		Image:  ImageUnit,
		Frame:  u.Frame(),
		X:      x,
		Y:      y,
		Z:      ZUnit,
		Width:  width,
		Height: height,
		Tint:   u.Spec().Tint,
	})
}
