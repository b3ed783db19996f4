package game

import (
	"testing"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
	"github.com/mitchelldurbincs/frontline/internal/game/mapgen"
	"github.com/mitchelldurbincs/frontline/internal/game/states"
	"github.com/mitchelldurbincs/frontline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainRows struct{}

func (plainRows) PopulateRow(*core.Board, int) {}

type eventLog struct {
	events []events.Event
}

func recordEvents(bus events.Bus, types ...string) *eventLog {
	l := &eventLog{}
	for _, typ := range types {
		bus.SubscribeFunc(typ, func(e events.Event) {
			l.events = append(l.events, e)
		})
	}
	return l
}

func (l *eventLog) count(typ string) int {
	n := 0
	for _, e := range l.events {
		if e.Type() == typ {
			n++
		}
	}
	return n
}

func testGameConfig(bus events.Bus) GameConfig {
	return GameConfig{
		Board:     testutil.BoardConfig(),
		Tuning:    DefaultTuning(),
		Seed:      42,
		Rng:       testutil.NewTestRNG(42),
		GameID:    "test-game",
		Logger:    testutil.NopLogger(),
		EventBus:  bus,
		Populator: plainRows{},
	}
}

func newTestPlay(t *testing.T, mutate ...func(*GameConfig)) (*Play, *eventLog) {
	t.Helper()
	bus := events.NewEventBus(testutil.NopLogger())
	log := recordEvents(bus,
		events.TypeGameStarted, events.TypeGameEnded,
		events.TypeUnitPlaced, events.TypeUnitMoved, events.TypeUnitFired,
		events.TypeUnitLost, events.TypeActionRejected,
		events.TypeBoardProgressed, events.TypeBoardScrolled,
		events.TypeEnemyBreached, events.TypeFrontlineMoved,
		events.TypeStateTransition,
	)
	cfg := testGameConfig(bus)
	for _, m := range mutate {
		m(&cfg)
	}
	p, err := NewPlay(cfg)
	require.NoError(t, err)
	return p, log
}

// pixel returns a window position inside view tile (x, y) on the 30px test board.
func pixel(x, y int) core.Point {
	return core.Point{X: x*30 + 5, Y: (19-y)*30 + 5}
}

func click(p *Play, at core.Point) error {
	p.MouseDown(pixel(at.X, at.Y))
	return p.MouseUp(pixel(at.X, at.Y))
}

func drag(p *Play, from, to core.Point) error {
	p.MouseDown(pixel(from.X, from.Y))
	return p.MouseUp(pixel(to.X, to.Y))
}

// scroll drives the board through one full progression.
func scroll(p *Play) {
	cfg := p.Board().Config()
	p.Update(cfg.ProgressTime + 1)
	p.Update(cfg.TransitionTime + 1)
}

func noRegen(cfg *GameConfig) {
	cfg.Tuning.APRegenPerSecond = 0
}

func TestNewPlay(t *testing.T) {
	p, log := newTestPlay(t)

	assert.Equal(t, 50, p.AP())
	assert.Equal(t, "AP: 50", p.HUD())
	assert.Equal(t, states.PhasePlaying, p.Phase())
	assert.Equal(t, core.Infantry, p.Selected())
	assert.Equal(t, "test-game", p.GameID())
	assert.Equal(t, 21, p.Board().Rows())
	assert.Equal(t, 1, log.count(events.TypeGameStarted))
}

func TestNewPlayDefaults(t *testing.T) {
	p, err := NewPlay(GameConfig{Logger: testutil.NopLogger(), Seed: 7})
	require.NoError(t, err)

	assert.NotEmpty(t, p.GameID())
	assert.Equal(t, int64(7), p.Seed())
	assert.Equal(t, core.DefaultConfig(), p.Board().Config())
	assert.Equal(t, DefaultTuning(), p.Tuning())
	assert.IsType(t, &mapgen.Generator{}, p.RowPopulator())
}

func TestNewPlayInvalidBoard(t *testing.T) {
	_, err := NewPlay(GameConfig{
		Board:  core.Config{Columns: -1},
		Logger: testutil.NopLogger(),
	})
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestClickPlacesSelectedUnit(t *testing.T) {
	p, log := newTestPlay(t)

	require.NoError(t, click(p, core.Point{X: 3, Y: 2}))

	u, err := p.Board().FriendlyUnit(core.Point{X: 3, Y: 2})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, core.Infantry, u.Kind())
	assert.Equal(t, 40, p.AP())
	assert.Equal(t, 1, log.count(events.TypeUnitPlaced))

	p.Select(core.Tank)
	require.NoError(t, click(p, core.Point{X: 4, Y: 2}))
	u, err = p.Board().FriendlyUnit(core.Point{X: 4, Y: 2})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, core.Tank, u.Kind())
	assert.Equal(t, 20, p.AP())
}

func TestPlaceRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, p *Play)
		kind  core.UnitKind
		at    core.Point
		want  error
	}{
		{
			name: "enemy territory",
			kind: core.Infantry,
			at:   core.Point{X: 0, Y: 16},
			want: ErrEnemyTerritory,
		},
		{
			name: "ground slot taken",
			setup: func(t *testing.T, p *Play) {
				require.NoError(t, p.Place(core.Infantry, core.Point{X: 1, Y: 1}))
			},
			kind: core.Tank,
			at:   core.Point{X: 1, Y: 1},
			want: ErrTileOccupied,
		},
		{
			name: "ground unit on mountain",
			setup: func(t *testing.T, p *Play) {
				testutil.SetMountains(t, p.Board(), core.Point{X: 2, Y: 2})
			},
			kind: core.Infantry,
			at:   core.Point{X: 2, Y: 2},
			want: ErrTileOccupied,
		},
		{
			name: "not enough AP",
			setup: func(t *testing.T, p *Play) {
				require.NoError(t, p.Place(core.Tank, core.Point{X: 0, Y: 0}))
				require.NoError(t, p.Place(core.Tank, core.Point{X: 1, Y: 0}))
			},
			kind: core.Tank,
			at:   core.Point{X: 2, Y: 0},
			want: ErrInsufficientAP,
		},
		{
			name: "outside the view",
			kind: core.Infantry,
			at:   core.Point{X: 20, Y: 0},
			want: core.ErrInvalidCoordinates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, log := newTestPlay(t)
			if tt.setup != nil {
				tt.setup(t, p)
			}
			ap := p.AP()
			units := p.Board().UnitCount()

			err := p.Place(tt.kind, tt.at)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, ap, p.AP(), "rejected actions cost nothing")
			assert.Equal(t, units, p.Board().UnitCount())
			assert.Equal(t, 1, log.count(events.TypeActionRejected))
		})
	}
}

func TestPlaceAirOverGround(t *testing.T) {
	p, _ := newTestPlay(t)
	at := core.Point{X: 5, Y: 5}

	require.NoError(t, p.Place(core.Infantry, at))
	require.NoError(t, p.Place(core.Bomber, at))

	tile, err := p.Board().Tile(at)
	require.NoError(t, err)
	assert.Equal(t, core.Infantry, tile.GroundUnit().Kind())
	assert.Equal(t, core.Bomber, tile.AirUnit().Kind())
	assert.Equal(t, 40, p.AP(), "bombers are free to place")
}

func TestDragMovesUnit(t *testing.T) {
	p, log := newTestPlay(t)
	from, to := core.Point{X: 3, Y: 2}, core.Point{X: 7, Y: 9}
	require.NoError(t, p.Place(core.Infantry, from))
	u, _ := p.Board().FriendlyUnit(from)

	require.NoError(t, drag(p, from, to))

	moved, err := p.Board().FriendlyUnit(to)
	require.NoError(t, err)
	assert.Same(t, u, moved)
	left, _ := p.Board().FriendlyUnit(from)
	assert.Nil(t, left)
	assert.Equal(t, 30, p.AP())
	assert.Equal(t, 1, log.count(events.TypeUnitMoved))
}

func TestDragRejections(t *testing.T) {
	p, _ := newTestPlay(t)
	require.NoError(t, p.Place(core.Infantry, core.Point{X: 0, Y: 0}))
	require.NoError(t, p.Place(core.Infantry, core.Point{X: 1, Y: 0}))
	require.NoError(t, p.Board().AddUnit(core.NewUnit(core.Tank, core.Enemy), core.Point{X: 2, Y: 0}))
	ap := p.AP()

	assert.ErrorIs(t, drag(p, core.Point{X: 5, Y: 5}, core.Point{X: 5, Y: 6}), ErrNoFriendlyUnit)
	assert.ErrorIs(t, drag(p, core.Point{X: 2, Y: 0}, core.Point{X: 2, Y: 1}), ErrNoFriendlyUnit)
	assert.ErrorIs(t, drag(p, core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0}), ErrIllegalMove)
	assert.Equal(t, ap, p.AP())
}

func TestMouseUpWithoutDown(t *testing.T) {
	p, log := newTestPlay(t)

	assert.NoError(t, p.MouseUp(pixel(1, 1)))
	assert.Equal(t, 0, p.Board().UnitCount())
	assert.Equal(t, 0, log.count(events.TypeActionRejected))
}

func TestAPRegeneration(t *testing.T) {
	p, _ := newTestPlay(t)

	p.Update(1000)
	assert.Equal(t, 55, p.AP())

	p.Update(500)
	assert.Equal(t, 57, p.AP())

	p.Update(20000)
	assert.Equal(t, 100, p.AP(), "AP is capped")
}

func TestPauseStopsSimulation(t *testing.T) {
	p, _ := newTestPlay(t)

	require.NoError(t, p.TogglePause())
	assert.Equal(t, states.PhasePaused, p.Phase())

	p.Update(10000)
	assert.Equal(t, 50, p.AP())
	assert.Equal(t, 0, p.Board().ProgressElapsed())
	assert.ErrorIs(t, p.Place(core.Infantry, core.Point{X: 0, Y: 0}), ErrNotPlaying)
	assert.ErrorIs(t, p.ToggleEditor(), states.ErrInvalidTransition)

	require.NoError(t, p.TogglePause())
	assert.Equal(t, states.PhasePlaying, p.Phase())
	p.Update(1000)
	assert.Equal(t, 55, p.AP())
}

func TestEditorSuspendsInput(t *testing.T) {
	p, _ := newTestPlay(t)

	require.NoError(t, p.ToggleEditor())
	assert.Equal(t, states.PhaseEditing, p.Phase())

	assert.NoError(t, click(p, core.Point{X: 1, Y: 1}), "clicks belong to the editor")
	assert.Equal(t, 0, p.Board().UnitCount())

	require.NoError(t, p.ToggleEditor())
	assert.Equal(t, states.PhasePlaying, p.Phase())
}

func TestKillGrantsBonus(t *testing.T) {
	p, log := newTestPlay(t, noRegen)
	b := p.Board()
	require.NoError(t, b.AddUnit(core.NewUnit(core.Infantry, core.Friendly), core.Point{X: 5, Y: 5}))
	enemy := core.NewUnit(core.Infantry, core.Enemy)
	require.NoError(t, b.AddUnit(enemy, core.Point{X: 5, Y: 6}))

	scroll(p)

	assert.True(t, enemy.IsDead())
	assert.Equal(t, 55, p.AP())
	assert.Equal(t, 1, p.Context().Kills)
	assert.Equal(t, 1, p.Context().RowsAdvanced)
	assert.Equal(t, 1, log.count(events.TypeUnitFired))
	assert.Equal(t, 1, log.count(events.TypeBoardProgressed))
	assert.Equal(t, 1, log.count(events.TypeBoardScrolled))
}

func TestEnemyBreachMovesFrontline(t *testing.T) {
	p, log := newTestPlay(t, noRegen)
	require.NoError(t, p.Board().AddUnit(core.NewUnit(core.Tank, core.Enemy), core.Point{X: 0, Y: 0}))

	scroll(p)

	assert.Equal(t, 14, p.Board().Frontline())
	assert.Equal(t, 1, log.count(events.TypeEnemyBreached))
	assert.Equal(t, 1, log.count(events.TypeFrontlineMoved))
	assert.Equal(t, states.PhasePlaying, p.Phase())
}

func TestFriendlyScrolledOutIsLost(t *testing.T) {
	p, log := newTestPlay(t, noRegen)
	testutil.SetMountains(t, p.Board(), core.Point{X: 0, Y: 1})
	require.NoError(t, p.Board().AddUnit(core.NewUnit(core.Tank, core.Friendly), core.Point{X: 0, Y: 0}))

	scroll(p)

	assert.Equal(t, 15, p.Board().Frontline())
	assert.Equal(t, 1, log.count(events.TypeUnitLost))
	assert.Equal(t, 0, log.count(events.TypeEnemyBreached))
}

func TestOverrunEndsRoundAndRestart(t *testing.T) {
	p, log := newTestPlay(t, noRegen)
	p.Board().SetFrontline(0)
	require.NoError(t, p.Place(core.Infantry, core.Point{X: 3, Y: 0}))
	require.NoError(t, p.Board().AddUnit(core.NewUnit(core.Artillery, core.Enemy), core.Point{X: 0, Y: 0}))

	assert.ErrorIs(t, p.Restart(), states.ErrInvalidTransition)

	scroll(p)

	assert.Equal(t, -1, p.Board().Frontline())
	assert.Equal(t, states.PhaseOver, p.Phase())
	assert.Equal(t, 1, log.count(events.TypeGameEnded))

	p.Update(10000)
	assert.Equal(t, 40, p.AP(), "nothing advances after the round ends")

	require.NoError(t, p.Restart())
	assert.Equal(t, states.PhasePlaying, p.Phase())
	assert.Equal(t, 50, p.AP())
	assert.Equal(t, 0, p.Board().UnitCount())
	assert.Equal(t, 15, p.Board().Frontline())
	assert.Equal(t, 0, p.Board().BaseRow())
	assert.Equal(t, 0, p.Context().Kills)
	assert.Equal(t, 2, log.count(events.TypeGameStarted))
}

func TestApplyTuning(t *testing.T) {
	p, _ := newTestPlay(t)
	tuning := DefaultTuning()
	tuning.MaxAP = 20
	tuning.APRegenPerSecond = 0

	p.ApplyTuning(tuning)
	assert.Equal(t, 50, p.AP(), "applied on the next update")

	p.Update(0)
	assert.Equal(t, 20, p.AP())
	assert.Equal(t, 20, p.Tuning().MaxAP)
}

func TestApplyGeneration(t *testing.T) {
	p, _ := newTestPlay(t)

	err := p.ApplyGeneration(mapgen.Config{})
	assert.ErrorIs(t, err, mapgen.ErrNoWeight)
	assert.IsType(t, plainRows{}, p.RowPopulator())

	require.NoError(t, p.ApplyGeneration(mapgen.DefaultConfig()))
	p.Update(0)
	assert.IsType(t, &mapgen.Generator{}, p.RowPopulator())
}

func TestLoadBoard(t *testing.T) {
	p, _ := newTestPlay(t)

	small := testutil.BoardConfig()
	small.Columns = 5
	other, err := core.NewBoard(small, nil, testutil.NopLogger())
	require.NoError(t, err)
	assert.ErrorIs(t, p.LoadBoard(other), core.ErrInvalidConfig)

	b := testutil.CreateTestBoard(t)
	require.NoError(t, p.LoadBoard(b))
	assert.Same(t, b, p.Board())
}
