package states

import (
	"errors"
	"testing"
	"time"

	"github.com/mitchelldurbincs/frontline/internal/game/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestMachine(t *testing.T) (*StateMachine, *fakeClock, *events.EventBus) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	ctx := NewGameContext("test-game", zerolog.Nop())
	ctx.Now = clock.Now
	bus := events.NewEventBus(zerolog.Nop())
	return NewStateMachine(ctx, bus), clock, bus
}

func TestGamePhase_String(t *testing.T) {
	tests := []struct {
		phase    GamePhase
		expected string
	}{
		{PhasePlaying, "Playing"},
		{PhasePaused, "Paused"},
		{PhaseEditing, "Editing"},
		{PhaseOver, "Over"},
		{GamePhase(999), "Unknown(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestGamePhase_Properties(t *testing.T) {
	assert.True(t, PhasePlaying.CanSimulate())
	assert.False(t, PhasePaused.CanSimulate())
	assert.False(t, PhaseEditing.CanSimulate())
	assert.False(t, PhaseOver.CanSimulate())

	assert.True(t, PhasePaused.Suspended())
	assert.True(t, PhaseEditing.Suspended())
	assert.False(t, PhaseOver.Suspended())
}

func TestGamePhase_Transitions(t *testing.T) {
	tests := []struct {
		from    GamePhase
		allowed []GamePhase
	}{
		{PhasePlaying, []GamePhase{PhasePaused, PhaseEditing, PhaseOver}},
		{PhasePaused, []GamePhase{PhasePlaying}},
		{PhaseEditing, []GamePhase{PhasePlaying}},
		{PhaseOver, []GamePhase{PhasePlaying}},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.AllowedTransitions())
			for _, p := range []GamePhase{PhasePlaying, PhasePaused, PhaseEditing, PhaseOver} {
				assert.Equal(t, contains(tt.allowed, p), tt.from.CanTransitionTo(p), "%s -> %s", tt.from, p)
			}
		})
	}
}

func contains(phases []GamePhase, p GamePhase) bool {
	for _, candidate := range phases {
		if candidate == p {
			return true
		}
	}
	return false
}

func TestParsePhase(t *testing.T) {
	p, err := ParsePhase("Editing")
	require.NoError(t, err)
	assert.Equal(t, PhaseEditing, p)

	_, err = ParsePhase("Lobby")
	assert.Error(t, err)
}

func TestStateMachine_StartsPlaying(t *testing.T) {
	sm, clock, _ := newTestMachine(t)

	assert.Equal(t, PhasePlaying, sm.CurrentPhase())
	assert.Equal(t, clock.now, sm.GetContext().StartTime)
	assert.Empty(t, sm.GetHistory())
}

func TestStateMachine_InvalidTransition(t *testing.T) {
	sm, _, _ := newTestMachine(t)
	require.NoError(t, sm.TransitionTo(PhasePaused, "pause key"))

	err := sm.TransitionTo(PhaseEditing, "editor key")

	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, PhasePaused, sm.CurrentPhase())
	assert.False(t, sm.CanTransitionTo(PhaseOver))
}

func TestStateMachine_PauseAccounting(t *testing.T) {
	sm, clock, _ := newTestMachine(t)
	ctx := sm.GetContext()

	clock.Advance(10 * time.Second)
	require.NoError(t, sm.TransitionTo(PhasePaused, "pause key"))
	clock.Advance(5 * time.Second)
	require.NoError(t, sm.TransitionTo(PhasePlaying, "pause key"))
	clock.Advance(2 * time.Second)
	require.NoError(t, sm.TransitionTo(PhaseEditing, "editor key"))
	clock.Advance(3 * time.Second)
	require.NoError(t, sm.TransitionTo(PhasePlaying, "editor key"))

	assert.Equal(t, 8*time.Second, ctx.TotalPauseDuration)
	assert.Equal(t, 12*time.Second, ctx.GetElapsedTime())
	assert.True(t, ctx.PauseTime.IsZero())
}

func TestStateMachine_GameOverAndRestart(t *testing.T) {
	sm, clock, bus := newTestMachine(t)
	ctx := sm.GetContext()
	var transitions []*events.StateTransitionEvent
	bus.SubscribeFunc(events.TypeStateTransition, func(e events.Event) {
		transitions = append(transitions, e.(*events.StateTransitionEvent))
	})

	ctx.Kills = 7
	ctx.RowsAdvanced = 30
	clock.Advance(time.Minute)
	require.NoError(t, sm.TransitionTo(PhaseOver, "frontline lost"))

	clock.Advance(time.Minute)
	assert.Equal(t, time.Minute, ctx.GetElapsedTime(), "clock stops at game over")

	require.NoError(t, sm.TransitionTo(PhasePlaying, "restart"))
	assert.Zero(t, ctx.Kills)
	assert.Zero(t, ctx.RowsAdvanced)
	assert.Equal(t, clock.now, ctx.StartTime)
	assert.Zero(t, ctx.GetElapsedTime())

	require.Len(t, transitions, 2)
	assert.Equal(t, "Playing", transitions[0].FromPhase)
	assert.Equal(t, "Over", transitions[0].ToPhase)
	assert.Equal(t, "frontline lost", transitions[0].Reason)
	assert.Equal(t, "test-game", transitions[1].GameID())

	history := sm.GetHistory()
	require.Len(t, history, 2)
	assert.Equal(t, PhaseOver, history[1].From)
	assert.Equal(t, PhasePlaying, history[1].To)
}

func TestStateMachine_HistoryIsBounded(t *testing.T) {
	sm, _, _ := newTestMachine(t)

	for i := 0; i < 150; i++ {
		require.NoError(t, sm.TransitionTo(PhasePaused, "toggle"))
		require.NoError(t, sm.TransitionTo(PhasePlaying, "toggle"))
	}

	history := sm.GetHistory()
	assert.Len(t, history, 100)
	assert.Equal(t, PhasePlaying, history[len(history)-1].To)
}

type failingState struct{}

func (failingState) Phase() GamePhase                { return PhaseEditing }
func (failingState) Enter(ctx *GameContext) error    { return errors.New("no editor") }
func (failingState) Exit(ctx *GameContext) error     { return nil }
func (failingState) Validate(ctx *GameContext) error { return nil }

func TestStateMachine_EnterFailureRollsBack(t *testing.T) {
	sm, _, _ := newTestMachine(t)
	sm.RegisterState(failingState{})

	err := sm.TransitionTo(PhaseEditing, "editor key")

	assert.Error(t, err)
	assert.Equal(t, PhasePlaying, sm.CurrentPhase())
	assert.Empty(t, sm.GetHistory())
}
