package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
	"github.com/mitchelldurbincs/frontline/internal/game/events/subscribers"
)

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeUnitFired))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name: "GameStartedEvent",
			event: &events.GameStartedEvent{
				BaseEvent:   events.BaseEvent{EventType: events.TypeGameStarted, Time: time.Now(), Game: "test-game-1"},
				Columns:     20,
				VisibleRows: 18,
				Seed:        7,
			},
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(20), logLine["columns"])
				assert.Equal(t, float64(18), logLine["visible_rows"])
				assert.Equal(t, float64(7), logLine["seed"])
			},
		},
		{
			name: "UnitFiredEvent",
			event: &events.UnitFiredEvent{
				BaseEvent:          events.BaseEvent{EventType: events.TypeUnitFired, Time: time.Now(), Game: "test-game-1"},
				AttackerID:         3,
				AttackerKind:       core.Tank,
				AttackerAllegiance: core.Friendly,
				TargetID:           9,
				TargetKind:         core.Infantry,
				From:               core.Point{X: 4, Y: 4},
				To:                 core.Point{X: 5, Y: 5},
			},
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(3), logLine["attacker_id"])
				assert.Equal(t, "friendly Tank", logLine["attacker"])
				assert.Equal(t, "Infantry", logLine["target_kind"])
				assert.Equal(t, float64(5), logLine["to_y"])
			},
		},
		{
			name: "FrontlineMovedEvent",
			event: &events.FrontlineMovedEvent{
				BaseEvent: events.BaseEvent{EventType: events.TypeFrontlineMoved, Time: time.Now(), Game: "test-game-1"},
				From:      15,
				To:        14,
			},
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(15), logLine["from"])
				assert.Equal(t, float64(14), logLine["to"])
			},
		},
		{
			name: "GameEndedEvent",
			event: &events.GameEndedEvent{
				BaseEvent:    events.BaseEvent{EventType: events.TypeGameEnded, Time: time.Now(), Game: "test-game-1"},
				RowsAdvanced: 40,
				Kills:        12,
				Duration:     time.Minute * 5,
			},
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(40), logLine["rows_advanced"])
				assert.Equal(t, float64(12), logLine["kills"])
				assert.Equal(t, float64(300000), logLine["duration"]) // 5 minutes in ms
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			logSub.HandleEvent(tc.event)

			logOutput := buf.String()
			require.NotEmpty(t, logOutput, "Log output should not be empty")

			var logLine map[string]interface{}
			err := json.Unmarshal([]byte(logOutput), &logLine)
			require.NoError(t, err, "Should be able to parse log output as JSON")

			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, "Game event", logLine["message"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, "test-game-1", logLine["game_id"])

			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("filtered-logger", zerolog.Nop(), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeGameStarted, events.TypeGameEnded})

	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeGameEnded))
	assert.False(t, logSub.InterestedIn(events.TypeBoardScrolled))
	assert.False(t, logSub.InterestedIn(events.TypeUnitMoved))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeUnitMoved))
}

func TestLoggerSubscriberOnBus(t *testing.T) {
	var buf bytes.Buffer
	bus := events.NewEventBus(zerolog.Nop())
	logSub := subscribers.NewLoggerSubscriber("bus-logger", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeLevelSaved})
	bus.Subscribe(logSub)

	bus.Publish(events.NewBoardScrolledEvent("g", 1, 22, 0))
	assert.Zero(t, buf.Len())

	bus.Publish(events.NewLevelSavedEvent("g", "levels/one.yaml"))
	assert.Contains(t, buf.String(), "levels/one.yaml")
}

func TestLoggerSubscriberLogLevels(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel zerolog.Level
		expected string
	}{
		{"Debug", zerolog.DebugLevel, "debug"},
		{"Info", zerolog.InfoLevel, "info"},
		{"Warn", zerolog.WarnLevel, "warn"},
		{"Error", zerolog.ErrorLevel, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logSub := subscribers.NewLoggerSubscriber("level-logger", zerolog.New(&buf), tc.logLevel)

			logSub.HandleEvent(events.NewGameStartedEvent("game1", 20, 20, 1))

			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
			assert.Equal(t, tc.expected, logLine["level"])
		})
	}
}

func TestLoggerSubscriberDevelopmentMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev-logger", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(&events.UnitMovedEvent{
		BaseEvent: events.BaseEvent{EventType: events.TypeUnitMoved, Time: time.Now(), Game: "dev-game"},
		UnitID:    2,
		Kind:      core.Artillery,
		From:      core.Point{X: 5, Y: 5},
		To:        core.Point{X: 6, Y: 5},
		Cost:      40,
	})

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))

	eventData, ok := logLine["event_data"]
	require.True(t, ok, "event_data should be present")
	eventDataBytes, err := json.Marshal(eventData)
	require.NoError(t, err)
	assert.Contains(t, string(eventDataBytes), "unit.moved")
	assert.Contains(t, string(eventDataBytes), "Cost")
}
