package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/frontline/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.InfoLevel:
		logEvent = eventLogger.Info()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("columns", e.Columns).
			Int("visible_rows", e.VisibleRows).
			Int64("seed", e.Seed)

	case *events.GameEndedEvent:
		logEvent.
			Int("rows_advanced", e.RowsAdvanced).
			Int("kills", e.Kills).
			Dur("duration", e.Duration)

	case *events.UnitPlacedEvent:
		logEvent.
			Uint32("unit_id", uint32(e.UnitID)).
			Str("kind", e.Kind.String()).
			Int("x", e.At.X).
			Int("y", e.At.Y).
			Int("cost", e.Cost)

	case *events.UnitMovedEvent:
		logEvent.
			Uint32("unit_id", uint32(e.UnitID)).
			Str("kind", e.Kind.String()).
			Int("from_x", e.From.X).
			Int("from_y", e.From.Y).
			Int("to_x", e.To.X).
			Int("to_y", e.To.Y).
			Int("cost", e.Cost)

	case *events.UnitFiredEvent:
		logEvent.
			Uint32("attacker_id", uint32(e.AttackerID)).
			Str("attacker", e.AttackerAllegiance.String()+" "+e.AttackerKind.String()).
			Uint32("target_id", uint32(e.TargetID)).
			Str("target_kind", e.TargetKind.String()).
			Int("from_x", e.From.X).
			Int("from_y", e.From.Y).
			Int("to_x", e.To.X).
			Int("to_y", e.To.Y)

	case *events.UnitRemovedEvent:
		logEvent.
			Uint32("unit_id", uint32(e.UnitID)).
			Str("kind", e.Kind.String()).
			Str("allegiance", e.Allegiance.String())

	case *events.UnitLostEvent:
		logEvent.
			Uint32("unit_id", uint32(e.UnitID)).
			Str("kind", e.Kind.String())

	case *events.ActionRejectedEvent:
		logEvent.
			Str("action", e.Action).
			Int("x", e.At.X).
			Int("y", e.At.Y).
			Str("reason", e.Reason)

	case *events.BoardProgressedEvent:
		logEvent.
			Int("base_row", e.BaseRow).
			Int("migrated", e.Migrated)

	case *events.BoardScrolledEvent:
		logEvent.
			Int("base_row", e.BaseRow).
			Int("rows", e.Rows).
			Int("shots", e.Shots)

	case *events.EnemyBreachedEvent:
		logEvent.
			Uint32("unit_id", uint32(e.UnitID)).
			Str("kind", e.Kind.String())

	case *events.FrontlineMovedEvent:
		logEvent.
			Int("from", e.From).
			Int("to", e.To)

	case *events.LevelSavedEvent:
		logEvent.Str("path", e.Path)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
