package game

import (
	"github.com/Neha1998/colorful-dice-adventure/engine"
)

// gameEventFromEngine converts an engine event into its wire form.
func gameEventFromEngine(ev engine.Event, turn int) GameEvent {
	ge := GameEvent{
		Type:     GameEventType(ev.Type.String()),
		PlayerID: ev.PlayerID,
		Turn:     turn,
	}
	switch ev.Type {
	case engine.EventDiceRolled:
		ge.Payload = map[string]interface{}{"value": ev.Value}
	case engine.EventTokenMoved, engine.EventBoardEndReached:
		ge.Payload = map[string]interface{}{"position": ev.Value, "score": ev.Score}
	case engine.EventPointsAwarded:
		ge.Payload = map[string]interface{}{"points": ev.Value, "score": ev.Score}
	case engine.EventGameWon:
		ge.Payload = map[string]interface{}{"score": ev.Score}
	case engine.EventTurnChanged:
		ge.Payload = map[string]interface{}{"turn": ev.Value}
	}
	return ge
}

// emitEngineEvents broadcasts and records events produced by a transition,
// then pushes the new view. Assumes lock is held by caller.
func (s *Session) emitEngineEvents(events []engine.Event) {
	for _, ev := range events {
		ge := gameEventFromEngine(ev, s.state.TurnNumber)
		s.fireEvent(ge)
		s.logAction(ge.PlayerID, string(ge.Type), ge.Payload)
	}
	s.publishState()
}

// fireEvent broadcasts an event via the BroadcastFn callback.
func (s *Session) fireEvent(ev GameEvent) {
	if s.BroadcastFn != nil {
		s.BroadcastFn(ev)
	}
}

// publishState pushes a fresh view to OnStateChange. Assumes lock is held by caller.
func (s *Session) publishState() {
	s.version++
	if s.OnStateChange != nil {
		s.OnStateChange(s.viewLocked())
	}
}
