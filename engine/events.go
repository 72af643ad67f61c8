package engine

// EventType names an advisory notification produced by a transition.
type EventType uint8

const (
	EventGameStarted     EventType = iota // 0
	EventGameReset                        // 1
	EventDiceRolled                       // 2
	EventTokenMoved                       // 3: position committed
	EventBoardEndReached                  // 4
	EventPointsAwarded                    // 5
	EventGameWon                          // 6
	EventTurnChanged                      // 7
)

var eventNames = [...]string{
	"game_started",
	"game_reset",
	"dice_rolled",
	"token_moved",
	"board_end_reached",
	"points_awarded",
	"game_won",
	"turn_changed",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// Event is a notification for user-facing feedback. Events are not part of
// the state contract; presentation reads GameState for that.
type Event struct {
	Type     EventType
	PlayerID int // 0 when the event is not about a player
	Value    int // roll value, awarded points, or committed position
	Score    int // player's score after the event, where relevant
}
