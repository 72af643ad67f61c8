package game

// GameEventType represents the type of a game event broadcast to listeners.
type GameEventType string

// Constants defining the GameEvent types. The values match the engine's
// event names.
const (
	EventGameStarted     GameEventType = "game_started"
	EventGameReset       GameEventType = "game_reset"
	EventDiceRolled      GameEventType = "dice_rolled"       // payload: value
	EventTokenMoved      GameEventType = "token_moved"       // payload: position, score
	EventBoardEndReached GameEventType = "board_end_reached" // payload: position, score
	EventPointsAwarded   GameEventType = "points_awarded"    // payload: points, score
	EventGameWon         GameEventType = "game_won"          // payload: score
	EventTurnChanged     GameEventType = "turn_changed"      // payload: turn
)

// GameEvent is an advisory notification for user-facing feedback such as
// toasts. Listeners must read state from View, never from events.
type GameEvent struct {
	Type     GameEventType          `json:"type"`
	PlayerID int                    `json:"playerId,omitempty"` // 0 for game-level events.
	Turn     int                    `json:"turn"`
	Payload  map[string]interface{} `json:"payload,omitempty"`
}
