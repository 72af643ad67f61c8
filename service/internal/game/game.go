// Package game runs a single game session: it owns the engine state, drives
// the animation pipeline on a clock and fans out views and events.
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Neha1998/colorful-dice-adventure/engine"
	"github.com/Neha1998/colorful-dice-adventure/service/internal/cache"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// ErrDiceRolling is returned while a die thrown with RollDie is still spinning.
var ErrDiceRolling = fmt.Errorf("%w: die is still rolling", engine.ErrIgnored)

// Historian receives a record of every game action.
type Historian interface {
	PublishGameAction(ctx context.Context, rec cache.GameActionRecord) error
}

// Options configures a Session. Zero values select defaults.
type Options struct {
	Roster    []engine.Player // DefaultRoster when empty
	Rules     *engine.Rules   // DefaultRules when nil
	Timings   *Timings        // DefaultTimings when nil
	Clock     clockwork.Clock // real clock when nil
	Dice      DiceSource      // RandomDice when nil
	Logger    logrus.FieldLogger
	Historian Historian // optional
}

// Session is one game and its timers.
type Session struct {
	ID uuid.UUID

	mu          sync.Mutex
	state       engine.GameState
	timings     Timings
	clock       clockwork.Clock
	dice        DiceSource
	log         logrus.FieldLogger
	historian   Historian
	timer       clockwork.Timer // pending animation continuation
	diceTimer   clockwork.Timer // spinning die
	rolling     bool
	closed      bool
	actionIndex int
	version     uint64 // bumped on every pushed view
	publishing  sync.WaitGroup

	// BroadcastFn receives every game event. It is called with the session
	// lock held and must not call back into the Session.
	BroadcastFn func(ev GameEvent)
	// OnStateChange receives a fresh view after every accepted transition,
	// under the same locking rule as BroadcastFn.
	OnStateChange func(v View)
}

// NewSession creates an unstarted session.
func NewSession(opts Options) (*Session, error) {
	roster := opts.Roster
	if len(roster) == 0 {
		roster = engine.DefaultRoster()
	}
	rules := engine.DefaultRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	state, err := engine.NewGame(roster, rules)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	s := &Session{
		ID:        uuid.New(),
		state:     state,
		timings:   DefaultTimings(),
		clock:     opts.Clock,
		dice:      opts.Dice,
		historian: opts.Historian,
	}
	if opts.Timings != nil {
		s.timings = *opts.Timings
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.dice == nil {
		s.dice = RandomDice()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s.log = logger.WithField("session", s.ID.String())
	return s, nil
}

// Start begins the game.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.state.Start()
	if err != nil {
		return s.ignored("start", err)
	}
	s.log.WithField("player", s.state.CurrentPlayerID()).Info("Game started.")
	s.emitEngineEvents(events)
	return nil
}

// Roll applies a die value for the current player and starts the movement
// animation.
func (s *Session) Roll(value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roll(value)
}

// roll assumes lock is held by caller.
func (s *Session) roll(value int) error {
	if s.rolling {
		return s.ignored("roll", ErrDiceRolling)
	}
	player := s.state.CurrentPlayerID()
	events, err := s.state.Roll(value)
	if err != nil {
		return s.ignored("roll", err)
	}
	s.log.WithFields(logrus.Fields{"player": player, "value": value}).Info("Dice rolled.")
	s.schedule(s.state.PendingStage())
	s.emitEngineEvents(events)
	return nil
}

// RollDie throws the die: a value is drawn now and applied once the spin
// delay has passed. Further throws are ignored while the die spins.
func (s *Session) RollDie() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rolling {
		return s.ignored("roll die", ErrDiceRolling)
	}
	value := drawDie(s.dice)
	if err := s.state.CheckRoll(value); err != nil {
		return s.ignored("roll die", err)
	}

	s.rolling = true
	epoch := s.state.Epoch
	s.diceTimer = s.clock.AfterFunc(s.timings.DiceRoll, func() {
		s.landDie(epoch, value)
	})
	s.log.WithField("player", s.state.CurrentPlayerID()).Debug("Die spinning.")
	s.publishState()
	return nil
}

// landDie applies a thrown value once the spin is over.
func (s *Session) landDie(epoch uint64, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.rolling || epoch != s.state.Epoch {
		s.log.WithField("epoch", epoch).Debug("Discarding stale die.")
		return
	}
	s.rolling = false
	s.diceTimer = nil
	if err := s.roll(value); err != nil {
		s.publishState()
	}
}

// NextPlayer hands the turn over. While an animation runs the request is
// deferred until it finishes.
func (s *Session) NextPlayer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.state.NextPlayer()
	if err != nil {
		return s.ignored("next player", err)
	}
	if events == nil {
		s.log.Debug("Turn hand-off deferred until the animation ends.")
		s.publishState()
		return nil
	}
	s.log.WithField("player", s.state.CurrentPlayerID()).Info("Turn changed.")
	s.emitEngineEvents(events)
	return nil
}

// Reset cancels pending timers and restores the initial game.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimers()
	events := s.state.Reset()
	s.log.WithField("epoch", s.state.Epoch).Info("Game reset.")
	s.emitEngineEvents(events)
}

// View returns a snapshot of the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Close stops all timers and waits for in-flight action records to be
// published. Further timer callbacks are no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	s.stopTimers()
	s.closed = true
	s.mu.Unlock()
	s.publishing.Wait()
}

// ignored logs a rejected request and returns err unchanged.
func (s *Session) ignored(op string, err error) error {
	if errors.Is(err, engine.ErrIgnored) {
		s.log.WithField("op", op).WithError(err).Debug("Request ignored.")
	}
	return err
}

// logAction sends game action details to the historian.
// Increments the internal action index for ordering.
// Assumes lock is held by caller.
func (s *Session) logAction(actorID int, actionType string, payload map[string]interface{}) {
	s.actionIndex++
	if s.historian == nil || s.closed {
		return
	}
	record := cache.GameActionRecord{
		GameID:        s.ID,
		ActionIndex:   s.actionIndex,
		ActorPlayerID: actorID,
		ActionType:    actionType,
		ActionPayload: payload,
		Timestamp:     s.clock.Now().UnixMilli(),
	}

	s.publishing.Add(1)
	go func(rec cache.GameActionRecord) {
		defer s.publishing.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.historian.PublishGameAction(ctx, rec); err != nil {
			s.log.WithFields(logrus.Fields{"action": rec.ActionIndex, "type": rec.ActionType}).
				WithError(err).Warn("Failed publishing action.")
		}
	}(record)
}
