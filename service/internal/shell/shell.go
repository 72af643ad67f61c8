// Package shell bridges a game session to a UI over HTTP and websockets.
// Clients send intents; the server pushes views and advisory events.
package shell

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Neha1998/colorful-dice-adventure/engine"
	"github.com/Neha1998/colorful-dice-adventure/service/internal/game"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	sendBuffer   = 64
	writeTimeout = 5 * time.Second
	pingInterval = 15 * time.Second
)

// Controller is the part of a game session the shell drives.
type Controller interface {
	Start() error
	Roll(value int) error
	RollDie() error
	NextPlayer() error
	Reset()
	View() game.View
}

// ClientMessage is an intent sent by the UI.
type ClientMessage struct {
	Type  string `json:"type"` // start, reset, roll, roll_die, next_player
	Value int    `json:"value,omitempty"`
}

// ServerMessage is pushed to the UI.
type ServerMessage struct {
	Type    string          `json:"type"` // state, event, error
	State   *game.View      `json:"state,omitempty"`
	Event   *game.GameEvent `json:"event,omitempty"`
	Message string          `json:"message,omitempty"`
}

type client struct {
	id   uuid.UUID
	send chan ServerMessage

	lastVersion uint64 // owned by the writer goroutine
}

// fresh reports whether msg should be written. A state older than one
// already written is skipped; the connect snapshot can be queued behind a
// newer broadcast.
func (c *client) fresh(msg ServerMessage) bool {
	if msg.State == nil {
		return true
	}
	if msg.State.Version < c.lastVersion {
		return false
	}
	c.lastVersion = msg.State.Version
	return true
}

// Server fans session output out to connected clients.
type Server struct {
	session Controller
	log     logrus.FieldLogger

	mu      sync.Mutex
	clients map[*client]struct{}
}

// New returns a server for session. Wire PublishState and PublishEvent to
// the session's callbacks.
func New(session Controller, log logrus.FieldLogger) *Server {
	return &Server{
		session: session,
		log:     log,
		clients: make(map[*client]struct{}),
	}
}

// Handler serves GET /state and the /ws endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /state", s.handleState)
	mux.HandleFunc("GET /ws", s.handleWS)
	return mux
}

// PublishState queues v for every client. It never blocks; a client whose
// queue is full is dropped.
func (s *Server) PublishState(v game.View) {
	s.broadcast(ServerMessage{Type: "state", State: &v})
}

// PublishEvent queues ev for every client.
func (s *Server) PublishEvent(ev game.GameEvent) {
	s.broadcast(ServerMessage{Type: "event", Event: &ev})
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) broadcast(msg ServerMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		s.enqueueLocked(c, msg)
	}
}

func (s *Server) sendTo(c *client, msg ServerMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; ok {
		s.enqueueLocked(c, msg)
	}
}

func (s *Server) enqueueLocked(c *client, msg ServerMessage) {
	select {
	case c.send <- msg:
	default:
		s.log.WithField("client", c.id.String()).Warn("Client too slow, dropping.")
		delete(s.clients, c)
		close(c.send)
	}
}

func (s *Server) register(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c] = struct{}{}
}

func (s *Server) unregister(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.session.View()); err != nil {
		s.log.WithError(err).Warn("Failed writing state.")
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.log.WithError(err).Debug("Websocket accept failed.")
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	c := &client{id: uuid.New(), send: make(chan ServerMessage, sendBuffer)}
	log := s.log.WithField("client", c.id.String())
	s.register(c)
	defer s.unregister(c)
	log.Info("Client connected.")

	v := s.session.View()
	s.sendTo(c, ServerMessage{Type: "state", State: &v})

	go s.writeLoop(ctx, cancel, conn, c)

	for {
		var msg ClientMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Is(err, context.Canceled) {
				log.Info("Client disconnected.")
			} else {
				log.WithError(err).Debug("Client read failed.")
			}
			return
		}
		if err := s.dispatch(msg); err != nil {
			s.sendTo(c, ServerMessage{Type: "error", Message: err.Error()})
		}
	}
}

// writeLoop drains the client's queue until it is closed or ctx ends.
func (s *Server) writeLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, c *client) {
	defer cancel()
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				conn.Close(websocket.StatusPolicyViolation, "client too slow")
				return
			}
			if !c.fresh(msg) {
				continue
			}
			wctx, wcancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, conn, msg)
			wcancel()
			if err != nil {
				return
			}
		case <-ping.C:
			if err := conn.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// dispatch forwards an intent to the session. Ignored requests come back as
// errors wrapping engine.ErrIgnored.
func (s *Server) dispatch(msg ClientMessage) error {
	switch msg.Type {
	case "start":
		return s.session.Start()
	case "reset":
		s.session.Reset()
		return nil
	case "roll":
		return s.session.Roll(msg.Value)
	case "roll_die":
		return s.session.RollDie()
	case "next_player":
		return s.session.NextPlayer()
	}
	return fmt.Errorf("%w: unknown message type %q", engine.ErrIgnored, msg.Type)
}
