package shell

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Neha1998/colorful-dice-adventure/service/internal/game"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// setupTestServer wires a session on a fake clock to a shell behind httptest.
func setupTestServer(t *testing.T) (*game.Session, *Server, *httptest.Server) {
	t.Helper()
	sess, err := game.NewSession(game.Options{Clock: clockwork.NewFakeClock(), Logger: quietLogger()})
	require.NoError(t, err)
	t.Cleanup(sess.Close)

	srv := New(sess, quietLogger())
	sess.OnStateChange = srv.PublishState
	sess.BroadcastFn = srv.PublishEvent

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return sess, srv, ts
}

func dial(t *testing.T, ts *httptest.Server) (*websocket.Conn, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn, ctx
}

// readUntil reads messages until match returns true.
func readUntil(t *testing.T, ctx context.Context, conn *websocket.Conn, match func(ServerMessage) bool) ServerMessage {
	t.Helper()
	for {
		var msg ServerMessage
		require.NoError(t, wsjson.Read(ctx, conn, &msg))
		if match(msg) {
			return msg
		}
	}
}

func TestStateEndpoint(t *testing.T) {
	_, _, ts := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var v game.View
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	assert.Equal(t, "idle", v.Phase)
	assert.Len(t, v.Players, 4)
	assert.Len(t, v.Board, 25)
}

func TestWebsocketSendsStateOnConnect(t *testing.T) {
	sess, srv, ts := setupTestServer(t)
	conn, ctx := dial(t, ts)

	var first ServerMessage
	require.NoError(t, wsjson.Read(ctx, conn, &first))
	assert.Equal(t, "state", first.Type)
	require.NotNil(t, first.State)
	assert.Equal(t, sess.ID, first.State.SessionID)
	assert.Equal(t, 1, srv.ClientCount())
}

func TestWebsocketStartAndRoll(t *testing.T) {
	_, _, ts := setupTestServer(t)
	conn, ctx := dial(t, ts)

	require.NoError(t, wsjson.Write(ctx, conn, ClientMessage{Type: "start"}))
	ev := readUntil(t, ctx, conn, func(m ServerMessage) bool { return m.Type == "event" })
	assert.Equal(t, game.EventGameStarted, ev.Event.Type)

	require.NoError(t, wsjson.Write(ctx, conn, ClientMessage{Type: "roll", Value: 3}))
	st := readUntil(t, ctx, conn, func(m ServerMessage) bool {
		return m.Type == "state" && m.State.Phase == "animating"
	})
	require.NotNil(t, st.State.LastRoll)
	assert.Equal(t, 3, *st.State.LastRoll)
	assert.Equal(t, []int{0, 1, 2, 3}, st.State.AnimationPath)
}

func TestWebsocketReportsIgnoredRequests(t *testing.T) {
	_, _, ts := setupTestServer(t)
	conn, ctx := dial(t, ts)

	require.NoError(t, wsjson.Write(ctx, conn, ClientMessage{Type: "roll", Value: 2}))
	msg := readUntil(t, ctx, conn, func(m ServerMessage) bool { return m.Type == "error" })
	assert.Contains(t, msg.Message, "not started")

	require.NoError(t, wsjson.Write(ctx, conn, ClientMessage{Type: "fly"}))
	msg = readUntil(t, ctx, conn, func(m ServerMessage) bool { return m.Type == "error" })
	assert.Contains(t, msg.Message, "unknown message type")
}

func TestSlowClientIsDropped(t *testing.T) {
	srv := New(nil, quietLogger())
	c := &client{send: make(chan ServerMessage, 1)}
	srv.register(c)

	srv.PublishEvent(game.GameEvent{Type: game.EventGameStarted})
	assert.Equal(t, 1, srv.ClientCount())
	srv.PublishEvent(game.GameEvent{Type: game.EventTurnChanged})
	assert.Equal(t, 0, srv.ClientCount())

	_, ok := <-c.send
	assert.True(t, ok, "queued message is still delivered")
	_, ok = <-c.send
	assert.False(t, ok, "queue is closed after the drop")

	srv.unregister(c)
}

// TestOlderStateIsSkipped covers a connect snapshot queued behind a newer broadcast.
func TestOlderStateIsSkipped(t *testing.T) {
	c := &client{}
	newer := game.View{Version: 6}
	snapshot := game.View{Version: 5}

	assert.True(t, c.fresh(ServerMessage{Type: "state", State: &newer}))
	assert.False(t, c.fresh(ServerMessage{Type: "state", State: &snapshot}), "older view must not overwrite a newer one")
	assert.True(t, c.fresh(ServerMessage{Type: "event", Event: &game.GameEvent{Type: game.EventTurnChanged}}))
	assert.True(t, c.fresh(ServerMessage{Type: "state", State: &newer}), "same version may be resent")
	assert.Equal(t, uint64(6), c.lastVersion)
}
