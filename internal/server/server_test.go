package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"cloverfield-server/internal/engine"
	"cloverfield-server/internal/infrastructure/storage"
	"cloverfield-server/internal/savegame"
	"cloverfield-server/pkg/api"
	"cloverfield-server/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*httptest.Server, *engine.GameService) {
	t.Helper()
	game := engine.NewService(engine.NewConfig(), storage.NewMemoryStore())

	ctx, cancel := context.WithCancel(context.Background())
	game.Start(ctx)
	t.Cleanup(func() {
		cancel()
		<-game.Done()
	})

	ts := httptest.NewServer(New(game, ":0").Router())
	t.Cleanup(ts.Close)
	return ts, game
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestVersion(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts.URL+"/version")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var info map[string]any
	require.NoError(t, json.Unmarshal(body, &info))
	assert.NotEmpty(t, info)
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "cloverfield_tick_seconds")
}

func TestDebugState(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts.URL+"/debug/state")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc savegame.Document
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, 1, doc.Day)
	assert.Equal(t, "Sunny", doc.Weather)
}

func TestDebugWorld(t *testing.T) {
	ts, _ := newTestServer(t)

	_, body := get(t, ts.URL+"/debug/world")
	var world api.WorldView
	require.NoError(t, json.Unmarshal(body, &world))
	assert.Equal(t, 64, world.Width)
	assert.Equal(t, 40, world.Height)
	assert.Len(t, world.Tiles, 40)
}

func TestWebSocket_InitAndCommand(t *testing.T) {
	ts, _ := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?token=tester"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// readUntil читает сообщения, пока не встретит подходящее
	readUntil := func(match func(api.ServerResponse) bool) api.ServerResponse {
		t.Helper()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
		for {
			var msg api.ServerResponse
			require.NoError(t, conn.ReadJSON(&msg))
			if match(msg) {
				return msg
			}
		}
	}

	world := readUntil(func(m api.ServerResponse) bool { return m.Type == api.ResponseWorld })
	assert.Equal(t, "tester", world.SessionID)
	require.NotNil(t, world.World)

	require.NoError(t, conn.WriteJSON(api.ClientCommand{Action: "DANCE"}))
	errMsg := readUntil(func(m api.ServerResponse) bool { return m.Type == api.ResponseError })
	assert.Contains(t, errMsg.Error, "unknown action")

	require.NoError(t, conn.WriteJSON(api.ClientCommand{
		Action:  "SELECT_TOOL",
		Payload: json.RawMessage(`{"slot":2}`),
	}))
	update := readUntil(func(m api.ServerResponse) bool {
		return m.Type == api.ResponseUpdate && m.Status != nil && m.Status.ToolSlot == 2
	})
	assert.Equal(t, "Watering Can", update.Status.ToolLabel)
}

func TestWebSocket_ReconnectWithSameToken(t *testing.T) {
	ts, game := newTestServer(t)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?token=same"

	dial := func() *websocket.Conn {
		t.Helper()
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })
		return conn
	}
	waitFor := func(conn *websocket.Conn, typ string) {
		t.Helper()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
		for {
			var msg api.ServerResponse
			require.NoError(t, conn.ReadJSON(&msg))
			if msg.Type == typ {
				return
			}
		}
	}

	first := dial()
	waitFor(first, api.ResponseWorld)

	second := dial()
	waitFor(second, api.ResponseWorld)

	// Сервер закрывает старое соединение
	require.NoError(t, first.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		var msg api.ServerResponse
		if err := first.ReadJSON(&msg); err != nil {
			break
		}
	}

	// Новое соединение продолжает получать кадры
	assert.True(t, game.Hub.HasSubscriber("same"))
	waitFor(second, api.ResponseUpdate)
	waitFor(second, api.ResponseUpdate)
	assert.True(t, game.Hub.HasSubscriber("same"))
}
