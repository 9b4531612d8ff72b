package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()

	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(server.Close)

	return hub, "ws" + strings.TrimPrefix(server.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	return event
}

func TestServeWS_SendsWelcome(t *testing.T) {
	_, url := startHub(t)
	conn := dial(t, url)

	event := readEvent(t, conn)

	assert.Equal(t, EventWelcome, event.Type)
}

func TestBroadcast_ReachesAllClients(t *testing.T) {
	hub, url := startHub(t)

	first := dial(t, url)
	second := dial(t, url)
	readEvent(t, first)
	readEvent(t, second)

	hub.Broadcast(Event{Type: EventGlobalStats, Data: map[string]int{"total_users": 3}})

	for _, conn := range []*websocket.Conn{first, second} {
		event := readEvent(t, conn)
		assert.Equal(t, EventGlobalStats, event.Type)
	}
}

func TestBroadcast_AfterClientDisconnect(t *testing.T) {
	hub, url := startHub(t)

	gone := dial(t, url)
	stays := dial(t, url)
	readEvent(t, gone)
	readEvent(t, stays)

	require.NoError(t, gone.Close())
	// Give the hub a moment to process the unregister.
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast(Event{Type: EventWellnessAchievement})

	event := readEvent(t, stays)
	assert.Equal(t, EventWellnessAchievement, event.Type)
}

func TestClientFramesAreRebroadcast(t *testing.T) {
	_, url := startHub(t)

	sender := dial(t, url)
	receiver := dial(t, url)
	readEvent(t, sender)
	readEvent(t, receiver)

	require.NoError(t, sender.WriteJSON(Event{
		Type: EventCommunityActivity,
		Data: map[string]string{"post_id": "abc"},
	}))

	event := readEvent(t, receiver)
	assert.Equal(t, EventCommunityActivity, event.Type)
}
