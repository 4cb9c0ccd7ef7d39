package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHubNotifyDeliversToUserConnections(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 1), userID: "dana"}
	other := &Client{hub: hub, send: make(chan []byte, 1), userID: "erik"}
	hub.register <- client
	hub.register <- other

	hub.Notify("dana", "🎉 It's a match!")

	select {
	case payload := <-client.send:
		var notification Notification
		require.NoError(t, json.Unmarshal(payload, &notification))
		require.Equal(t, "notification", notification.Type)
		require.Equal(t, "🎉 It's a match!", notification.Text)
	case <-time.After(time.Second):
		t.Fatal("notification was not delivered")
	}

	select {
	case payload := <-other.send:
		t.Fatalf("unexpected delivery to other user: %s", payload)
	default:
	}
}

func TestHubNotifyOfflineUserDoesNotBlock(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			hub.Notify("nobody", "hello?")
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on an offline user")
	}
}
