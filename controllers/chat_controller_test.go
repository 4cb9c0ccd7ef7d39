package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"amora_server/models"
	"amora_server/services"

	"github.com/stretchr/testify/require"
)

func newChatFixture(t *testing.T) (*ChatController, *services.MatchEngine) {
	t.Helper()

	profiles := services.NewMemoryProfileStore()
	ledger := services.NewMemoryMatchLedger()
	relay := &services.RelayService{Profiles: profiles, Ledger: ledger, Notifier: services.LogNotifier{}}
	engine := &services.MatchEngine{Ledger: ledger, Relay: relay}

	ctx := context.Background()
	for _, userID := range []string{"dana", "erik"} {
		require.NoError(t, profiles.PutProfile(ctx, models.UserProfile{UserID: userID, Orientation: "Гетеро"}))
	}
	return NewChatController(relay), engine
}

func postMessage(t *testing.T, controller *ChatController, userID, content string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(map[string]string{"userId": userID, "content": content})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", bytes.NewBuffer(payload))
	rr := httptest.NewRecorder()
	controller.HandleSendMessage(rr, req)
	return rr
}

func TestHandleSendMessageDelivered(t *testing.T) {
	controller, engine := newChatFixture(t)
	ctx := context.Background()

	_, err := engine.RecordLike(ctx, "dana", "erik")
	require.NoError(t, err)
	_, err = engine.RecordLike(ctx, "erik", "dana")
	require.NoError(t, err)

	rr := postMessage(t, controller, "dana", "hi")
	require.Equal(t, http.StatusOK, rr.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Equal(t, models.RelayDelivered, response["result"])
}

func TestHandleSendMessageWithoutMatch(t *testing.T) {
	controller, _ := newChatFixture(t)

	rr := postMessage(t, controller, "dana", "hello?")
	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestHandleSendMessageUnknownUser(t *testing.T) {
	controller, _ := newChatFixture(t)

	rr := postMessage(t, controller, "ghost", "boo")
	require.Equal(t, http.StatusNotFound, rr.Code)
}
