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

func newActionFixture(t *testing.T, userIDs ...string) (*ActionController, services.ProfileStore) {
	t.Helper()

	profiles := services.NewMemoryProfileStore()
	ledger := services.NewMemoryMatchLedger()
	relay := &services.RelayService{Profiles: profiles, Ledger: ledger, Notifier: services.LogNotifier{}}
	engine := &services.MatchEngine{Ledger: ledger, Relay: relay}

	for _, userID := range userIDs {
		err := profiles.PutProfile(context.Background(), models.UserProfile{UserID: userID, Orientation: "Гетеро"})
		require.NoError(t, err)
	}
	return NewActionController(engine), profiles
}

func postAction(t *testing.T, controller *ActionController, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/action", bytes.NewBuffer(payload))
	rr := httptest.NewRecorder()
	controller.HandleAction(rr, req)
	return rr
}

func TestHandleActionLikePending(t *testing.T) {
	controller, _ := newActionFixture(t, "dana", "erik")

	rr := postAction(t, controller, map[string]string{
		"userId": "dana", "targetUserId": "erik", "action": "liked",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Equal(t, models.OutcomePending, response["outcome"])
}

func TestHandleActionMutualLike(t *testing.T) {
	controller, profiles := newActionFixture(t, "dana", "erik")

	postAction(t, controller, map[string]string{"userId": "dana", "targetUserId": "erik", "action": "liked"})
	rr := postAction(t, controller, map[string]string{"userId": "erik", "targetUserId": "dana", "action": "liked"})
	require.Equal(t, http.StatusOK, rr.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Equal(t, models.OutcomeNewMatch, response["outcome"])
	require.Equal(t, "It's a match!", response["message"])

	dana, err := profiles.GetProfile(context.Background(), "dana")
	require.NoError(t, err)
	require.Equal(t, "erik", dana.ActiveMatch)
}

func TestHandleActionDislikeIsNotRecorded(t *testing.T) {
	controller, _ := newActionFixture(t, "dana", "erik")

	rr := postAction(t, controller, map[string]string{
		"userId": "dana", "targetUserId": "erik", "action": "notliked",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	// A later like from the other side still only yields a pending record.
	rr = postAction(t, controller, map[string]string{
		"userId": "erik", "targetUserId": "dana", "action": "liked",
	})
	var response map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Equal(t, models.OutcomePending, response["outcome"])
}

func TestHandleActionValidation(t *testing.T) {
	controller, _ := newActionFixture(t, "dana", "erik")

	rr := postAction(t, controller, map[string]string{"userId": "dana"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postAction(t, controller, map[string]string{
		"userId": "dana", "targetUserId": "erik", "action": "superliked",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postAction(t, controller, map[string]string{
		"userId": "dana", "targetUserId": "dana", "action": "liked",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
