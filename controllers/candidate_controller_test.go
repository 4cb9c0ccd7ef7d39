package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"amora_server/models"
	"amora_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func getCandidate(t *testing.T, store *services.MemoryProfileStore, userID string) *httptest.ResponseRecorder {
	t.Helper()

	controller := NewCandidateController(store)
	r := mux.NewRouter()
	r.HandleFunc("/api/candidates/{userId}", controller.HandleNextCandidate).Methods("GET")

	req := httptest.NewRequest(http.MethodGet, "/api/candidates/"+userID, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHandleNextCandidate(t *testing.T) {
	store := services.NewMemoryProfileStore()
	ctx := context.Background()
	require.NoError(t, store.PutProfile(ctx, models.UserProfile{UserID: "dana", Orientation: "Би"}))
	require.NoError(t, store.PutProfile(ctx, models.UserProfile{UserID: "erik", Orientation: "Би"}))

	rr := getCandidate(t, store, "dana")
	require.Equal(t, http.StatusOK, rr.Code)

	var candidate models.UserProfile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &candidate))
	require.Equal(t, "erik", candidate.UserID)
}

func TestHandleNextCandidateEmptyPool(t *testing.T) {
	store := services.NewMemoryProfileStore()
	require.NoError(t, store.PutProfile(context.Background(), models.UserProfile{UserID: "dana", Orientation: "Би"}))

	rr := getCandidate(t, store, "dana")
	require.Equal(t, http.StatusNotFound, rr.Code)
}
