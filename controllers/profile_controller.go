package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"amora_server/models"
	"amora_server/services"

	"github.com/gorilla/mux"
)

// ProfileController handles HTTP requests for user profiles
type ProfileController struct {
	Profiles services.ProfileStore
}

// NewProfileController creates a new ProfileController instance
func NewProfileController(profiles services.ProfileStore) *ProfileController {
	return &ProfileController{Profiles: profiles}
}

// HandleAddProfile stores the profile produced by onboarding
func (pc *ProfileController) HandleAddProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if profile.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}
	if len(profile.MediaRefs) < 1 || len(profile.MediaRefs) > 3 {
		http.Error(w, "Between 1 and 3 media references are required", http.StatusBadRequest)
		return
	}

	// Session fields belong to the relay, never to onboarding.
	profile.ActiveMatch = ""
	profile.MessageCount = 0

	if err := pc.Profiles.PutProfile(r.Context(), profile); err != nil {
		log.Printf("Error storing profile for %s: %v", profile.UserID, err)
		http.Error(w, "Failed to store profile", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(profile)
}

// HandleGetProfile retrieves a profile by userId
func (pc *ProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := pc.Profiles.GetProfile(r.Context(), userID)
	if errors.Is(err, services.ErrNotFound) {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Error fetching profile for %s: %v", userID, err)
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(profile)
}
