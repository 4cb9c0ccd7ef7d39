package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"amora_server/services"

	"github.com/gorilla/mux"
)

// CandidateController handles HTTP requests for profile browsing
type CandidateController struct {
	Candidates services.CandidateProvider
}

// NewCandidateController creates a new CandidateController instance
func NewCandidateController(candidates services.CandidateProvider) *CandidateController {
	return &CandidateController{Candidates: candidates}
}

// HandleNextCandidate returns a random same-orientation profile for browsing
func (cc *CandidateController) HandleNextCandidate(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	candidate, err := cc.Candidates.Next(r.Context(), userID)
	if errors.Is(err, services.ErrNotFound) {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Error picking candidate for %s: %v", userID, err)
		http.Error(w, "Failed to fetch candidate", http.StatusInternalServerError)
		return
	}

	if candidate == nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "No profiles available right now. Try again later."})
		return
	}

	json.NewEncoder(w).Encode(candidate)
}
