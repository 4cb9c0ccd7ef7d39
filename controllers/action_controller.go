package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"amora_server/models"
	"amora_server/services"
)

// ActionController handles HTTP requests for like/dislike actions
type ActionController struct {
	Engine *services.MatchEngine
}

// NewActionController creates a new ActionController instance
func NewActionController(engine *services.MatchEngine) *ActionController {
	return &ActionController{Engine: engine}
}

// HandleAction processes user actions such as "liked", "notliked"
func (ac *ActionController) HandleAction(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID       string `json:"userId"`
		TargetUserID string `json:"targetUserId"`
		Action       string `json:"action"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if request.UserID == "" || request.TargetUserID == "" || request.Action == "" {
		http.Error(w, "UserId, TargetUserId, and Action are required", http.StatusBadRequest)
		return
	}

	switch request.Action {
	case models.ActionLiked:
		outcome, err := ac.Engine.RecordLike(r.Context(), request.UserID, request.TargetUserID)
		if errors.Is(err, services.ErrInvalidTransition) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, services.ErrConflict) {
			http.Error(w, "Please retry the like action", http.StatusConflict)
			return
		}
		if err != nil {
			log.Printf("Error recording like %s -> %s: %v", request.UserID, request.TargetUserID, err)
			http.Error(w, "Failed to record like", http.StatusInternalServerError)
			return
		}

		response := map[string]string{"outcome": outcome, "message": "Like recorded"}
		if outcome == models.OutcomeNewMatch {
			response["message"] = "It's a match!"
		}
		json.NewEncoder(w).Encode(response)

	case models.ActionNotLiked:
		// Dislikes are never recorded and never block a future match.
		json.NewEncoder(w).Encode(map[string]string{"message": "Dislike noted"})

	default:
		http.Error(w, "Invalid action", http.StatusBadRequest)
	}
}
