package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"amora_server/services"
)

// ContactController handles HTTP requests for the contact exchange handshake
type ContactController struct {
	Handshake *services.HandshakeService
}

// NewContactController creates a new ContactController instance
func NewContactController(handshake *services.HandshakeService) *ContactController {
	return &ContactController{Handshake: handshake}
}

// HandleDecision records an accept/decline answer to the contact exchange offer
func (cc *ContactController) HandleDecision(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
		Accept bool   `json:"accept"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		http.Error(w, "UserId is required", http.StatusBadRequest)
		return
	}

	err := cc.Handshake.Decide(r.Context(), request.UserID, request.Accept)
	if !cc.writeHandshakeError(w, request.UserID, err) {
		return
	}

	message := "Contact shared with your match"
	if !request.Accept {
		message = "Alright, good luck out there!"
	}
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// HandleCancel lets a user leave their current session unilaterally
func (cc *ContactController) HandleCancel(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		http.Error(w, "UserId is required", http.StatusBadRequest)
		return
	}

	err := cc.Handshake.Cancel(r.Context(), request.UserID)
	if !cc.writeHandshakeError(w, request.UserID, err) {
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "You left the chat"})
}

// writeHandshakeError maps handshake errors onto HTTP responses. Returns true
// when the caller may proceed with a success response.
func (cc *ContactController) writeHandshakeError(w http.ResponseWriter, userID string, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, services.ErrNotFound):
		http.Error(w, "Profile not found", http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidTransition):
		http.Error(w, "No contact exchange is pending for you", http.StatusConflict)
	default:
		log.Printf("Error resolving handshake for %s: %v", userID, err)
		http.Error(w, "Failed to resolve handshake", http.StatusInternalServerError)
	}
	return false
}
