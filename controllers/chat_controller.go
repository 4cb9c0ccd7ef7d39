package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"amora_server/models"
	"amora_server/services"
)

// ChatController handles HTTP requests for the anonymous relay
type ChatController struct {
	Relay *services.RelayService
}

// NewChatController creates a new ChatController instance
func NewChatController(relay *services.RelayService) *ChatController {
	return &ChatController{Relay: relay}
}

// HandleSendMessage relays an anonymous message to the sender's current match
func (cc *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID  string `json:"userId"`
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if request.UserID == "" || request.Content == "" {
		http.Error(w, "UserId and Content are required", http.StatusBadRequest)
		return
	}

	result, err := cc.Relay.RelayMessage(r.Context(), request.UserID, request.Content)
	if errors.Is(err, services.ErrNotFound) {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, services.ErrInvalidTransition) {
		http.Error(w, "You have no active chat", http.StatusConflict)
		return
	}
	if err != nil {
		log.Printf("Error relaying message from %s: %v", request.UserID, err)
		http.Error(w, "Failed to relay message", http.StatusInternalServerError)
		return
	}

	response := map[string]string{"result": result, "message": "Message delivered"}
	if result == models.RelayQuotaExhausted {
		response["message"] = "Message quota exhausted"
	}
	json.NewEncoder(w).Encode(response)
}
