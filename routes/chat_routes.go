package routes

import (
	"amora_server/controllers"
	"amora_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for the anonymous relay under /api/chat
func RegisterChatRoutes(r *mux.Router, relay *services.RelayService) {
	controller := controllers.NewChatController(relay)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/message", controller.HandleSendMessage).Methods("POST")
}
