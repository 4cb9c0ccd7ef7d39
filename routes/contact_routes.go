package routes

import (
	"amora_server/controllers"
	"amora_server/services"

	"github.com/gorilla/mux"
)

// RegisterContactRoutes sets up routes for the contact exchange under /api/contact
func RegisterContactRoutes(r *mux.Router, handshake *services.HandshakeService) {
	controller := controllers.NewContactController(handshake)

	contactRouter := r.PathPrefix("/api/contact").Subrouter()
	contactRouter.HandleFunc("/decision", controller.HandleDecision).Methods("POST")
	contactRouter.HandleFunc("/cancel", controller.HandleCancel).Methods("POST")
}
