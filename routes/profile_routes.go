package routes

import (
	"amora_server/controllers"
	"amora_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up routes for profile operations under /api/profiles
func RegisterProfileRoutes(r *mux.Router, profiles services.ProfileStore) {
	controller := controllers.NewProfileController(profiles)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.HandleAddProfile).Methods("POST")
	profileRouter.HandleFunc("/{userId}", controller.HandleGetProfile).Methods("GET")
}
