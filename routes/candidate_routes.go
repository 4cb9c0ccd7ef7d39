package routes

import (
	"amora_server/controllers"
	"amora_server/services"

	"github.com/gorilla/mux"
)

// RegisterCandidateRoutes sets up routes for profile browsing under /api/candidates
func RegisterCandidateRoutes(r *mux.Router, candidates services.CandidateProvider) {
	controller := controllers.NewCandidateController(candidates)

	candidateRouter := r.PathPrefix("/api/candidates").Subrouter()
	candidateRouter.HandleFunc("/{userId}", controller.HandleNextCandidate).Methods("GET")
}
