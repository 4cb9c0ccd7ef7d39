package routes

import (
	"amora_server/controllers"
	"amora_server/services"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up routes for like/dislike actions under /api/action
func RegisterActionRoutes(r *mux.Router, engine *services.MatchEngine) {
	controller := controllers.NewActionController(engine)

	actionRouter := r.PathPrefix("/api/action").Subrouter()
	actionRouter.HandleFunc("", controller.HandleAction).Methods("POST")
}
