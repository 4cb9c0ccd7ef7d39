package routes

import (
	"amora_server/controllers"
	"amora_server/services"

	"github.com/gorilla/mux"
)

// RegisterMediaRoutes sets up routes for media upload/read URLs
func RegisterMediaRoutes(r *mux.Router, media *services.MediaService) {
	controller := controllers.NewMediaController(media)

	r.HandleFunc("/generate-presigned-url", controller.GeneratePresignedURL).Methods("POST")
	r.HandleFunc("/get-presigned-read-url", controller.GetPresignedReadURL).Methods("POST")
}
