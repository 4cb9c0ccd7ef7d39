package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"amora_server/services"
)

// MediaController handles HTTP requests for profile media uploads
type MediaController struct {
	Media *services.MediaService
}

// NewMediaController creates a new MediaController instance
func NewMediaController(media *services.MediaService) *MediaController {
	return &MediaController{Media: media}
}

// GeneratePresignedURL generates a presigned URL for media uploads
func (mc *MediaController) GeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	url, key, err := mc.Media.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Error generating pre-signed URL: %v", err)
		http.Error(w, "Failed to generate pre-signed URL", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"url": url, "key": key})
}

// GetPresignedReadURL generates a presigned URL for reading a media object
func (mc *MediaController) GetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	url, err := mc.Media.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		http.Error(w, "Failed to generate read pre-signed URL", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
