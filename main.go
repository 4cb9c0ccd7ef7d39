package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"amora_server/config"
	"amora_server/routes"
	"amora_server/services"
	"amora_server/ws"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	// Realtime notification hub
	hub := ws.NewHub()
	go hub.Run()

	var notifier services.Notifier = hub

	// Stores: DynamoDB when an AWS region is configured, in-memory otherwise.
	var (
		profiles   services.ProfileStore
		ledger     services.MatchLedger
		candidates services.CandidateProvider
		media      *services.MediaService
	)
	if cfg.AWSRegion != "" {
		log.Println("Initializing DynamoDB client...")
		dynamoService := &services.DynamoService{Client: services.InitializeDynamoDBClient()}
		profileStore := &services.DynamoProfileStore{Dynamo: dynamoService}
		profiles = profileStore
		ledger = &services.DynamoMatchLedger{Dynamo: dynamoService}
		candidates = &services.DynamoCandidateService{Dynamo: dynamoService, Profiles: profileStore}
		log.Println("DynamoDB client initialized.")

		if cfg.MediaBucket != "" {
			awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
			if err != nil {
				log.Fatalf("Failed to load AWS config: %v", err)
			}
			media = services.NewMediaService(s3.NewFromConfig(awsCfg), cfg.MediaBucket)
		}
	} else {
		log.Println("AWS_REGION not set, running with in-memory stores")
		memory := services.NewMemoryProfileStore()
		profiles = memory
		ledger = services.NewMemoryMatchLedger()
		candidates = memory
		notifier = services.MultiNotifier{hub, services.LogNotifier{}}
	}

	// Core services
	relay := &services.RelayService{Profiles: profiles, Ledger: ledger, Notifier: notifier, Quota: cfg.MessageQuota}
	engine := &services.MatchEngine{Ledger: ledger, Relay: relay}
	handshake := &services.HandshakeService{Profiles: profiles, Ledger: ledger, Notifier: notifier}

	// Initialize the router
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Amora")
	}).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, w, r)
	}).Methods("GET")

	// Register routes
	routes.RegisterProfileRoutes(r, profiles)
	routes.RegisterCandidateRoutes(r, candidates)
	routes.RegisterActionRoutes(r, engine)
	routes.RegisterChatRoutes(r, relay)
	routes.RegisterContactRoutes(r, handshake)
	if media != nil {
		routes.RegisterMediaRoutes(r, media)
	}

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
