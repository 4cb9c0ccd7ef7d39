package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AWSRegion      string   // empty selects the in-memory stores (local development)
	MediaBucket    string   // S3 bucket holding profile media
	MessageQuota   int      // anonymous messages per side per session
	AllowedOrigins []string // CORS origins
}

// Load reads configuration from the environment, with a .env file as the
// local-development source.
func Load() *Config {
	_ = godotenv.Load()

	quota := 5
	if raw := getEnv("MESSAGE_QUOTA", ""); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			log.Printf("Ignoring invalid MESSAGE_QUOTA %q", raw)
		} else {
			quota = parsed
		}
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		AWSRegion:      getEnv("AWS_REGION", ""),
		MediaBucket:    getEnv("S3_BUCKET_NAME", ""),
		MessageQuota:   quota,
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func parseOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
