package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	FirebaseApiKey  string

	CloudinaryCloudName   string
	CloudinaryImagePreset string
	CloudinaryRawPreset   string

	MercadoPagoAccessToken string
	MercadoPagoEnvironment string

	RedisURL string

	FrontendBaseURL string
	PublicBaseURL   string

	// Sweep intervals in minutes.
	FeaturedSweepInterval     int
	SubscriptionSweepInterval int
	CommentSweepInterval      int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:  getEnv("FIREBASE_WEB_API_KEY", ""),

		CloudinaryCloudName:   getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryImagePreset: getEnv("CLOUDINARY_IMAGE_PRESET", ""),
		CloudinaryRawPreset:   getEnv("CLOUDINARY_RAW_PRESET", ""),

		MercadoPagoAccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
		MercadoPagoEnvironment: getEnv("MERCADOPAGO_ENVIRONMENT", "sandbox"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		FrontendBaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:3000"),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		FeaturedSweepInterval:     getEnvAsInt("FEATURED_SWEEP_INTERVAL_MINUTES", 30),
		SubscriptionSweepInterval: getEnvAsInt("SUBSCRIPTION_SWEEP_INTERVAL_MINUTES", 60),
		CommentSweepInterval:      getEnvAsInt("COMMENT_SWEEP_INTERVAL_MINUTES", 360),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
