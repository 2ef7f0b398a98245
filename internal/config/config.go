package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	MongoURI       string
	MongoDatabase  string
	RabbitMQURI    string
	RabbitExchange string
	VoiceWaitMS    time.Duration
	ServiceName    string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:           getEnvOrDefault("PORT", "6677"),
		GinMode:        getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:       getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnvOrDefault("MONGO_DATABASE", "reading_service"),
		RabbitMQURI:    getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
		VoiceWaitMS:    getDurationMS("VOICE_WAIT_MS", 650),
		ServiceName:    getEnvOrDefault("SERVICE_NAME", "reading-service"),
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationMS(key string, fallbackMS int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallbackMS) * time.Millisecond
	}
	d, err := time.ParseDuration(v + "ms")
	if err != nil {
		log.Printf("Invalid %s=%q, using default %dms", key, v, fallbackMS)
		return time.Duration(fallbackMS) * time.Millisecond
	}
	return d
}
