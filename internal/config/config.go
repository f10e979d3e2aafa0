package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries the process-wide settings for the bot: where the remote
// workflow, translation and voice backends live, and the fixed workflow
// credential triple attached to every inference call.
type Config struct {
	Port     string
	LogLevel string

	WorkflowHost   string
	WorkflowAPIKey string
	WorkflowUserID string
	WorkflowAppID  string
	WorkflowID     string

	TranslateHost string
	VoiceHost     string
}

func LoadEnv() error {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println(fmt.Printf("Error loading .env file:%v", err))
		return err
	}
	return nil
}

func GetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Environment variable %s is required but not set", key)
	}
	return value
}

func GetEnvOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

// New builds a Config from the environment. Backend hosts and the workflow
// credential triple are required; the process exits if any is missing.
func New() Config {
	return Config{
		Port:     GetEnvOrDefault("PORT", "8080"),
		LogLevel: GetEnvOrDefault("LOG_LEVEL", "info"),

		WorkflowHost:   GetEnv("WORKFLOW_API_HOST"),
		WorkflowAPIKey: GetEnv("WORKFLOW_API_KEY"),
		WorkflowUserID: GetEnv("WORKFLOW_USER_ID"),
		WorkflowAppID:  GetEnv("WORKFLOW_APP_ID"),
		WorkflowID:     GetEnv("WORKFLOW_ID"),

		TranslateHost: GetEnv("TRANSLATE_API_HOST"),
		VoiceHost:     GetEnv("VOICE_API_HOST"),
	}
}
