package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PORT          string
	MONGO_URI     string
	MONGO_DB      string
	JWT_SECRET    string
	ES_URL        string
	ES_USER       string
	ES_PASSWORD   string
	KAFKA_ADDRESS string
	LOG_LEVEL     string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		PORT:          getenv("PORT", "4000"),
		MONGO_URI:     os.Getenv("MONGO_URI"),
		MONGO_DB:      getenv("MONGO_DB", "catalog"),
		JWT_SECRET:    os.Getenv("JWT_SECRET"),
		ES_URL:        os.Getenv("ES_URL"),
		ES_USER:       os.Getenv("ES_USER"),
		ES_PASSWORD:   os.Getenv("ES_PASSWORD"),
		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),
		LOG_LEVEL:     getenv("LOG_LEVEL", "info"),
	}

	if config.MONGO_URI == "" {
		return nil, fmt.Errorf("MONGO_URI is empty (check your .env)")
	}
	if config.JWT_SECRET == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty (check your .env)")
	}

	return config, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
