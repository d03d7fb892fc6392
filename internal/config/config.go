package config

import (
	"log"
	"os"
)

type Config struct {
	Port     string
	APIBase  string
	APIKey   string
	StateDSN string
	MediaDir string
	LogFile  string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	apiBase := os.Getenv("API_BASE_URL")
	if apiBase == "" {
		apiBase = "http://localhost:4000/api"
	}
	apiKey := os.Getenv("API_KEY")
	dsn := os.Getenv("STATE_DSN")
	if dsn == "" {
		dsn = "opticart-state.db"
	} // sqlite file in project root
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./opticart.log" // default log sink in project root
	}

	cfg := Config{Port: port, APIBase: apiBase, APIKey: apiKey, StateDSN: dsn, MediaDir: media, LogFile: logFile}
	log.Printf("[config] PORT=%s API_BASE_URL=%s STATE_DSN=%s MEDIA_DIR=%s LOG_FILE=%s", cfg.Port, cfg.APIBase, cfg.StateDSN, cfg.MediaDir, cfg.LogFile)
	return cfg
}
