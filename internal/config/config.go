package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the service configuration. Defaults can be overridden
// via environment variables or a local .env file:
//
//	PORT / GAME_PORT  websocket duel server port (default: 8081)
//	API_PORT          roster/data API port       (default: 8080)
//	DATA_API_BASE     roster API base URL        (default: http://localhost:8080)
//	ROSTER_DIR        gunslinger library dir     (default: ./roster)
type Config struct {
	GameListenAddr string
	APIListenAddr  string
	DataAPIBase    string
	RosterDir      string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the environment (and .env, when present).
func Load() *Config {
	_ = godotenv.Load()

	gamePort := os.Getenv("PORT")
	if gamePort == "" {
		gamePort = getenv("GAME_PORT", "8081")
	}
	return &Config{
		GameListenAddr: ":" + gamePort,
		APIListenAddr:  ":" + getenv("API_PORT", "8080"),
		DataAPIBase:    getenv("DATA_API_BASE", "http://localhost:8080"),
		RosterDir:      getenv("ROSTER_DIR", "./roster"),
	}
}
