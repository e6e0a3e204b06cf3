package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	UsersDBPath  string
	ModelsDBPath string
	ShoeDBPath   string

	ServerPort    string
	SessionSecret string

	AdminUsername string
	AdminPassword string

	LogLevel string
	LogJSON  bool
	LogFile  string

	// политика уникальности серийных номеров (UNIQUE_SERIALS)
	UniqueSerials bool

	LoginRateRPS   float64
	LoginRateBurst int
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		UsersDBPath:    getenv("USERS_DB_PATH", "database/users.db"),
		ModelsDBPath:   getenv("MODELS_DB_PATH", "database/models.db"),
		ShoeDBPath:     getenv("SHOE_DB_PATH", "database/shoes.db"),
		ServerPort:     getenv("SERVER_PORT", "8080"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		AdminUsername:  getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getenv("ADMIN_PASSWORD", "shoepass"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogJSON:        getenvBool("LOG_JSON", false),
		LogFile:        os.Getenv("LOG_FILE"),
		UniqueSerials:  getenvBool("UNIQUE_SERIALS", false),
		LoginRateRPS:   getenvFloat("LOGIN_RATE_RPS", 5),
		LoginRateBurst: getenvInt("LOGIN_RATE_BURST", 10),
	}

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
