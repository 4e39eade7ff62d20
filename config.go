package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/robalobadob/numguess/internal/httpserver"
)

// config is read once from the environment (after godotenv.Load).
type config struct {
	LogLevel string
	Reveal   bool
	Port     string
	DBPath   string
	HTTP     httpserver.Config
}

func loadConfig() config {
	return config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Reveal:   envBool("GUESS_REVEAL", true),
		Port:     getEnv("PORT", "5175"),
		DBPath:   getEnv("DB_PATH", "./data/numguess.db"),
		HTTP: httpserver.Config{
			JWTSecret:      os.Getenv("JWT_SECRET"),
			JWTExpiresDays: envInt("JWT_EXPIRES_DAYS", 14),
			CookieName:     os.Getenv("COOKIE_NAME"),
			ClientOrigin:   os.Getenv("CLIENT_ORIGIN"),
			Production:     os.Getenv("NODE_ENV") == "production",
			DailySalt:      os.Getenv("DAILY_SALT"),
		},
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return n
	}
	return def
}

func envBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
