package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort int

	// DatabaseURL указывает на Postgres (postgres://...); если пуст,
	// используется файловый sqlite по DatabasePath.
	DatabaseURL  string
	DatabasePath string

	JWTSecret []byte

	LogLevel  string
	StaticDir string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		ServerPort:   EnvIntDefault("PORT", 8080),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabasePath: EnvDefault("DATABASE_PATH", "bakery.db"),
		JWTSecret:    []byte(os.Getenv("JWT_SECRET")),
		LogLevel:     EnvDefault("LOG_LEVEL", "info"),
		StaticDir:    EnvDefault("STATIC_DIR", "web"),
	}

	return cfg
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
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

// MustNonEmptyBytes обрывает запуск без обязательного секрета: небезопасного
// значения по умолчанию здесь нет.
func MustNonEmptyBytes(value []byte, envName string) {
	if len(value) == 0 {
		log.Fatalf("missing required env %s", envName)
	}
}
