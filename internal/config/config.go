// Package config lee la configuración del servicio desde variables de entorno.
//
// Variables:
//   - PORT: puerto HTTP (default: 8080)
//   - DB_DSN: DSN de Postgres; vacío = registro en memoria
//   - LOG_LEVEL: debug|info|warn|error (default: info)
//   - LOG_FORMAT: text|json (default: text)
//   - APP_NAME: nombre en logs y traces (default: pet-hotel-registry)
//   - REDIRECT_DELAY: demora de la vuelta al dashboard tras un alta (default: 1500ms)
//   - SESSION_TTL: inactividad tolerada por sesión (default: 30m)
//   - OTLP_ENDPOINT: collector OTLP gRPC host:port; vacío = tracing apagado
//   - SEED_FILE: fixture YAML alternativo; vacío = seed embebido
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBDSN string

	LogLevel  string
	LogFormat string
	AppName   string

	RedirectDelay time.Duration
	SessionTTL    time.Duration

	OTLPEndpoint string

	SeedFile string
}

// Load lee .env si existe y luego el entorno.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		DBDSN:         getEnv("DB_DSN", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		AppName:       getEnv("APP_NAME", "pet-hotel-registry"),
		RedirectDelay: getEnvDuration("REDIRECT_DELAY", 1500*time.Millisecond),
		SessionTTL:    getEnvDuration("SESSION_TTL", 30*time.Minute),
		OTLPEndpoint:  getEnv("OTLP_ENDPOINT", ""),
		SeedFile:      getEnv("SEED_FILE", ""),
	}
}

// TracingEnabled indica si hay collector configurado.
func (c Config) TracingEnabled() bool { return c.OTLPEndpoint != "" }

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
