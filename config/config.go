package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Env           string
	Port          string
	DBURL         string
	JWTSecret     string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	SMTPFrom      string
	TelegramToken string
	TelegramChat  string
	CloudinaryURL string
}

// Load reads configuration from the environment. A local .env file is
// picked up when present. Missing JWT_SECRET or DATABASE_URL aborts the
// process: running without them would issue unverifiable sessions.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:           getEnv("ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		DBURL:         mustGetEnv("DATABASE_URL"),
		JWTSecret:     mustGetEnv("JWT_SECRET"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:      getEnv("SMTP_FROM", ""),
		TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChat:  getEnv("TELEGRAM_CHAT_ID", ""),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
	}
}

// IsProduction controls the Secure/SameSite attributes of the session cookie.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatal().Str("key", key).Msg("missing required environment variable")
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Warn().Str("key", key).Int("default", defaultVal).Msg("invalid integer value, using default")
		return defaultVal
	}
	return val
}
