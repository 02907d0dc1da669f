package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	SupabaseURL        string
	SupabaseServiceKey string
	Port               string
	Environment        string
	AllowedOrigins     []string
	PublicDir          string
	JWTSecret          string
	AdminPasswordHash  string
	TelegramBotToken   string
	TelegramChatID     int64
}

// New reads configuration from the environment. The Supabase endpoint and
// service-role key are mandatory; everything else has a default or is
// optional.
func New() (*Config, error) {
	allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := []string{"http://localhost:3000"}
	if allowedOriginsStr != "" {
		allowedOrigins = strings.Split(allowedOriginsStr, ",")
	}

	cfg := &Config{
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		Port:               getEnvOrDefault("PORT", "3000"),
		Environment:        getEnvOrDefault("ENVIRONMENT", "development"),
		AllowedOrigins:     allowedOrigins,
		PublicDir:          getEnvOrDefault("PUBLIC_DIR", "public"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AdminPasswordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		TelegramBotToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		if _, err := fmt.Sscanf(chatID, "%d", &cfg.TelegramChatID); err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %v", err)
		}
	}

	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is not set")
	}
	if cfg.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is not set")
	}

	return cfg, nil
}

// AdminAuthEnabled reports whether admin routes require a login. Without
// both a signing secret and a password hash the guard is a pass-through,
// which is the local development setup.
func (c *Config) AdminAuthEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
