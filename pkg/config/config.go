package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Env         string
	PostgresURL string
	JWTSecret   string
	LogLevel    string
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	MailFrom    string
	DomainName  string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		PostgresURL: getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:   getEnv("JWT_SECRET", "supersecretjwtkey"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SMTPHost:    getEnv("SMTP_HOST", "localhost"),
		SMTPPort:    getEnvInt("SMTP_PORT", 587),
		SMTPUser:    getEnv("SMTP_USER", ""),
		SMTPPass:    getEnv("SMTP_PASS", ""),
		MailFrom:    getEnv("MAIL_FROM", "noreply@ideacreators.local"),
		DomainName:  getEnv("DOMAIN_NAME", "127.0.0.1:8080"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
