package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port     string
	DBPath   string
	LogLevel string

	BackupDir      string
	BackupKeepDays int
	BackupHour     int
	BackupMinute   int

	ReconcileInterval time.Duration
	ReconcileCooldown time.Duration

	EmailDomain   string
	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	CompanyCacheTTL time.Duration
}

func Load() Config {
	return Config{
		Port:     mustEnv("PORT", "7070"),
		DBPath:   mustEnv("DB_PATH", "instance/cedentes.db"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		BackupDir:      mustEnv("BACKUP_DIR", "backups"),
		BackupKeepDays: mustEnvInt("BACKUP_KEEP_DAYS", 7),
		BackupHour:     mustEnvInt("BACKUP_HOUR", 2),
		BackupMinute:   mustEnvInt("BACKUP_MINUTE", 0),

		ReconcileInterval: time.Duration(mustEnvInt("RECONCILE_INTERVAL_MINUTES", 60)) * time.Minute,
		ReconcileCooldown: time.Duration(mustEnvInt("RECONCILE_COOLDOWN_MINUTES", 5)) * time.Minute,

		EmailDomain:   mustEnv("EMAIL_DOMAIN", "goldcreditsa.com.br"),
		JWTSecret:     mustEnv("JWT_SECRET", ""),
		AdminEmail:    mustEnv("ADMIN_EMAIL", "admin@goldcreditsa.com.br"),
		AdminPassword: mustEnv("ADMIN_PASSWORD", ""),

		CompanyCacheTTL: time.Duration(mustEnvInt("COMPANY_CACHE_TTL_HOURS", 10)) * time.Hour,
	}
}

func mustEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func mustEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
