package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	Analytics AnalyticsConfig
}

type ServerConfig struct {
	Host  string
	Port  int
	Debug bool
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type LogConfig struct {
	Dir string
}

type AnalyticsConfig struct {
	// SpecialPosition - колонка, для которой среднее считается только по
	// участникам с положительным значением
	SpecialPosition string
	CacheTTL        time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host: getEnv("APP_HOST", "127.0.0.1"),
			Port: getEnvInt("APP_PORT", 12000),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "position"),
			Password: getEnv("DB_PASSWORD", "position"),
			DBName:   getEnv("DB_NAME", "position_helper"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Log: LogConfig{
			Dir: getEnv("LOG_DIR", "logs"),
		},
		Analytics: AnalyticsConfig{
			SpecialPosition: getEnv("SPECIAL_POSITION", "SW 배정 횟수"),
			CacheTTL:        getEnvDuration("CACHE_TTL", 300*time.Second),
		},
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

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
