package config

import (
	"fmt"
	"os"
	"time"

	"microblog/utils"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	ServerAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr         string
	RateLimit         int
	RateLimitWindow   time.Duration
	ReconcileInterval time.Duration
}

// Load reads the environment, with a .env file as optional local override.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}

	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":3333"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USERNAME"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "microblog"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RateLimit: utils.IntFromString(os.Getenv("RATE_LIMIT"), 60),
		RateLimitWindow: time.Duration(
			utils.IntFromString(os.Getenv("RATE_LIMIT_WINDOW_SECONDS"), 60),
		) * time.Second,
		ReconcileInterval: time.Duration(
			utils.IntFromString(os.Getenv("RECONCILE_INTERVAL_MINUTES"), 60),
		) * time.Minute,
	}
}

// OpenDB connects to postgres. TranslateError makes unique violations
// surface as gorm.ErrDuplicatedKey, which storage turns into conflicts.
func (c *Config) OpenDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
