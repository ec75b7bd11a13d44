package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment. A missing
// .env file is fine in production, values then come from the real env.
type Config struct {
	Port      string
	JWTSecret string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	PageSize     int
	CacheTTL     time.Duration
	AdminToken   string
	RedisAddr    string
	RedisPass    string
	NATSURL      string
	MediaRoot    string
	PublicOrigin string
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

func GetR2Config() *R2Config {
	return &R2Config{
		AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("CLOUDFLARE_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("CLOUDFLARE_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("CLOUDFLARE_BUCKET_NAME"),
		PublicURL:       os.Getenv("CLOUDFLARE_PUBLIC_URL"),
		Region:          "auto",
	}
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:      getenv("PORT", "8080"),
		JWTSecret: getenv("JWT_SECRET", "dev-secret"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getenv("DB_PORT", "5432"),

		PageSize:     getenvInt("PAGE_SIZE", 10),
		CacheTTL:     getenvDuration("CACHE_TTL", 20*time.Second),
		AdminToken:   os.Getenv("ADMIN_TOKEN"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		NATSURL:      os.Getenv("NATS_URL"),
		MediaRoot:    getenv("MEDIA_ROOT", "./media"),
		PublicOrigin: getenv("PUBLIC_ORIGIN", ""),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
