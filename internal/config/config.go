package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries every environment-derived setting for both binaries.
// Nothing outside this package reads process environment directly.
type Config struct {
	Port        string
	UploadPort  string
	Environment string

	DatabaseURL    string
	DBMaxOpenConns int
	DBMaxIdleConns int
	RedisURL       string

	JWTSecret string

	// UploadURL is the public base prefixed to stored filenames at read
	// time. UploadServerURL is where the metadata service reaches the
	// asset store's delete endpoint.
	UploadURL       string
	UploadServerURL string

	// UploadDir is the asset store's storage root. Profile pictures go
	// into the profile/ subdirectory beneath it.
	UploadDir string

	FFmpegPath    string
	FFprobePath   string
	FFmpegTimeout time.Duration

	CORSOrigins string

	ResendAPIKey string
	FromEmail    string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		UploadPort:  getEnv("UPLOAD_PORT", "3002"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DBMaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		UploadURL:       getEnv("UPLOAD_URL", "http://localhost:3002/uploads/"),
		UploadServerURL: getEnv("UPLOAD_SERVER", "http://localhost:3002/api/v1"),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		FFmpegPath:    getEnv("FFMPEG_PATH", "ffmpeg"),
		FFprobePath:   getEnv("FFPROBE_PATH", "ffprobe"),
		FFmpegTimeout: getDurationEnv("FFMPEG_TIMEOUT", 30*time.Second),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@example.com"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
