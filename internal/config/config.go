package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	HTTPPort string

	DBDriver    string
	DatabaseURL string

	JWTSecret   string
	AdminAPIKey string

	RateLimitPerMinute int

	Search SearchConfig
	Gemini GeminiConfig
	Images ImageConfig

	RedisAddr                    string
	GoogleApplicationCredentials string
}

type SearchConfig struct {
	AppID     string
	SearchKey string
	AdminKey  string
	IndexName string
	BaseURL   string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ImageConfig struct {
	Type      string
	LocalPath string
	PublicURL string
	S3Bucket  string
	S3Region  string
	AWSKey    string
	AWSSecret string
}

// Load reads .env (if present) and then the process environment.
// The bool reports whether a .env file was found.
func Load(files ...string) (*Config, bool) {
	loaded := godotenv.Load(files...) == nil
	return FromEnv(), loaded
}

func FromEnv() *Config {
	return &Config{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnv("PORT", "8080"),

		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL: getEnv("DATABASE_URL", "./stylelove.db"),

		JWTSecret:   getEnv("JWT_SECRET_KEY", ""),
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 20),

		Search: SearchConfig{
			AppID:     getEnv("ALGOLIA_APP_ID", ""),
			SearchKey: getEnv("ALGOLIA_SEARCH_API_KEY", ""),
			AdminKey:  getEnv("ALGOLIA_ADMIN_API_KEY", ""),
			IndexName: getEnv("ALGOLIA_INDEX_NAME", "outfits"),
			BaseURL:   getEnv("ALGOLIA_BASE_URL", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Images: ImageConfig{
			Type:      getEnv("STORAGE_TYPE", "local"),
			LocalPath: getEnv("STORAGE_LOCAL_PATH", "./data/images"),
			PublicURL: getEnv("STORAGE_PUBLIC_URL", "/images"),
			S3Bucket:  getEnv("AWS_S3_BUCKET", ""),
			S3Region:  getEnv("AWS_REGION", "us-east-1"),
			AWSKey:    getEnv("AWS_ACCESS_KEY_ID", ""),
			AWSSecret: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},

		RedisAddr:                    getEnv("REDIS_ADDR", ""),
		GoogleApplicationCredentials: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
