package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For list parsing

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort     string   // Application port
	DBUser      string   // Database user
	DBPassword  string   // Database password
	DBHost      string   // Database host
	DBPort      string   // Database port
	DBName      string   // Database name
	JWTSecret   string   // JWT secret key
	RedisAddr   string   // Redis server address
	RedisPass   string   // Redis password
	RedisDB     int      // Redis database number
	UploadDir   string   // Directory for uploaded product images
	CORSOrigins []string // Allowed browser origins
	IsProd      bool     // Is production environment
}

// DSN builds the MySQL data source name.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:     getEnv("APP_PORT", "8080"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBHost:      getEnv("DB_HOST", "127.0.0.1"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBName:      os.Getenv("DB_NAME"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		RedisAddr:   getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPass:   os.Getenv("REDIS_PASS"),
		RedisDB:     redisDB,
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:4200")),
		IsProd:      os.Getenv("IS_PROD") == "true",
	}
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// splitList parses a comma-separated env value.
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
