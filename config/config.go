package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// MongoDB
	MongoURL       string
	DBName         string
	UsersColl      string
	TasksColl      string
	ConnectTimeout time.Duration

	// JWT
	JWTSecret string
	TokenTTL  time.Duration

	// Password hashing
	BcryptCost int

	// Cookies
	CookieDomain string
	CookieSecure bool

	// CORS
	CORSAllowedOrigins string // comma-separated

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "go-todo-app"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "3200"),
		GinMode: getenv("GIN_MODE", "release"),

		MongoURL:       getenv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:         getenv("DB_NAME", "todoapp"),
		UsersColl:      getenv("USERS_COLLECTION", "users"),
		TasksColl:      getenv("TASKS_COLLECTION", "tasks"),
		ConnectTimeout: getdur("MONGO_CONNECT_TIMEOUT", 10*time.Second),

		JWTSecret: getenv("JWT_SECRET", "devsecret"),
		TokenTTL:  getdur("TOKEN_TTL", 24*time.Hour),

		BcryptCost: getint("BCRYPT_COST", 10),

		CookieDomain: getenv("COOKIE_DOMAIN", ""),
		CookieSecure: getbool("COOKIE_SECURE", true),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),

		// HTTP access log toggle (default false; enable when needed)
		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
