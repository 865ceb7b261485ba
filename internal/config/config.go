package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

// Config holds all configuration for our application
type Config struct {
	Port              string
	Origin            string
	Environment       string
	LogLevel          string
	SessionSecret     string
	SessionStore      string
	SessionMaxAgeHrs  int
	AuditAppointments bool
	Database          DatabaseConfig
	Redis             RedisConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
	DSN      string
}

// RedisConfig holds the server-side session store connection
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	SessionStoreCookie = "cookie"
	SessionStoreRedis  = "redis"
)

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	driver := getEnv("DB_DRIVER", DriverMySQL)
	defaultPort := "3306"
	switch driver {
	case DriverMySQL:
	case DriverPostgres:
		defaultPort = "5432"
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	dbConfig := DatabaseConfig{
		Driver:   driver,
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", defaultPort),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hms"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
	dbConfig.DSN = buildDSN(dbConfig)

	sessionStore := getEnv("SESSION_STORE", SessionStoreCookie)
	if sessionStore != SessionStoreCookie && sessionStore != SessionStoreRedis {
		return nil, fmt.Errorf("unsupported SESSION_STORE %q", sessionStore)
	}

	maxAge, err := strconv.Atoi(getEnv("SESSION_MAX_AGE_HOURS", "168")) // 7 days
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_MAX_AGE_HOURS: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	audit, err := strconv.ParseBool(getEnv("AUDIT_APPOINTMENTS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUDIT_APPOINTMENTS: %w", err)
	}

	return &Config{
		Port:              getEnv("PORT", "5000"),
		Origin:            getEnv("ORIGIN", "http://localhost:5000"),
		Environment:       getEnv("APP_ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		SessionSecret:     getEnv("SESSION_SECRET", "hmsprojects"),
		SessionStore:      sessionStore,
		SessionMaxAgeHrs:  maxAge,
		AuditAppointments: audit,
		Database:          dbConfig,
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
	}, nil
}

// IsProduction reports whether cookies should be marked Secure.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func buildDSN(db DatabaseConfig) string {
	if db.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			db.Host, db.Username, db.Password, db.Name, db.Port, db.SSLMode)
	}

	mc := mysql.NewConfig()
	mc.User = db.Username
	mc.Passwd = db.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(db.Host, db.Port)
	mc.DBName = db.Name
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
