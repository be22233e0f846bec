package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

const (
	defaultJWTSecret        = "a-very-secret-key-should-be-longer-and-random"
	defaultRateLimit        = "100-M"
	defaultProjectionMonths = 6
	defaultListPageSize     = 50
	maxListPageSize         = 500
)

// MaxProjectionMonths bounds both PROJECTION_MONTHS and the ?months= query.
const MaxProjectionMonths = 120

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StorageDriver string

	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string
	SQLitePath     string

	JWTSecret string
	JWTIssuer string

	LogLevel  string
	LogFormat string

	RateLimit          string
	CORSAllowedOrigins []string

	ProjectionMonths int
	ListPageSize     int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORAGE_DRIVER", StorageSQLite)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SQLITE_PATH", "data/fintrack.db")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "fintrack")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8081")
	v.SetDefault("PROJECTION_MONTHS", defaultProjectionMonths)
	v.SetDefault("LIST_PAGE_SIZE", defaultListPageSize)

	// Values from .env can then be overridden by actual environment variables.
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		StorageDriver:  strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		LogLevel:       strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:      strings.ToLower(v.GetString("LOG_FORMAT")),
		RateLimit:      v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: STORAGE_DRIVER is postgres but PGSQL_URL is not set.")
		}
	case StorageSQLite:
	default:
		log.Printf("Warning: Unknown STORAGE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StorageDriver, StorageSQLite)
		cfg.StorageDriver = StorageSQLite
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", cfg.RateLimit, defaultRateLimit)
		cfg.RateLimit = defaultRateLimit
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.ProjectionMonths = v.GetInt("PROJECTION_MONTHS")
	if cfg.ProjectionMonths <= 0 || cfg.ProjectionMonths > MaxProjectionMonths {
		log.Printf("Warning: Invalid value for PROJECTION_MONTHS. Defaulting to %d.\n", defaultProjectionMonths)
		cfg.ProjectionMonths = defaultProjectionMonths
	}

	cfg.ListPageSize = v.GetInt("LIST_PAGE_SIZE")
	if cfg.ListPageSize <= 0 || cfg.ListPageSize > maxListPageSize {
		log.Printf("Warning: Invalid value for LIST_PAGE_SIZE. Defaulting to %d.\n", defaultListPageSize)
		cfg.ListPageSize = defaultListPageSize
	}

	return cfg
}
