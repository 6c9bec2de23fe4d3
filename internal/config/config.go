// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Backend selectors for the swappable stores
const (
	MetadataBackendMemory = "memory"
	MetadataBackendMySQL  = "mysql"

	StorageBackendLocal = "local"
	StorageBackendS3    = "s3"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Database DatabaseConfig
	S3       S3Config

	// MetadataBackend selects the metadata store: "memory" or "mysql"
	MetadataBackend string
	// StorageBackend selects the blob store: "local" or "s3"
	StorageBackend string
	// MediaBasePath is the root directory for the local blob store
	MediaBasePath string
	// FFprobePath overrides the ffprobe binary location
	FFprobePath string
	// MaxUploadSize caps request bodies, in bytes
	MaxUploadSize int64
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// S3Config holds object storage connection settings
type S3Config struct {
	Endpoint     string
	AccessKey    string
	AccessSecret string
	Region       string
	Bucket       string
}

// DSN builds the MySQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

const defaultMaxUploadSize = 500 * 1024 * 1024 // large enough for video uploads

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		// Default to allow all origins if not specified (for development)
		cfg.CORS.AllowedOrigins = []string{"*"}
	} else {
		origins := strings.Split(corsOrigins, ",")
		cfg.CORS.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
		if len(cfg.CORS.AllowedOrigins) == 0 {
			cfg.CORS.AllowedOrigins = []string{"*"}
		}
	}

	// Metadata backend selection
	cfg.MetadataBackend = os.Getenv("METADATA_BACKEND")
	if cfg.MetadataBackend == "" {
		cfg.MetadataBackend = MetadataBackendMemory
	}
	switch cfg.MetadataBackend {
	case MetadataBackendMemory:
	case MetadataBackendMySQL:
		if err := loadDatabase(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid METADATA_BACKEND %q", cfg.MetadataBackend)
	}

	// Blob storage backend selection
	cfg.StorageBackend = os.Getenv("STORAGE_BACKEND")
	if cfg.StorageBackend == "" {
		cfg.StorageBackend = StorageBackendLocal
	}
	switch cfg.StorageBackend {
	case StorageBackendLocal:
		cfg.MediaBasePath = os.Getenv("MEDIA_BASE_PATH")
		if cfg.MediaBasePath == "" {
			return nil, fmt.Errorf("MEDIA_BASE_PATH is required for local storage")
		}
	case StorageBackendS3:
		if err := loadS3(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	// Probing configuration (optional)
	cfg.FFprobePath = os.Getenv("FFPROBE_PATH")

	// Upload size cap (optional)
	cfg.MaxUploadSize = defaultMaxUploadSize
	if maxUploadStr := os.Getenv("MAX_UPLOAD_SIZE"); maxUploadStr != "" {
		maxUpload, err := strconv.ParseInt(maxUploadStr, 10, 64)
		if err != nil || maxUpload <= 0 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE: %q", maxUploadStr)
		}
		cfg.MaxUploadSize = maxUpload
	}

	return cfg, nil
}

func loadDatabase(cfg *Config) error {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	return nil
}

func loadS3(cfg *Config) error {
	cfg.S3.Bucket = os.Getenv("S3_BUCKET")
	if cfg.S3.Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required for s3 storage")
	}

	cfg.S3.Region = os.Getenv("S3_REGION")
	if cfg.S3.Region == "" {
		return fmt.Errorf("S3_REGION is required for s3 storage")
	}

	cfg.S3.AccessKey = os.Getenv("S3_ACCESS_KEY")
	if cfg.S3.AccessKey == "" {
		return fmt.Errorf("S3_ACCESS_KEY is required for s3 storage")
	}

	cfg.S3.AccessSecret = os.Getenv("S3_ACCESS_SECRET")
	if cfg.S3.AccessSecret == "" {
		return fmt.Errorf("S3_ACCESS_SECRET is required for s3 storage")
	}

	// Endpoint is optional; empty means AWS proper
	cfg.S3.Endpoint = os.Getenv("S3_ENDPOINT")

	return nil
}
