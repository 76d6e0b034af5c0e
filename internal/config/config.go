package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds all configuration for the application
type Config struct {
	AppEnv           string
	Port             string
	CORSAllowOrigins string
	CORSAllowMethods string
	CORSAllowHeaders string

	SecretKey string // Signs session and CSRF tokens

	DatabasePath string // SQLite file backing the portfolio store

	UploadDir      string
	MaxUploadBytes int    // Request body limit; uploads larger than this are rejected
	CVFileName     string // PDF served by /descargar-cv, relative to UploadDir

	LogFilePath       string
	LogLevel          string
	LogRotateInterval int // Hours
	LogMaxSize        int // MB
	LogMaxBackups     int
	LogMaxAge         int // Days
	LogCompress       bool

	AuditLogEnabled    bool
	AuditLogLevel      string
	AuditRetentionDays int
	AuditSweepInterval time.Duration
}

// LoadConfig reads configuration from environment variables or .env file
func LoadConfig(logger *zap.Logger) (*Config, error) { // logger can be nil here
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "local"
	}

	envFileName := fmt.Sprintf(".env.%s", appEnv)
	if _, err := os.Stat(envFileName); err == nil {
		if err := godotenv.Load(envFileName); err != nil {
			if logger != nil {
				logger.Warn("Error loading .env file, continuing with environment variables", zap.String("file", envFileName), zap.Error(err))
			}
		} else if logger != nil {
			logger.Info("Loaded configuration", zap.String("file", envFileName))
		}
	} else if appEnv == "local" {
		if _, err := os.Stat(".env.local"); err == nil {
			if err := godotenv.Load(".env.local"); err != nil {
				if logger != nil {
					logger.Warn("Error loading .env.local file", zap.Error(err))
				}
			} else if logger != nil {
				logger.Info("Loaded configuration from .env.local")
			}
		} else if logger != nil {
			logger.Warn(".env.local not found, relying on environment variables or defaults")
		}
	} else if logger != nil {
		logger.Warn("No specific .env file found for environment, relying on environment variables or defaults", zap.String("environment", appEnv))
	}

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "local"),
		Port:      getEnv("PORT", "3000"),
		SecretKey: getEnv("SECRET_KEY", "default-secret"),

		DatabasePath: getEnv("DATABASE_PATH", "./data/portfolio.db"),

		UploadDir:      getEnv("UPLOAD_DIR", "./static/uploads"),
		MaxUploadBytes: getEnvAsInt("MAX_UPLOAD_SIZE", 2*1024*1024), // 2MB
		CVFileName:     getEnv("CV_FILENAME", "CV_Daer_Oriana_Berenice.pdf"),

		LogFilePath:       getEnv("LOG_FILE_PATH", "./logs/app.log"),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogRotateInterval: getEnvAsInt("LOG_ROTATE_INTERVAL", 24),
		LogMaxSize:        getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups:     getEnvAsInt("LOG_MAX_BACKUPS", 5),
		LogMaxAge:         getEnvAsInt("LOG_MAX_AGE", 30),
		LogCompress:       getEnvAsBool("LOG_COMPRESS", false),

		AuditLogEnabled:    getEnvAsBool("AUDIT_LOG_ENABLED", true),
		AuditLogLevel:      strings.ToLower(getEnv("AUDIT_LOG_LEVEL", "info")),
		AuditRetentionDays: getEnvAsInt("AUDIT_RETENTION_DAYS", 90),

		// Default AllowOrigins to "*" for local, empty for others (forcing explicit setting)
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", func() string {
			if getEnv("APP_ENV", "local") == "local" || getEnv("APP_ENV", "local") == "development" {
				return "*"
			}
			return ""
		}()),
		CORSAllowMethods: getEnv("CORS_ALLOW_METHODS", "GET,POST,HEAD"),
		CORSAllowHeaders: getEnv("CORS_ALLOW_HEADERS", "Origin,Content-Type,Accept"),
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "dpanic": true, "panic": true, "fatal": true}
	if !validLevels[cfg.LogLevel] {
		if logger != nil {
			logger.Warn("Invalid LOG_LEVEL specified, defaulting to 'info'", zap.String("invalidLevel", cfg.LogLevel))
		}
		cfg.LogLevel = "info"
	}
	if !validLevels[cfg.AuditLogLevel] {
		if logger != nil {
			logger.Warn("Invalid AUDIT_LOG_LEVEL specified, defaulting to 'info'", zap.String("invalidLevel", cfg.AuditLogLevel))
		}
		cfg.AuditLogLevel = "info"
	}

	sweepHours := getEnvAsInt("AUDIT_SWEEP_INTERVAL_HOURS", 24)
	cfg.AuditSweepInterval = time.Duration(sweepHours) * time.Hour

	if cfg.SecretKey == "default-secret" {
		if logger != nil {
			logger.Warn("SECRET_KEY is using the default value. Please set a strong secret in production.")
		}
		if cfg.AppEnv != "local" && cfg.AppEnv != "development" {
			return nil, fmt.Errorf("SECRET_KEY must be set explicitly in production environments")
		}
	}
	if cfg.AppEnv != "local" && cfg.AppEnv != "development" && (cfg.CORSAllowOrigins == "*" || cfg.CORSAllowOrigins == "") {
		if logger != nil {
			logger.Warn("CORS_ALLOW_ORIGINS is set to '*' or is empty in a non-local/dev environment. Set specific origins for production.")
		}
		return nil, fmt.Errorf("CORS_ALLOW_ORIGINS must be set explicitly in production environments")
	}

	// Create upload directory if it doesnt exist
	if _, err := os.Stat(cfg.UploadDir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
			if logger != nil {
				logger.Error("Failed to create upload directory", zap.String("path", cfg.UploadDir), zap.Error(err))
			}
			return nil, fmt.Errorf("failed to create upload directory %s: %w", cfg.UploadDir, err)
		}
		if logger != nil {
			logger.Info("Created upload directory", zap.String("path", cfg.UploadDir))
		}
	}

	return cfg, nil
}

// Helper function to get env var or default
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get env var as int or default
func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get env var as bool or default
func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
