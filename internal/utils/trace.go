package utils

import (
	"fmt"

	"github.com/OriDaer/Portfolio/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TraceConfigDetails logs the loaded configuration at debug level with
// secrets masked.
func TraceConfigDetails(logger *zap.Logger, cfg *config.Config) {
	if logger == nil || cfg == nil {
		fmt.Println("[WARN] logger or config is nil in TraceConfigDetails")
		return
	}
	fields := []zapcore.Field{
		zap.String("AppEnv", cfg.AppEnv),
		zap.String("Port", cfg.Port),
		zap.String("SecretKey", MaskSecret(cfg.SecretKey)),
		zap.String("DatabasePath", cfg.DatabasePath),
		zap.String("UploadDir", cfg.UploadDir),
		zap.Int("MaxUploadBytes", cfg.MaxUploadBytes),
		zap.String("CVFileName", cfg.CVFileName),
		zap.String("LogFilePath", cfg.LogFilePath),
		zap.String("LogLevel", cfg.LogLevel),
		zap.Int("LogRotateIntervalHours", cfg.LogRotateInterval),
		zap.Int("LogMaxSizeMB", cfg.LogMaxSize),
		zap.Int("LogMaxBackups", cfg.LogMaxBackups),
		zap.Int("LogMaxAgeDays", cfg.LogMaxAge),
		zap.Bool("LogCompress", cfg.LogCompress),
		zap.Bool("AuditLog_Enabled", cfg.AuditLogEnabled),
		zap.String("AuditLog_Level", cfg.AuditLogLevel),
		zap.Int("AuditLog_RetentionDays", cfg.AuditRetentionDays),
		zap.Duration("AuditLog_SweepInterval", cfg.AuditSweepInterval),
		zap.String("CORS_AllowOrigins", cfg.CORSAllowOrigins),
		zap.String("CORS_AllowMethods", cfg.CORSAllowMethods),
		zap.String("CORS_AllowHeaders", cfg.CORSAllowHeaders),
	}
	logger.Debug("Loaded application configuration details", fields...)
}
