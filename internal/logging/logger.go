package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/OriDaer/Portfolio/internal/config"
	"github.com/OriDaer/Portfolio/internal/models"
	"github.com/OriDaer/Portfolio/internal/repositories"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalFileLogger  *zap.Logger
	globalAuditLogger *zap.Logger // Can be nil
	globalLoggersMu   sync.RWMutex
)

// AppLoggers holds the different logger instances for the application.
type AppLoggers struct {
	File  *zap.Logger // For general logging (console, file)
	Audit *zap.Logger // Persists mutating-operation entries into the database
}

// Custom level encoder function
func customLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + level.CapitalString() + "]")
}

// Custom level encoder function with color for console
func customColorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorPrefix, colorSuffix string
	switch level {
	case zapcore.DebugLevel:
		colorPrefix = "\x1b[35m" // Magenta
		colorSuffix = "\x1b[0m"
	case zapcore.InfoLevel:
		colorPrefix = "\x1b[32m" // Green
		colorSuffix = "\x1b[0m"
	case zapcore.WarnLevel:
		colorPrefix = "\x1b[33m" // Yellow
		colorSuffix = "\x1b[0m"
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		colorPrefix = "\x1b[31m" // Red
		colorSuffix = "\x1b[0m"
	}
	enc.AppendString(colorPrefix + "[" + level.CapitalString() + "]" + colorSuffix)
}

// CreateFileConsoleEncoderConfigs sets up the encoder configurations.
func CreateFileConsoleEncoderConfigs() (zapcore.EncoderConfig, zapcore.EncoderConfig) {
	// Console Encoder (human-readable, colored)
	consoleEncoderCfg := zap.NewDevelopmentEncoderConfig()
	consoleEncoderCfg.EncodeLevel = customColorLevelEncoder
	consoleEncoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	consoleEncoderCfg.EncodeCaller = zapcore.ShortCallerEncoder

	// File Encoder
	fileEncoderCfg := zap.NewProductionEncoderConfig()
	fileEncoderCfg.EncodeLevel = customLevelEncoder
	fileEncoderCfg.TimeKey = "timestamp"
	fileEncoderCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	fileEncoderCfg.EncodeCaller = zapcore.ShortCallerEncoder

	return consoleEncoderCfg, fileEncoderCfg
}

// InitializeLoggers creates the file/console application logger and the
// audit logger that persists entries through the given repository.
func InitializeLoggers(cfg *config.Config, auditRepo repositories.AuditRepository, fileSyncer zapcore.WriteSyncer) (*AppLoggers, error) {
	appLoggers := &AppLoggers{}

	// --- Initialize File/Console Logger ---
	var fileLogLevel zapcore.Level
	if err := fileLogLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Invalid LOG_LEVEL '%s' for file/console logger, defaulting to info: %v\n", cfg.LogLevel, err)
		fileLogLevel = zapcore.InfoLevel
	}

	consoleEncoderCfg, fileEncoderCfg := CreateFileConsoleEncoderConfigs()
	consoleSyncer := zapcore.Lock(os.Stdout)

	consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderCfg), consoleSyncer, fileLogLevel)
	fileOutputCore := zapcore.NewCore(zapcore.NewConsoleEncoder(fileEncoderCfg), fileSyncer, fileLogLevel)

	fileAndConsoleLoggerCore := zapcore.NewTee(consoleCore, fileOutputCore)
	appLoggers.File = zap.New(fileAndConsoleLoggerCore, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	appLoggers.File.Info("======================================================================================")
	appLoggers.File.Info("File/Console application logger initialized",
		zap.String("environment", cfg.AppEnv),
		zap.String("configuredLevel", cfg.LogLevel),
		zap.String("effectiveLevel", fileLogLevel.String()),
		zap.String("logFile", cfg.LogFilePath),
	)

	// --- Initialize Audit Logger ---
	if cfg.AuditLogEnabled {
		var auditLogLevel zapcore.Level
		if err := auditLogLevel.UnmarshalText([]byte(cfg.AuditLogLevel)); err != nil {
			fmt.Fprintf(os.Stderr, "[WARN] Invalid AUDIT_LOG_LEVEL '%s', defaulting to info: %v\n", cfg.AuditLogLevel, err)
			auditLogLevel = zapcore.InfoLevel
		}
		// The audit core uses a JSON encoder config since its fields end up as
		// structured data in the database.
		auditEncoderConfig := zap.NewProductionEncoderConfig()
		auditEncoderConfig.TimeKey = "timestamp"
		auditEncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		auditEncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
		auditJSONEncoder := zapcore.NewJSONEncoder(auditEncoderConfig)
		auditOnlyCore := NewAuditCore(auditLogLevel, auditJSONEncoder, auditRepo)

		appLoggers.Audit = zap.New(auditOnlyCore, zap.AddCaller(), zap.AddCallerSkip(1))
		appLoggers.File.Info("Audit logger initialized",
			zap.String("effectiveLevel", auditLogLevel.String()),
		)
	} else {
		appLoggers.File.Info("Audit logger is disabled by configuration.")
		appLoggers.Audit = zap.NewNop()
	}

	return appLoggers, nil
}

// --- Custom audit zap Core ---

// auditCore implements zapcore.Core and writes entries into the audit table
// via an AuditRepository.
type auditCore struct {
	zapcore.LevelEnabler
	encoder zapcore.Encoder
	repo    repositories.AuditRepository
	fields  []zapcore.Field // Fields added via logger.With()
}

// NewAuditCore creates a new core persisting log entries through repo.
func NewAuditCore(enab zapcore.LevelEnabler, enc zapcore.Encoder, repo repositories.AuditRepository) zapcore.Core {
	return &auditCore{
		LevelEnabler: enab,
		encoder:      enc.Clone(),
		repo:         repo,
		fields:       make([]zapcore.Field, 0),
	}
}

func (c *auditCore) Enabled(level zapcore.Level) bool {
	return c.LevelEnabler.Enabled(level)
}

func (c *auditCore) With(fields []zapcore.Field) zapcore.Core {
	clone := c.clone()
	clone.fields = append(clone.fields, fields...)
	return clone
}

func (c *auditCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write uses MapObjectEncoder to extract and marshal custom fields.
func (c *auditCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	allFields := append(append([]zapcore.Field(nil), c.fields...), fields...)

	mapEncoder := zapcore.NewMapObjectEncoder()
	for _, field := range allFields {
		field.AddTo(mapEncoder)
	}
	fieldMap := mapEncoder.Fields

	entry := models.AuditEntry{
		Timestamp: ent.Time.Local(),
		Level:     ent.Level.String(),
		Message:   ent.Message,
		Fields:    "{}",
	}

	if len(fieldMap) > 0 {
		fieldBytes, err := json.Marshal(fieldMap)
		if err == nil {
			entry.Fields = string(fieldBytes)
		} else {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal custom fields map for audit log: %v\n", err)
			entry.Fields = fmt.Sprintf(`{"marshal_error": %q, "original_message": %q}`, err.Error(), ent.Message)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.repo.Insert(ctx, entry); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: Failed to insert audit log entry: %v\n", err)
	}

	return nil
}

func (c *auditCore) Sync() error {
	return nil
}

func (c *auditCore) clone() *auditCore {
	return &auditCore{
		LevelEnabler: c.LevelEnabler,
		encoder:      c.encoder.Clone(),
		repo:         c.repo,
		fields:       append([]zapcore.Field(nil), c.fields...),
	}
}

// --- Global Logger Access ---

// SetGlobalLoggers sets the global logger instances.
func SetGlobalLoggers(fileLogger, auditLogger *zap.Logger) {
	globalLoggersMu.Lock()
	defer globalLoggersMu.Unlock()
	globalFileLogger = fileLogger
	if auditLogger != nil {
		globalAuditLogger = auditLogger
	} else {
		globalAuditLogger = zap.NewNop()
	}
}

// GetFileLogger returns the initialized global file/console logger.
func GetFileLogger() *zap.Logger {
	globalLoggersMu.RLock()
	l := globalFileLogger
	globalLoggersMu.RUnlock()

	if l == nil {
		fallbackLogger, _ := zap.NewProduction()
		fallbackLogger.Warn("Global file/console logger accessed before being set!")
		return fallbackLogger
	}
	return l
}

// GetAuditLogger returns the initialized global audit logger.
// Returns a Nop logger if audit logging was disabled or not initialized.
func GetAuditLogger() *zap.Logger {
	globalLoggersMu.RLock()
	l := globalAuditLogger
	globalLoggersMu.RUnlock()

	if l == nil {
		return zap.NewNop()
	}
	return l
}
