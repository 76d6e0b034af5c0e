package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/OriDaer/Portfolio/internal/config"
	_ "github.com/mattn/go-sqlite3" // SQLite Driver
	"go.uber.org/zap"
)

// schemaStatements is executed on every start. Each statement is idempotent
// so repeated bootstraps are safe.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS usuario (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	nombre_publico TEXT NOT NULL DEFAULT 'Tu Nombre',
	profile_image TEXT NOT NULL DEFAULT 'default_profile.png',
	acerca_de_mi TEXT NOT NULL DEFAULT '¡Hola! Soy desarrolladora web con enfoque en front-end.'
	);`,
	`CREATE TABLE IF NOT EXISTS experiencia (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	usuario_id INTEGER NOT NULL REFERENCES usuario(id),
	proyecto TEXT NOT NULL,
	descripcion TEXT NOT NULL,
	puesto TEXT NOT NULL,
	periodo TEXT NOT NULL,
	logros TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS educacion (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	usuario_id INTEGER NOT NULL REFERENCES usuario(id),
	titulo TEXT NOT NULL,
	institucion TEXT NOT NULL,
	periodo TEXT NOT NULL DEFAULT '',
	estado TEXT NOT NULL DEFAULT '',
	logo TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS curso (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	usuario_id INTEGER NOT NULL REFERENCES usuario(id),
	nombre TEXT NOT NULL,
	institucion TEXT NOT NULL,
	periodo TEXT NOT NULL DEFAULT '',
	certificacion_url TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS proyecto (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	titulo TEXT NOT NULL,
	descripcion TEXT NOT NULL DEFAULT '',
	fecha TEXT NOT NULL DEFAULT '',
	github_url TEXT NOT NULL DEFAULT '',
	imagen TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS persona (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	nombre_completo TEXT NOT NULL,
	contacto_email TEXT NOT NULL,
	telefono TEXT NOT NULL,
	direccion TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS tbl_audit_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	level TEXT NOT NULL,
	message TEXT NOT NULL,
	fields TEXT -- Additional zap fields as a JSON string
	);`,
}

// InitSQLite opens the portfolio database, creating the directory, the file
// and every table as needed. Safe to call on every start.
func InitSQLite(cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	logger.Info("Initializing SQLite database...", zap.String("requested_path", cfg.DatabasePath))

	dbDir := filepath.Dir(cfg.DatabasePath)
	if dbDir != "." && dbDir != "/" {
		if _, err := os.Stat(dbDir); os.IsNotExist(err) {
			logger.Info("Database directory does not exist, creating...", zap.String("path", dbDir))
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				logger.Error("Failed to create database directory", zap.String("path", dbDir), zap.Error(err))
				return nil, fmt.Errorf("failed to create db directory %s: %w", dbDir, err)
			}
		} else if err != nil {
			logger.Error("Failed to check status of database directory", zap.String("path", dbDir), zap.Error(err))
			return nil, fmt.Errorf("failed to check status of db directory %s: %w", dbDir, err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DatabasePath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		logger.Error("Failed to open SQLite database", zap.String("path", cfg.DatabasePath), zap.Error(err))
		return nil, fmt.Errorf("failed to open sqlite database at %s: %w", cfg.DatabasePath, err)
	}

	// A single writer connection sidesteps SQLITE_BUSY under concurrent form posts.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		logger.Error("Failed to ping SQLite database after open", zap.Error(err))
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := ApplySchema(db); err != nil {
		db.Close()
		logger.Error("Failed to create portfolio schema", zap.Error(err))
		return nil, err
	}
	logger.Debug("Portfolio schema verified/created.")

	logger.Info("SQLite database initialized successfully", zap.String("path", cfg.DatabasePath))
	return db, nil
}

// ApplySchema runs the idempotent table creation statements.
func ApplySchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
