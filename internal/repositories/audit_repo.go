package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/OriDaer/Portfolio/internal/models"
	"go.uber.org/zap"
)

// AuditRepository defines the interface for audit log persistence.
type AuditRepository interface {
	Insert(ctx context.Context, entry models.AuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]models.AuditEntry, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type sqliteAuditRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db *sql.DB, logger *zap.Logger) AuditRepository {
	if logger == nil {
		fallbackLogger, _ := zap.NewDevelopment()
		logger = fallbackLogger
		logger.Warn("NewAuditRepository received nil logger, using fallback.")
	}
	return &sqliteAuditRepository{db: db, logger: logger}
}

func (r *sqliteAuditRepository) Insert(ctx context.Context, entry models.AuditEntry) error {
	query := `INSERT INTO tbl_audit_log (timestamp, level, message, fields) VALUES (?, ?, ?, ?)`
	fieldsJSON := entry.Fields
	if fieldsJSON == "" {
		fieldsJSON = "{}"
	}
	_, err := r.db.ExecContext(ctx, query, entry.Timestamp, entry.Level, entry.Message, fieldsJSON)
	if err != nil {
		r.logger.Error("Failed to insert audit log entry", zap.Error(err))
		return fmt.Errorf("audit insert failed: %w", err)
	}
	return nil
}

func (r *sqliteAuditRepository) ListRecent(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	query := `SELECT id, timestamp, level, message, fields FROM tbl_audit_log ORDER BY id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.logger.Error("Failed to query audit log entries", zap.Error(err))
		return nil, fmt.Errorf("audit query failed: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var entry models.AuditEntry
		var fields sql.NullString
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.Level, &entry.Message, &fields); err != nil {
			r.logger.Error("Failed to scan audit log row", zap.Error(err))
			continue
		}
		if fields.Valid {
			entry.Fields = fields.String
		} else {
			entry.Fields = "{}"
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		r.logger.Error("Error during iteration over audit log rows", zap.Error(err))
		return nil, fmt.Errorf("audit row iteration error: %w", err)
	}
	return entries, nil
}

func (r *sqliteAuditRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tbl_audit_log WHERE timestamp < ?`, cutoff)
	if err != nil {
		r.logger.Error("Failed to delete expired audit log entries", zap.Error(err))
		return 0, fmt.Errorf("audit delete failed: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	r.logger.Debug("Deleted expired audit log entries", zap.Int64("rows_affected", rowsAffected))
	return rowsAffected, nil
}
