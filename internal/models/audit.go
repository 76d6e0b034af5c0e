package models

import "time"

// AuditEntry is one row of the tbl_audit_log table. Mutating operations
// (logins, profile edits, entity CRUD) are recorded here by the audit logger.
type AuditEntry struct {
	ID        int64     `json:"-"` // SQLite row id
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Fields    string    `json:"fields,omitempty"` // JSON representation of extra fields
}
