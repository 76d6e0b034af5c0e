package models

import "time"

// Base holds the columns shared by every portfolio table. Entities embed it
// instead of inheriting from a common ancestor; behavior never varies by type.
type Base struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
