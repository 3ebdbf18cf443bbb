package model

import "time"

// Metadata carries the bookkeeping columns shared by every table.
type Metadata struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// AuditMetadata extends Metadata with the acting principal, for tables whose
// rows are written on behalf of an authenticated user.
type AuditMetadata struct {
	Metadata
	CreatedBy string `db:"created_by"`
	UpdatedBy string `db:"updated_by"`
}

// SoftDelete marks rows that are hidden rather than removed.
type SoftDelete struct {
	DeletedAt *time.Time `db:"deleted_at"`
}
