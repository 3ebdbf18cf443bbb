package model

import (
	"posada/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldEmail        = "email"
	FieldPasswordHash = "password_hash"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldRole         = "role"
	FieldIsActive     = "is_active"
	FieldLastLoginAt  = "last_login_at"
)

type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Role         string     `db:"role"`
	IsActive     bool       `db:"is_active"`
	LastLoginAt  *time.Time `db:"last_login_at"`
	model.Metadata
}
