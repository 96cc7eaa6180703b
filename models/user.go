package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID
	Username      string
	Email         string
	PasswordHash  string
	IsGlobalAdmin bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastLogin     *time.Time
}

type CreateUser struct {
	Username      string
	Email         string
	PasswordHash  string
	IsGlobalAdmin bool
}

// UpdateUser carries a partial update: nil fields are left untouched.
type UpdateUser struct {
	Id            uuid.UUID
	Username      *string
	Email         *string
	IsGlobalAdmin *bool
}
