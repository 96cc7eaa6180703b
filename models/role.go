package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is a flat permission label referenced by group access assignments.
// There is no hierarchy between roles.
type Role struct {
	Id          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateRole struct {
	Name        string
	Description *string
}

type UpdateRole struct {
	Id          uuid.UUID
	Name        *string
	Description *string
}
