package models

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	Id          uuid.UUID
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateGroup struct {
	Name        string
	Description *string
}

type UpdateGroup struct {
	Id          uuid.UUID
	Name        *string
	Description *string
}
