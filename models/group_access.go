package models

import (
	"time"

	"github.com/google/uuid"
)

// GroupAccess binds one user to one group with one role. Several active rows
// may exist for the same (user, group) pair: the store does not enforce
// uniqueness on the pair, and readers must tolerate duplicates.
type GroupAccess struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	GroupId    uuid.UUID
	RoleId     uuid.UUID
	IsActive   bool
	AssignedAt time.Time
}

type CreateGroupAccess struct {
	UserId  uuid.UUID
	GroupId uuid.UUID
	RoleId  uuid.UUID
}

type GroupAccessFilters struct {
	UserId     *uuid.UUID
	GroupId    *uuid.UUID
	ActiveOnly bool
}
