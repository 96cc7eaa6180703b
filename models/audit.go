package models

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// ActionType is the canonical enumeration of audited mutations. The legacy
// system stored group action types as ad hoc strings; those are accepted at
// the boundary through ActionTypeFrom and converted to this enumeration.
type ActionType string

const (
	ActionCreateUser     ActionType = "CREATE_USER"
	ActionUpdateUser     ActionType = "UPDATE_USER"
	ActionActivateUser   ActionType = "ACTIVATE_USER"
	ActionDeactivateUser ActionType = "DEACTIVATE_USER"
	ActionDeleteUser     ActionType = "DELETE_USER"
	ActionCreateGroup    ActionType = "CREATE_GROUP"
	ActionUpdateGroup    ActionType = "UPDATE_GROUP"
	ActionAssignRole     ActionType = "ASSIGN_ROLE"
	ActionChangeRole     ActionType = "CHANGE_ROLE"
	ActionRemoveRole     ActionType = "REMOVE_ROLE"
)

func ValidActionTypes() []ActionType {
	return []ActionType{
		ActionCreateUser,
		ActionUpdateUser,
		ActionActivateUser,
		ActionDeactivateUser,
		ActionDeleteUser,
		ActionCreateGroup,
		ActionUpdateGroup,
		ActionAssignRole,
		ActionChangeRole,
		ActionRemoveRole,
	}
}

// ActionTypeFrom converts a free-form action string to the canonical
// enumeration, failing on unknown values.
func ActionTypeFrom(s string) (ActionType, error) {
	for _, a := range ValidActionTypes() {
		if s == string(a) {
			return a, nil
		}
	}
	return "", errors.Wrapf(BadParameterError, "unknown action type %q", s)
}

// AuditLogKind selects one of the three audit tables, which share a shape.
type AuditLogKind string

const (
	AuditLogUser        AuditLogKind = "user"
	AuditLogGroup       AuditLogKind = "group"
	AuditLogGroupAccess AuditLogKind = "group_access"
)

// AuditLogEntry is one immutable record of a mutation. Target ids are weak
// references: a hard-deleted target leaves its historical entries in place.
type AuditLogEntry struct {
	Id            uuid.UUID
	Kind          AuditLogKind
	ActorUserId   uuid.UUID
	TargetUserId  *uuid.UUID
	TargetGroupId *uuid.UUID
	ActionType    ActionType
	OldValue      json.RawMessage
	NewValue      json.RawMessage
	OldRole       *string
	NewRole       *string
	CreatedAt     time.Time

	// Populated only when the corresponding relation is requested.
	ActorUsername  *string
	TargetUsername *string
	GroupName      *string
}

type CreateAuditLog struct {
	Kind          AuditLogKind
	ActorUserId   uuid.UUID
	TargetUserId  *uuid.UUID
	TargetGroupId *uuid.UUID
	ActionType    ActionType
	OldValue      json.RawMessage
	NewValue      json.RawMessage
	OldRole       *string
	NewRole       *string
}

// AuditLogFilters drives audit listings. Relations are loaded only when
// explicitly requested, never implicitly.
type AuditLogFilters struct {
	ActionType    *ActionType
	ActorUserId   *uuid.UUID
	TargetUserId  *uuid.UUID
	TargetGroupId *uuid.UUID
	WithActor     bool
	WithTarget    bool
}

// UserSnapshot is the audit serialization of a user row. The password hash
// is never part of a snapshot.
type UserSnapshot struct {
	Id            uuid.UUID  `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	IsGlobalAdmin bool       `json:"is_global_admin"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
}

func NewUserSnapshot(user User) UserSnapshot {
	return UserSnapshot{
		Id:            user.Id,
		Username:      user.Username,
		Email:         user.Email,
		IsGlobalAdmin: user.IsGlobalAdmin,
		IsActive:      user.IsActive,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
		LastLogin:     user.LastLogin,
	}
}

type GroupSnapshot struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"group_name"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewGroupSnapshot(group Group) GroupSnapshot {
	return GroupSnapshot{
		Id:          group.Id,
		Name:        group.Name,
		Description: group.Description,
		IsActive:    group.IsActive,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

// ActiveSnapshot is the minimal before/after value recorded by activate and
// deactivate operations. Create, update and delete record full snapshots
// instead; the asymmetry is part of the audit contract.
type ActiveSnapshot struct {
	IsActive bool `json:"is_active"`
}
