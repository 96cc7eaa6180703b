package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
)

type APIAuditLogEntry struct {
	Id            uuid.UUID       `json:"id"`
	ActorUserId   uuid.UUID       `json:"actor_user_id"`
	TargetUserId  *uuid.UUID      `json:"target_user_id,omitempty"`
	TargetGroupId *uuid.UUID      `json:"target_group_id,omitempty"`
	ActionType    string          `json:"action_type"`
	OldValue      json.RawMessage `json:"old_value,omitempty"`
	NewValue      json.RawMessage `json:"new_value,omitempty"`
	OldRole       *string         `json:"old_role,omitempty"`
	NewRole       *string         `json:"new_role,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`

	ActorUsername  *string `json:"actor_username,omitempty"`
	TargetUsername *string `json:"target_username,omitempty"`
	GroupName      *string `json:"group_name,omitempty"`
}

func AdaptAuditLogEntryDto(entry models.AuditLogEntry) APIAuditLogEntry {
	return APIAuditLogEntry{
		Id:             entry.Id,
		ActorUserId:    entry.ActorUserId,
		TargetUserId:   entry.TargetUserId,
		TargetGroupId:  entry.TargetGroupId,
		ActionType:     string(entry.ActionType),
		OldValue:       entry.OldValue,
		NewValue:       entry.NewValue,
		OldRole:        entry.OldRole,
		NewRole:        entry.NewRole,
		CreatedAt:      entry.CreatedAt,
		ActorUsername:  entry.ActorUsername,
		TargetUsername: entry.TargetUsername,
		GroupName:      entry.GroupName,
	}
}

type AuditLogFiltersForm struct {
	ActionType    string     `form:"action_type"`
	ActorUserId   *uuid.UUID `form:"actor_user_id"`
	TargetUserId  *uuid.UUID `form:"target_user_id"`
	TargetGroupId *uuid.UUID `form:"target_group_id"`
	WithActor     bool       `form:"with_actor"`
	WithTarget    bool       `form:"with_target"`
}

func AdaptAuditLogFilters(form AuditLogFiltersForm) (models.AuditLogFilters, error) {
	filters := models.AuditLogFilters{
		ActorUserId:   form.ActorUserId,
		TargetUserId:  form.TargetUserId,
		TargetGroupId: form.TargetGroupId,
		WithActor:     form.WithActor,
		WithTarget:    form.WithTarget,
	}
	if form.ActionType != "" {
		actionType, err := models.ActionTypeFrom(form.ActionType)
		if err != nil {
			return models.AuditLogFilters{}, err
		}
		filters.ActionType = &actionType
	}
	return filters, nil
}
