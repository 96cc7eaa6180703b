package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
)

type APIGroup struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func AdaptGroupDto(group models.Group) APIGroup {
	return APIGroup{
		Id:          group.Id,
		Name:        group.Name,
		Description: group.Description,
		IsActive:    group.IsActive,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

type CreateGroupBody struct {
	ActorUserId uuid.UUID `json:"actor_user_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description *string   `json:"description"`
}

type UpdateGroupBody struct {
	ActorUserId uuid.UUID `json:"actor_user_id" binding:"required"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
}
