package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
)

type APIRole struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func AdaptRoleDto(role models.Role) APIRole {
	return APIRole{
		Id:          role.Id,
		Name:        role.Name,
		Description: role.Description,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
}

type CreateRoleBody struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type UpdateRoleBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
