package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
)

// APIUser never carries the password hash.
type APIUser struct {
	Id            uuid.UUID  `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	IsGlobalAdmin bool       `json:"is_global_admin"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LastLogin     *time.Time `json:"last_login"`
}

func AdaptUserDto(user models.User) APIUser {
	return APIUser{
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

type CreateUserBody struct {
	ActorUserId   uuid.UUID `json:"actor_user_id" binding:"required"`
	Username      string    `json:"username" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	PasswordHash  string    `json:"password_hash" binding:"required"`
	IsGlobalAdmin bool      `json:"is_global_admin"`
}

type UpdateUserBody struct {
	ActorUserId   uuid.UUID `json:"actor_user_id" binding:"required"`
	Username      *string   `json:"username"`
	Email         *string   `json:"email" binding:"omitempty,email"`
	IsGlobalAdmin *bool     `json:"is_global_admin"`
}

// ActorBody is the payload of mutations that carry nothing but the actor.
type ActorBody struct {
	ActorUserId uuid.UUID `json:"actor_user_id" binding:"required"`
}
