package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
)

type APIGroupAccess struct {
	Id         uuid.UUID `json:"id"`
	UserId     uuid.UUID `json:"user_id"`
	GroupId    uuid.UUID `json:"group_id"`
	RoleId     uuid.UUID `json:"role_id"`
	IsActive   bool      `json:"is_active"`
	AssignedAt time.Time `json:"assigned_at"`
}

func AdaptGroupAccessDto(access models.GroupAccess) APIGroupAccess {
	return APIGroupAccess{
		Id:         access.Id,
		UserId:     access.UserId,
		GroupId:    access.GroupId,
		RoleId:     access.RoleId,
		IsActive:   access.IsActive,
		AssignedAt: access.AssignedAt,
	}
}

type AssignRoleBody struct {
	ActorUserId uuid.UUID `json:"actor_user_id" binding:"required"`
	UserId      uuid.UUID `json:"user_id" binding:"required"`
	GroupId     uuid.UUID `json:"group_id" binding:"required"`
	RoleId      uuid.UUID `json:"role_id" binding:"required"`
}

type ChangeRoleBody struct {
	ActorUserId uuid.UUID `json:"actor_user_id" binding:"required"`
	RoleId      uuid.UUID `json:"role_id" binding:"required"`
}

type GroupAccessFiltersForm struct {
	UserId     *uuid.UUID `form:"user_id"`
	GroupId    *uuid.UUID `form:"group_id"`
	ActiveOnly bool       `form:"active_only"`
}

func AdaptGroupAccessFilters(form GroupAccessFiltersForm) models.GroupAccessFilters {
	return models.GroupAccessFilters{
		UserId:     form.UserId,
		GroupId:    form.GroupId,
		ActiveOnly: form.ActiveOnly,
	}
}

type APIGroupMembership struct {
	GroupId   uuid.UUID `json:"group_id"`
	GroupName string    `json:"group_name"`
	Role      string    `json:"role"`
}

func AdaptGroupMembershipDto(membership models.GroupMembership) APIGroupMembership {
	return APIGroupMembership{
		GroupId:   membership.GroupId,
		GroupName: membership.GroupName,
		Role:      membership.Role,
	}
}

type APIGroupMember struct {
	UserId   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

func AdaptGroupMemberDto(member models.GroupMember) APIGroupMember {
	return APIGroupMember{
		UserId:   member.UserId,
		Username: member.Username,
		Email:    member.Email,
		Role:     member.Role,
	}
}
