package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/utils"
)

type DbGroupAccess struct {
	Id         uuid.UUID `db:"id"`
	UserId     uuid.UUID `db:"user_id"`
	GroupId    uuid.UUID `db:"group_id"`
	RoleId     uuid.UUID `db:"role_id"`
	IsActive   bool      `db:"is_active"`
	AssignedAt time.Time `db:"assigned_at"`
}

// DbGroupAccessMembership is an access row joined with the group and role it
// points at, as returned by the effective-membership queries.
type DbGroupAccessMembership struct {
	GroupId   uuid.UUID `db:"group_id"`
	GroupName string    `db:"group_name"`
	RoleName  string    `db:"role_name"`
}

// DbGroupAccessMember is an access row joined with the user holding it and
// the role name, for the members-of-group view.
type DbGroupAccessMember struct {
	UserId   uuid.UUID `db:"user_id"`
	Username string    `db:"username"`
	Email    string    `db:"email"`
	RoleName string    `db:"role_name"`
}

const TABLE_GROUP_ACCESS = "user_group_access"

var SelectGroupAccessColumns = utils.ColumnList[DbGroupAccess]()

func AdaptGroupAccess(db DbGroupAccess) (models.GroupAccess, error) {
	return models.GroupAccess{
		Id:         db.Id,
		UserId:     db.UserId,
		GroupId:    db.GroupId,
		RoleId:     db.RoleId,
		IsActive:   db.IsActive,
		AssignedAt: db.AssignedAt,
	}, nil
}

func AdaptGroupMembership(db DbGroupAccessMembership) (models.GroupMembership, error) {
	return models.GroupMembership{
		GroupId:   db.GroupId,
		GroupName: db.GroupName,
		Role:      db.RoleName,
	}, nil
}

func AdaptGroupMember(db DbGroupAccessMember) (models.GroupMember, error) {
	return models.GroupMember{
		UserId:   db.UserId,
		Username: db.Username,
		Email:    db.Email,
		Role:     db.RoleName,
	}, nil
}
