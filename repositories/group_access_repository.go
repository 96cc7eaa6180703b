package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories/dbmodels"
)

type GroupAccessRepository interface {
	CreateGroupAccess(ctx context.Context, exec Executor, createAccess models.CreateGroupAccess, newAccessId uuid.UUID) error
	UpdateGroupAccessRole(ctx context.Context, exec Executor, accessId, newRoleId uuid.UUID) error
	DeleteGroupAccess(ctx context.Context, exec Executor, accessId uuid.UUID) error
	GroupAccessById(ctx context.Context, exec Executor, accessId uuid.UUID) (models.GroupAccess, error)
	ListGroupAccesses(ctx context.Context, exec Executor, filters models.GroupAccessFilters) ([]models.GroupAccess, error)
	ListActiveMembershipsOfUser(ctx context.Context, exec Executor, userId uuid.UUID) ([]models.GroupMembership, error)
	ListActiveMembersOfGroup(ctx context.Context, exec Executor, groupId uuid.UUID) ([]models.GroupMember, error)
}

func (repo *RosterDbRepository) CreateGroupAccess(ctx context.Context, exec Executor,
	createAccess models.CreateGroupAccess, newAccessId uuid.UUID,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_GROUP_ACCESS).
			Columns("id", "user_id", "group_id", "role_id").
			Values(newAccessId, createAccess.UserId, createAccess.GroupId, createAccess.RoleId),
	)
	return err
}

func (repo *RosterDbRepository) UpdateGroupAccessRole(ctx context.Context, exec Executor,
	accessId, newRoleId uuid.UUID,
) error {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_GROUP_ACCESS).
			Where(squirrel.Eq{"id": accessId}).
			Set("role_id", newRoleId),
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.NotFoundError, "no group access with id %s", accessId)
	}
	return nil
}

func (repo *RosterDbRepository) DeleteGroupAccess(ctx context.Context, exec Executor, accessId uuid.UUID) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_GROUP_ACCESS).Where(squirrel.Eq{"id": accessId}),
	)
	return err
}

func (repo *RosterDbRepository) GroupAccessById(ctx context.Context, exec Executor,
	accessId uuid.UUID,
) (models.GroupAccess, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectGroupAccessColumns...).
			From(dbmodels.TABLE_GROUP_ACCESS).
			Where(squirrel.Eq{"id": accessId}),
		dbmodels.AdaptGroupAccess,
	)
}

func (repo *RosterDbRepository) ListGroupAccesses(ctx context.Context, exec Executor,
	filters models.GroupAccessFilters,
) ([]models.GroupAccess, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectGroupAccessColumns...).
		From(dbmodels.TABLE_GROUP_ACCESS).
		OrderBy("assigned_at")

	if filters.UserId != nil {
		query = query.Where(squirrel.Eq{"user_id": *filters.UserId})
	}
	if filters.GroupId != nil {
		query = query.Where(squirrel.Eq{"group_id": *filters.GroupId})
	}
	if filters.ActiveOnly {
		query = query.Where(squirrel.Eq{"is_active": true})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptGroupAccess)
}

// ListActiveMembershipsOfUser returns one entry per active access row of the
// user, joined with group and role names. Duplicate rows on the same
// (user, group) pair are all returned.
func (repo *RosterDbRepository) ListActiveMembershipsOfUser(ctx context.Context, exec Executor,
	userId uuid.UUID,
) ([]models.GroupMembership, error) {
	query := NewQueryBuilder().
		Select(
			"g.id AS group_id",
			"g.name AS group_name",
			"r.name AS role_name",
		).
		From(dbmodels.TABLE_GROUP_ACCESS + " AS ga").
		Join(dbmodels.TABLE_GROUPS + " AS g ON g.id = ga.group_id").
		Join(dbmodels.TABLE_ROLES + " AS r ON r.id = ga.role_id").
		Where(squirrel.Eq{"ga.user_id": userId, "ga.is_active": true}).
		OrderBy("ga.assigned_at")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptGroupMembership)
}

// ListActiveMembersOfGroup returns one entry per active access row on the
// group, joined with the holding user and the role name.
func (repo *RosterDbRepository) ListActiveMembersOfGroup(ctx context.Context, exec Executor,
	groupId uuid.UUID,
) ([]models.GroupMember, error) {
	query := NewQueryBuilder().
		Select(
			"u.id AS user_id",
			"u.username AS username",
			"u.email AS email",
			"r.name AS role_name",
		).
		From(dbmodels.TABLE_GROUP_ACCESS + " AS ga").
		Join(dbmodels.TABLE_USERS + " AS u ON u.id = ga.user_id").
		Join(dbmodels.TABLE_ROLES + " AS r ON r.id = ga.role_id").
		Where(squirrel.Eq{"ga.group_id": groupId, "ga.is_active": true}).
		OrderBy("ga.assigned_at")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptGroupMember)
}
