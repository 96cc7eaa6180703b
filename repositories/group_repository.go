package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories/dbmodels"
)

type GroupRepository interface {
	CreateGroup(ctx context.Context, exec Executor, createGroup models.CreateGroup, newGroupId uuid.UUID) error
	UpdateGroup(ctx context.Context, exec Executor, updateGroup models.UpdateGroup) error
	SetGroupActive(ctx context.Context, exec Executor, groupId uuid.UUID, active bool) error
	GroupById(ctx context.Context, exec Executor, groupId uuid.UUID) (models.Group, error)
	ListGroups(ctx context.Context, exec Executor) ([]models.Group, error)
	ListActiveGroups(ctx context.Context, exec Executor) ([]models.Group, error)
}

func (repo *RosterDbRepository) CreateGroup(ctx context.Context, exec Executor,
	createGroup models.CreateGroup, newGroupId uuid.UUID,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_GROUPS).
			Columns("id", "name", "description").
			Values(newGroupId, createGroup.Name, createGroup.Description),
	)
	return err
}

func (repo *RosterDbRepository) UpdateGroup(ctx context.Context, exec Executor,
	updateGroup models.UpdateGroup,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_GROUPS).
		Where(squirrel.Eq{"id": updateGroup.Id}).
		Set("updated_at", squirrel.Expr("NOW()"))

	if updateGroup.Name != nil {
		query = query.Set("name", *updateGroup.Name)
	}
	if updateGroup.Description != nil {
		query = query.Set("description", *updateGroup.Description)
	}

	rowsAffected, err := ExecBuilder(ctx, exec, query)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.NotFoundError, "no group with id %s", updateGroup.Id)
	}
	return nil
}

func (repo *RosterDbRepository) SetGroupActive(ctx context.Context, exec Executor,
	groupId uuid.UUID, active bool,
) error {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_GROUPS).
			Where(squirrel.Eq{"id": groupId}).
			Set("is_active", active).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.NotFoundError, "no group with id %s", groupId)
	}
	return nil
}

func (repo *RosterDbRepository) GroupById(ctx context.Context, exec Executor, groupId uuid.UUID) (models.Group, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectGroupColumns...).
			From(dbmodels.TABLE_GROUPS).
			Where(squirrel.Eq{"id": groupId}),
		dbmodels.AdaptGroup,
	)
}

func (repo *RosterDbRepository) ListGroups(ctx context.Context, exec Executor) ([]models.Group, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectGroupColumns...).
			From(dbmodels.TABLE_GROUPS).
			OrderBy("name"),
		dbmodels.AdaptGroup,
	)
}

func (repo *RosterDbRepository) ListActiveGroups(ctx context.Context, exec Executor) ([]models.Group, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectGroupColumns...).
			From(dbmodels.TABLE_GROUPS).
			Where(squirrel.Eq{"is_active": true}).
			OrderBy("name"),
		dbmodels.AdaptGroup,
	)
}
