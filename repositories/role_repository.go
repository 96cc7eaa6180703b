package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories/dbmodels"
)

type RoleRepository interface {
	CreateRole(ctx context.Context, exec Executor, createRole models.CreateRole, newRoleId uuid.UUID) error
	UpdateRole(ctx context.Context, exec Executor, updateRole models.UpdateRole) error
	DeleteRole(ctx context.Context, exec Executor, roleId uuid.UUID) error
	RoleById(ctx context.Context, exec Executor, roleId uuid.UUID) (models.Role, error)
	ListRoles(ctx context.Context, exec Executor) ([]models.Role, error)
}

func (repo *RosterDbRepository) CreateRole(ctx context.Context, exec Executor,
	createRole models.CreateRole, newRoleId uuid.UUID,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_ROLES).
			Columns("id", "name", "description").
			Values(newRoleId, createRole.Name, createRole.Description),
	)
	return err
}

func (repo *RosterDbRepository) UpdateRole(ctx context.Context, exec Executor,
	updateRole models.UpdateRole,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_ROLES).
		Where(squirrel.Eq{"id": updateRole.Id}).
		Set("updated_at", squirrel.Expr("NOW()"))

	if updateRole.Name != nil {
		query = query.Set("name", *updateRole.Name)
	}
	if updateRole.Description != nil {
		query = query.Set("description", *updateRole.Description)
	}

	rowsAffected, err := ExecBuilder(ctx, exec, query)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.NotFoundError, "no role with id %s", updateRole.Id)
	}
	return nil
}

func (repo *RosterDbRepository) DeleteRole(ctx context.Context, exec Executor, roleId uuid.UUID) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_ROLES).Where(squirrel.Eq{"id": roleId}),
	)
	return err
}

func (repo *RosterDbRepository) RoleById(ctx context.Context, exec Executor, roleId uuid.UUID) (models.Role, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectRoleColumns...).
			From(dbmodels.TABLE_ROLES).
			Where(squirrel.Eq{"id": roleId}),
		dbmodels.AdaptRole,
	)
}

func (repo *RosterDbRepository) ListRoles(ctx context.Context, exec Executor) ([]models.Role, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectRoleColumns...).
			From(dbmodels.TABLE_ROLES).
			OrderBy("name"),
		dbmodels.AdaptRole,
	)
}
