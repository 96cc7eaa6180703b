package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories/dbmodels"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec Executor, createUser models.CreateUser, newUserId uuid.UUID) error
	UpdateUser(ctx context.Context, exec Executor, updateUser models.UpdateUser) error
	SetUserActive(ctx context.Context, exec Executor, userId uuid.UUID, active bool) error
	DeleteUser(ctx context.Context, exec Executor, userId uuid.UUID) error
	UserById(ctx context.Context, exec Executor, userId uuid.UUID) (models.User, error)
	ListUsers(ctx context.Context, exec Executor) ([]models.User, error)
	ListActiveGlobalAdmins(ctx context.Context, exec Executor) ([]models.User, error)
}

func (repo *RosterDbRepository) CreateUser(ctx context.Context, exec Executor,
	createUser models.CreateUser, newUserId uuid.UUID,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_USERS).
			Columns(
				"id",
				"username",
				"email",
				"password_hash",
				"is_global_admin",
			).
			Values(
				newUserId,
				createUser.Username,
				createUser.Email,
				createUser.PasswordHash,
				createUser.IsGlobalAdmin,
			),
	)
	return err
}

func (repo *RosterDbRepository) UpdateUser(ctx context.Context, exec Executor,
	updateUser models.UpdateUser,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{"id": updateUser.Id}).
		Set("updated_at", squirrel.Expr("NOW()"))

	if updateUser.Username != nil {
		query = query.Set("username", *updateUser.Username)
	}
	if updateUser.Email != nil {
		query = query.Set("email", *updateUser.Email)
	}
	if updateUser.IsGlobalAdmin != nil {
		query = query.Set("is_global_admin", *updateUser.IsGlobalAdmin)
	}

	rowsAffected, err := ExecBuilder(ctx, exec, query)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.NotFoundError, "no user with id %s", updateUser.Id)
	}
	return nil
}

func (repo *RosterDbRepository) SetUserActive(ctx context.Context, exec Executor,
	userId uuid.UUID, active bool,
) error {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}).
			Set("is_active", active).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.NotFoundError, "no user with id %s", userId)
	}
	return nil
}

func (repo *RosterDbRepository) DeleteUser(ctx context.Context, exec Executor, userId uuid.UUID) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_USERS).Where(squirrel.Eq{"id": userId}),
	)
	return err
}

func (repo *RosterDbRepository) UserById(ctx context.Context, exec Executor, userId uuid.UUID) (models.User, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}),
		dbmodels.AdaptUser,
	)
}

func (repo *RosterDbRepository) ListUsers(ctx context.Context, exec Executor) ([]models.User, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			OrderBy("created_at"),
		dbmodels.AdaptUser,
	)
}

func (repo *RosterDbRepository) ListActiveGlobalAdmins(ctx context.Context, exec Executor) ([]models.User, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"is_global_admin": true, "is_active": true}).
			OrderBy("created_at"),
		dbmodels.AdaptUser,
	)
}
