package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories"
	"github.com/rosterhub/roster-backend/usecases/executor_factory"
)

// RoleUseCase covers the role catalog. Role mutations are not audited:
// roles are configuration, the audit trail tracks membership and identity.
type RoleUseCase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         repositories.RoleRepository
}

func (usecase *RoleUseCase) GetRole(ctx context.Context, roleId uuid.UUID) (models.Role, error) {
	return usecase.repository.RoleById(ctx, usecase.executorFactory.NewExecutor(), roleId)
}

func (usecase *RoleUseCase) ListRoles(ctx context.Context) ([]models.Role, error) {
	return usecase.repository.ListRoles(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *RoleUseCase) CreateRole(ctx context.Context, input models.CreateRole) (models.Role, error) {
	if input.Name == "" {
		return models.Role{}, errors.Wrap(models.BadParameterError, "role name is required")
	}

	return executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Executor) (models.Role, error) {
			newRoleId := uuid.New()
			if err := usecase.repository.CreateRole(ctx, tx, input, newRoleId); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.Role{}, errors.Wrap(models.ConflictError,
						"a role with this name already exists")
				}
				return models.Role{}, err
			}
			return usecase.repository.RoleById(ctx, tx, newRoleId)
		})
}

func (usecase *RoleUseCase) UpdateRole(ctx context.Context, input models.UpdateRole) (models.Role, error) {
	return executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Executor) (models.Role, error) {
			if err := usecase.repository.UpdateRole(ctx, tx, input); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.Role{}, errors.Wrap(models.ConflictError,
						"a role with this name already exists")
				}
				return models.Role{}, err
			}
			return usecase.repository.RoleById(ctx, tx, input.Id)
		})
}

func (usecase *RoleUseCase) DeleteRole(ctx context.Context, roleId uuid.UUID) error {
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		if _, err := usecase.repository.RoleById(ctx, tx, roleId); err != nil {
			return err
		}
		return usecase.repository.DeleteRole(ctx, tx, roleId)
	})
}
