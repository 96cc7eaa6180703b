package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories"
	"github.com/rosterhub/roster-backend/usecases/executor_factory"
)

type UserUseCase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         repositories.UserRepository
	auditLogRepository repositories.AuditLogRepository
}

func (usecase *UserUseCase) GetUser(ctx context.Context, userId uuid.UUID) (models.User, error) {
	return usecase.repository.UserById(ctx, usecase.executorFactory.NewExecutor(), userId)
}

func (usecase *UserUseCase) ListUsers(ctx context.Context) ([]models.User, error) {
	return usecase.repository.ListUsers(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *UserUseCase) CreateUser(ctx context.Context, actorUserId uuid.UUID,
	input models.CreateUser,
) (models.User, error) {
	if err := validateCreateUser(input); err != nil {
		return models.User{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	actor, err := resolveActor(ctx, usecase.repository, exec, actorUserId)
	if err != nil {
		return models.User{}, err
	}

	user, err := executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Executor) (models.User, error) {
			newUserId := uuid.New()
			if err := usecase.repository.CreateUser(ctx, tx, input, newUserId); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.User{}, errors.Wrap(models.ConflictError,
						"a user with this username or email already exists")
				}
				return models.User{}, err
			}
			return usecase.repository.UserById(ctx, tx, newUserId)
		})
	if err != nil {
		return models.User{}, err
	}

	writeAuditLog(ctx, usecase.auditLogRepository, exec, models.CreateAuditLog{
		Kind:         models.AuditLogUser,
		ActorUserId:  actor.Id,
		TargetUserId: &user.Id,
		ActionType:   models.ActionCreateUser,
		NewValue:     marshalSnapshot(ctx, models.NewUserSnapshot(user)),
	})

	return user, nil
}

func (usecase *UserUseCase) UpdateUser(ctx context.Context, actorUserId uuid.UUID,
	input models.UpdateUser,
) (models.User, error) {
	exec := usecase.executorFactory.NewExecutor()
	actor, err := resolveActor(ctx, usecase.repository, exec, actorUserId)
	if err != nil {
		return models.User{}, err
	}

	var before models.User
	updated, err := executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Executor) (models.User, error) {
			var err error
			before, err = usecase.repository.UserById(ctx, tx, input.Id)
			if err != nil {
				return models.User{}, err
			}
			if err := usecase.repository.UpdateUser(ctx, tx, input); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.User{}, errors.Wrap(models.ConflictError,
						"a user with this username or email already exists")
				}
				return models.User{}, err
			}
			return usecase.repository.UserById(ctx, tx, input.Id)
		})
	if err != nil {
		return models.User{}, err
	}

	writeAuditLog(ctx, usecase.auditLogRepository, exec, models.CreateAuditLog{
		Kind:         models.AuditLogUser,
		ActorUserId:  actor.Id,
		TargetUserId: &updated.Id,
		ActionType:   models.ActionUpdateUser,
		OldValue:     marshalSnapshot(ctx, models.NewUserSnapshot(before)),
		NewValue:     marshalSnapshot(ctx, models.NewUserSnapshot(updated)),
	})

	return updated, nil
}

// SetUserActive flips the active flag of a user. The audit entry records the
// minimal before and after values of the flag, not full snapshots.
func (usecase *UserUseCase) SetUserActive(ctx context.Context, actorUserId uuid.UUID,
	userId uuid.UUID, active bool,
) (models.User, error) {
	exec := usecase.executorFactory.NewExecutor()
	actor, err := resolveActor(ctx, usecase.repository, exec, actorUserId)
	if err != nil {
		return models.User{}, err
	}

	var before models.User
	updated, err := executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Executor) (models.User, error) {
			var err error
			before, err = usecase.repository.UserById(ctx, tx, userId)
			if err != nil {
				return models.User{}, err
			}
			if err := usecase.repository.SetUserActive(ctx, tx, userId, active); err != nil {
				return models.User{}, err
			}
			return usecase.repository.UserById(ctx, tx, userId)
		})
	if err != nil {
		return models.User{}, err
	}

	actionType := models.ActionActivateUser
	if !active {
		actionType = models.ActionDeactivateUser
	}
	writeAuditLog(ctx, usecase.auditLogRepository, exec, models.CreateAuditLog{
		Kind:         models.AuditLogUser,
		ActorUserId:  actor.Id,
		TargetUserId: &updated.Id,
		ActionType:   actionType,
		OldValue:     marshalSnapshot(ctx, models.ActiveSnapshot{IsActive: before.IsActive}),
		NewValue:     marshalSnapshot(ctx, models.ActiveSnapshot{IsActive: updated.IsActive}),
	})

	return updated, nil
}

// DeleteUser removes the user row for good. Assignments referencing the user
// are removed by the store, audit entries naming the user are kept.
func (usecase *UserUseCase) DeleteUser(ctx context.Context, actorUserId uuid.UUID,
	userId uuid.UUID,
) error {
	exec := usecase.executorFactory.NewExecutor()
	actor, err := resolveActor(ctx, usecase.repository, exec, actorUserId)
	if err != nil {
		return err
	}

	before, err := executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Executor) (models.User, error) {
			before, err := usecase.repository.UserById(ctx, tx, userId)
			if err != nil {
				return models.User{}, err
			}
			return before, usecase.repository.DeleteUser(ctx, tx, userId)
		})
	if err != nil {
		return err
	}

	writeAuditLog(ctx, usecase.auditLogRepository, exec, models.CreateAuditLog{
		Kind:         models.AuditLogUser,
		ActorUserId:  actor.Id,
		TargetUserId: &userId,
		ActionType:   models.ActionDeleteUser,
		OldValue:     marshalSnapshot(ctx, models.NewUserSnapshot(before)),
	})

	return nil
}

func validateCreateUser(input models.CreateUser) error {
	if input.Username == "" {
		return errors.Wrap(models.BadParameterError, "username is required")
	}
	if input.Email == "" {
		return errors.Wrap(models.BadParameterError, "email is required")
	}
	if input.PasswordHash == "" {
		return errors.Wrap(models.BadParameterError, "password hash is required")
	}
	return nil
}
