package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/pure_utils"
	"github.com/rosterhub/roster-backend/repositories"
	"github.com/rosterhub/roster-backend/usecases/executor_factory"
)

// GroupAccessUseCase coordinates role assignments. The store tolerates
// several active assignments for the same (user, group) pair; strict mode
// rejects new duplicates at assignment time instead.
type GroupAccessUseCase struct {
	executorFactory         executor_factory.ExecutorFactory
	transactionFactory      executor_factory.TransactionFactory
	repository              repositories.GroupAccessRepository
	userRepository          repositories.UserRepository
	auditLogRepository      repositories.AuditLogRepository
	enforceUniqueAssignment bool
}

func (usecase *GroupAccessUseCase) GetGroupAccess(ctx context.Context, accessId uuid.UUID) (models.GroupAccess, error) {
	return usecase.repository.GroupAccessById(ctx, usecase.executorFactory.NewExecutor(), accessId)
}

func (usecase *GroupAccessUseCase) ListGroupAccesses(ctx context.Context,
	filters models.GroupAccessFilters,
) ([]models.GroupAccess, error) {
	return usecase.repository.ListGroupAccesses(ctx, usecase.executorFactory.NewExecutor(), filters)
}

func (usecase *GroupAccessUseCase) AssignRole(ctx context.Context, actorUserId uuid.UUID,
	input models.CreateGroupAccess,
) (models.GroupAccess, error) {
	exec := usecase.executorFactory.NewExecutor()
	actor, err := resolveActor(ctx, usecase.userRepository, exec, actorUserId)
	if err != nil {
		return models.GroupAccess{}, err
	}
	if _, err := usecase.userRepository.UserById(ctx, exec, input.UserId); err != nil {
		return models.GroupAccess{}, err
	}

	access, err := executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Executor) (models.GroupAccess, error) {
			if usecase.enforceUniqueAssignment {
				existing, err := usecase.repository.ListGroupAccesses(ctx, tx, models.GroupAccessFilters{
					UserId:     &input.UserId,
					GroupId:    &input.GroupId,
					ActiveOnly: true,
				})
				if err != nil {
					return models.GroupAccess{}, err
				}
				if len(existing) > 0 {
					return models.GroupAccess{}, models.ErrDuplicateAssignment
				}
			}

			newAccessId := uuid.New()
			if err := usecase.repository.CreateGroupAccess(ctx, tx, input, newAccessId); err != nil {
				if repositories.IsForeignKeyViolationError(err) {
					return models.GroupAccess{}, errors.Wrap(models.NotFoundError,
						"group or role does not exist")
				}
				return models.GroupAccess{}, err
			}
			return usecase.repository.GroupAccessById(ctx, tx, newAccessId)
		})
	if err != nil {
		return models.GroupAccess{}, err
	}

	writeAuditLog(ctx, usecase.auditLogRepository, exec, models.CreateAuditLog{
		Kind:          models.AuditLogGroupAccess,
		ActorUserId:   actor.Id,
		TargetUserId:  &access.UserId,
		TargetGroupId: &access.GroupId,
		ActionType:    models.ActionAssignRole,
		NewRole:       pure_utils.Ptr(access.RoleId.String()),
	})

	return access, nil
}

func (usecase *GroupAccessUseCase) ChangeRole(ctx context.Context, actorUserId uuid.UUID,
	accessId, newRoleId uuid.UUID,
) (models.GroupAccess, error) {
	exec := usecase.executorFactory.NewExecutor()
	actor, err := resolveActor(ctx, usecase.userRepository, exec, actorUserId)
	if err != nil {
		return models.GroupAccess{}, err
	}

	var before models.GroupAccess
	updated, err := executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Executor) (models.GroupAccess, error) {
			var err error
			before, err = usecase.repository.GroupAccessById(ctx, tx, accessId)
			if err != nil {
				return models.GroupAccess{}, err
			}
			if err := usecase.repository.UpdateGroupAccessRole(ctx, tx, accessId, newRoleId); err != nil {
				if repositories.IsForeignKeyViolationError(err) {
					return models.GroupAccess{}, errors.Wrap(models.NotFoundError,
						"role does not exist")
				}
				return models.GroupAccess{}, err
			}
			return usecase.repository.GroupAccessById(ctx, tx, accessId)
		})
	if err != nil {
		return models.GroupAccess{}, err
	}

	writeAuditLog(ctx, usecase.auditLogRepository, exec, models.CreateAuditLog{
		Kind:          models.AuditLogGroupAccess,
		ActorUserId:   actor.Id,
		TargetUserId:  &updated.UserId,
		TargetGroupId: &updated.GroupId,
		ActionType:    models.ActionChangeRole,
		OldRole:       pure_utils.Ptr(before.RoleId.String()),
		NewRole:       pure_utils.Ptr(updated.RoleId.String()),
	})

	return updated, nil
}

func (usecase *GroupAccessUseCase) RemoveRole(ctx context.Context, actorUserId uuid.UUID,
	accessId uuid.UUID,
) error {
	exec := usecase.executorFactory.NewExecutor()
	actor, err := resolveActor(ctx, usecase.userRepository, exec, actorUserId)
	if err != nil {
		return err
	}

	before, err := executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Executor) (models.GroupAccess, error) {
			before, err := usecase.repository.GroupAccessById(ctx, tx, accessId)
			if err != nil {
				return models.GroupAccess{}, err
			}
			return before, usecase.repository.DeleteGroupAccess(ctx, tx, accessId)
		})
	if err != nil {
		return err
	}

	writeAuditLog(ctx, usecase.auditLogRepository, exec, models.CreateAuditLog{
		Kind:          models.AuditLogGroupAccess,
		ActorUserId:   actor.Id,
		TargetUserId:  &before.UserId,
		TargetGroupId: &before.GroupId,
		ActionType:    models.ActionRemoveRole,
		OldRole:       pure_utils.Ptr(before.RoleId.String()),
	})

	return nil
}
