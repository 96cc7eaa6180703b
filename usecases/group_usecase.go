package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories"
	"github.com/rosterhub/roster-backend/usecases/executor_factory"
)

type GroupUseCase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         repositories.GroupRepository
	userRepository     repositories.UserRepository
	auditLogRepository repositories.AuditLogRepository
}

func (usecase *GroupUseCase) GetGroup(ctx context.Context, groupId uuid.UUID) (models.Group, error) {
	return usecase.repository.GroupById(ctx, usecase.executorFactory.NewExecutor(), groupId)
}

func (usecase *GroupUseCase) ListGroups(ctx context.Context) ([]models.Group, error) {
	return usecase.repository.ListGroups(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *GroupUseCase) CreateGroup(ctx context.Context, actorUserId uuid.UUID,
	input models.CreateGroup,
) (models.Group, error) {
	if input.Name == "" {
		return models.Group{}, errors.Wrap(models.BadParameterError, "group name is required")
	}

	exec := usecase.executorFactory.NewExecutor()
	actor, err := resolveActor(ctx, usecase.userRepository, exec, actorUserId)
	if err != nil {
		return models.Group{}, err
	}

	group, err := executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Executor) (models.Group, error) {
			newGroupId := uuid.New()
			if err := usecase.repository.CreateGroup(ctx, tx, input, newGroupId); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.Group{}, errors.Wrap(models.ConflictError,
						"a group with this name already exists")
				}
				return models.Group{}, err
			}
			return usecase.repository.GroupById(ctx, tx, newGroupId)
		})
	if err != nil {
		return models.Group{}, err
	}

	writeAuditLog(ctx, usecase.auditLogRepository, exec, models.CreateAuditLog{
		Kind:          models.AuditLogGroup,
		ActorUserId:   actor.Id,
		TargetGroupId: &group.Id,
		ActionType:    models.ActionCreateGroup,
		NewValue:      marshalSnapshot(ctx, models.NewGroupSnapshot(group)),
	})

	return group, nil
}

func (usecase *GroupUseCase) UpdateGroup(ctx context.Context, actorUserId uuid.UUID,
	input models.UpdateGroup,
) (models.Group, error) {
	exec := usecase.executorFactory.NewExecutor()
	actor, err := resolveActor(ctx, usecase.userRepository, exec, actorUserId)
	if err != nil {
		return models.Group{}, err
	}

	var before models.Group
	updated, err := executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Executor) (models.Group, error) {
			var err error
			before, err = usecase.repository.GroupById(ctx, tx, input.Id)
			if err != nil {
				return models.Group{}, err
			}
			if err := usecase.repository.UpdateGroup(ctx, tx, input); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.Group{}, errors.Wrap(models.ConflictError,
						"a group with this name already exists")
				}
				return models.Group{}, err
			}
			return usecase.repository.GroupById(ctx, tx, input.Id)
		})
	if err != nil {
		return models.Group{}, err
	}

	writeAuditLog(ctx, usecase.auditLogRepository, exec, models.CreateAuditLog{
		Kind:          models.AuditLogGroup,
		ActorUserId:   actor.Id,
		TargetGroupId: &updated.Id,
		ActionType:    models.ActionUpdateGroup,
		OldValue:      marshalSnapshot(ctx, models.NewGroupSnapshot(before)),
		NewValue:      marshalSnapshot(ctx, models.NewGroupSnapshot(updated)),
	})

	return updated, nil
}

// DeactivateGroup retires a group without touching its assignments. The rows
// stay in place and stop contributing to effective memberships; the audit
// entry keeps the UPDATE_GROUP action with minimal active-flag values.
func (usecase *GroupUseCase) DeactivateGroup(ctx context.Context, actorUserId uuid.UUID,
	groupId uuid.UUID,
) (models.Group, error) {
	exec := usecase.executorFactory.NewExecutor()
	actor, err := resolveActor(ctx, usecase.userRepository, exec, actorUserId)
	if err != nil {
		return models.Group{}, err
	}

	var before models.Group
	updated, err := executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Executor) (models.Group, error) {
			var err error
			before, err = usecase.repository.GroupById(ctx, tx, groupId)
			if err != nil {
				return models.Group{}, err
			}
			if err := usecase.repository.SetGroupActive(ctx, tx, groupId, false); err != nil {
				return models.Group{}, err
			}
			return usecase.repository.GroupById(ctx, tx, groupId)
		})
	if err != nil {
		return models.Group{}, err
	}

	writeAuditLog(ctx, usecase.auditLogRepository, exec, models.CreateAuditLog{
		Kind:          models.AuditLogGroup,
		ActorUserId:   actor.Id,
		TargetGroupId: &updated.Id,
		ActionType:    models.ActionUpdateGroup,
		OldValue:      marshalSnapshot(ctx, models.ActiveSnapshot{IsActive: before.IsActive}),
		NewValue:      marshalSnapshot(ctx, models.ActiveSnapshot{IsActive: updated.IsActive}),
	})

	return updated, nil
}
