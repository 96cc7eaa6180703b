package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories"
	"github.com/rosterhub/roster-backend/usecases/executor_factory"
	"github.com/rosterhub/roster-backend/utils"
)

type SeedUseCase struct {
	transactionFactory executor_factory.TransactionFactory
	executorFactory    executor_factory.ExecutorFactory
	userRepository     repositories.UserRepository
	auditLogRepository repositories.AuditLogRepository
}

// SeedGlobalAdmin creates the bootstrap global admin. There is no actor to
// attribute the creation to at this point, so the audit entry names the new
// admin as its own actor. Already seeded installations are left untouched.
func (usecase *SeedUseCase) SeedGlobalAdmin(ctx context.Context, email string) error {
	exec := usecase.executorFactory.NewExecutor()

	newUserId := uuid.New()
	user, err := executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Executor) (models.User, error) {
			err := usecase.userRepository.CreateUser(ctx, tx, models.CreateUser{
				Username: email,
				Email:    email,
				// locked placeholder, no credential can ever match it
				PasswordHash:  "!",
				IsGlobalAdmin: true,
			}, newUserId)
			if err != nil {
				return models.User{}, err
			}
			return usecase.userRepository.UserById(ctx, tx, newUserId)
		})
	if repositories.IsUniqueViolationError(err) {
		utils.LoggerFromContext(ctx).InfoContext(ctx,
			"global admin already exists, skipping seed", "email", email)
		return nil
	}
	if err != nil {
		return err
	}

	writeAuditLog(ctx, usecase.auditLogRepository, exec, models.CreateAuditLog{
		Kind:         models.AuditLogUser,
		ActorUserId:  user.Id,
		TargetUserId: &user.Id,
		ActionType:   models.ActionCreateUser,
		NewValue:     marshalSnapshot(ctx, models.NewUserSnapshot(user)),
	})

	utils.LoggerFromContext(ctx).InfoContext(ctx, "seeded global admin", "email", email)
	return nil
}
