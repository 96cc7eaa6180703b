package usecases

import (
	"github.com/rosterhub/roster-backend/repositories"
	"github.com/rosterhub/roster-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories            repositories.Repositories
	enforceUniqueAssignment bool
}

type Option func(*Usecases)

// WithEnforceUniqueAssignment selects strict assignment mode: a second
// active assignment for the same (user, group) pair is rejected instead of
// being stored alongside the first.
func WithEnforceUniqueAssignment(enforce bool) Option {
	return func(u *Usecases) {
		u.enforceUniqueAssignment = enforce
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	usecases := Usecases{
		Repositories: repositories,
	}
	for _, opt := range opts {
		opt(&usecases)
	}
	return usecases
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.RosterDbRepository,
	}
}

func (usecases *Usecases) NewUserUseCase() UserUseCase {
	return UserUseCase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.RosterDbRepository,
		auditLogRepository: usecases.Repositories.RosterDbRepository,
	}
}

func (usecases *Usecases) NewGroupUseCase() GroupUseCase {
	return GroupUseCase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.RosterDbRepository,
		userRepository:     usecases.Repositories.RosterDbRepository,
		auditLogRepository: usecases.Repositories.RosterDbRepository,
	}
}

func (usecases *Usecases) NewRoleUseCase() RoleUseCase {
	return RoleUseCase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.RosterDbRepository,
	}
}

func (usecases *Usecases) NewGroupAccessUseCase() GroupAccessUseCase {
	return GroupAccessUseCase{
		executorFactory:         usecases.NewExecutorFactory(),
		transactionFactory:      usecases.NewTransactionFactory(),
		repository:              usecases.Repositories.RosterDbRepository,
		userRepository:          usecases.Repositories.RosterDbRepository,
		auditLogRepository:      usecases.Repositories.RosterDbRepository,
		enforceUniqueAssignment: usecases.enforceUniqueAssignment,
	}
}

func (usecases *Usecases) NewAccessResolverUseCase() AccessResolverUseCase {
	return AccessResolverUseCase{
		executorFactory:       usecases.NewExecutorFactory(),
		userRepository:        usecases.Repositories.RosterDbRepository,
		groupRepository:       usecases.Repositories.RosterDbRepository,
		groupAccessRepository: usecases.Repositories.RosterDbRepository,
	}
}

func (usecases *Usecases) NewAuditLogUseCase() AuditLogUseCase {
	return AuditLogUseCase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.RosterDbRepository,
	}
}

func (usecases *Usecases) NewSeedUseCase() SeedUseCase {
	return SeedUseCase{
		transactionFactory: usecases.NewTransactionFactory(),
		executorFactory:    usecases.NewExecutorFactory(),
		userRepository:     usecases.Repositories.RosterDbRepository,
		auditLogRepository: usecases.Repositories.RosterDbRepository,
	}
}
