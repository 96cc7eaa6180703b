package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter     ExecutorGetter
	RosterDbRepository *RosterDbRepository
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter:     NewExecutorGetter(pool),
		RosterDbRepository: NewRosterDbRepository(),
	}
}
