package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rosterhub/roster-backend/repositories"
)

type ExecutorFactory struct {
	mock.Mock
}

func (f *ExecutorFactory) NewExecutor() repositories.Executor {
	args := f.Called()
	return args.Get(0).(repositories.Executor)
}

type TransactionFactory struct {
	mock.Mock
	TxMock *Executor
}

func (t *TransactionFactory) Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error {
	args := t.Called(ctx, fn)
	err := fn(t.TxMock)
	if err != nil {
		return err
	}
	return args.Error(0)
}
