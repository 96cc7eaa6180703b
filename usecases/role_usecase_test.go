package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rosterhub/roster-backend/mocks"
	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/usecases/executor_factory"
)

func roleUsecaseTestHarness(t *testing.T) (RoleUseCase, *mocks.RoleRepository, *mocks.TransactionFactory) {
	t.Helper()

	repository := new(mocks.RoleRepository)
	transactionFactory := &mocks.TransactionFactory{TxMock: new(mocks.Executor)}

	usecase := RoleUseCase{
		executorFactory:    executor_factory.NewExecutorFactoryStub(),
		transactionFactory: transactionFactory,
		repository:         repository,
	}
	return usecase, repository, transactionFactory
}

func TestCreateRole(t *testing.T) {
	roleId := uuid.MustParse("d16b5a60-47c3-4b1a-9a53-0b5be5b1a0f2")
	role := models.Role{
		Id:        roleId,
		Name:      "Editor",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	t.Run("nominal", func(t *testing.T) {
		usecase, repository, transactionFactory := roleUsecaseTestHarness(t)
		transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
		repository.On("CreateRole", mock.Anything, transactionFactory.TxMock,
			models.CreateRole{Name: "Editor"}, mock.Anything).Return(nil)
		repository.On("RoleById", mock.Anything, transactionFactory.TxMock, mock.Anything).
			Return(role, nil)

		created, err := usecase.CreateRole(context.Background(), models.CreateRole{Name: "Editor"})
		assert.NoError(t, err)
		assert.Equal(t, "Editor", created.Name)

		repository.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		usecase, repository, _ := roleUsecaseTestHarness(t)

		_, err := usecase.CreateRole(context.Background(), models.CreateRole{})
		assert.ErrorIs(t, err, models.BadParameterError)

		repository.AssertNotCalled(t, "CreateRole",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate name", func(t *testing.T) {
		usecase, repository, transactionFactory := roleUsecaseTestHarness(t)
		transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
		repository.On("CreateRole", mock.Anything, transactionFactory.TxMock,
			models.CreateRole{Name: "Editor"}, mock.Anything).
			Return(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := usecase.CreateRole(context.Background(), models.CreateRole{Name: "Editor"})
		assert.ErrorIs(t, err, models.ConflictError)

		repository.AssertExpectations(t)
	})
}

func TestListRoles(t *testing.T) {
	usecase, repository, _ := roleUsecaseTestHarness(t)
	roles := []models.Role{{Id: uuid.New(), Name: "Editor"}, {Id: uuid.New(), Name: "Viewer"}}
	repository.On("ListRoles", mock.Anything, mock.Anything).Return(roles, nil)

	got, err := usecase.ListRoles(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, roles, got)

	repository.AssertExpectations(t)
}

func TestDeleteRole(t *testing.T) {
	roleId := uuid.MustParse("d16b5a60-47c3-4b1a-9a53-0b5be5b1a0f2")

	t.Run("nominal", func(t *testing.T) {
		usecase, repository, transactionFactory := roleUsecaseTestHarness(t)
		transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
		repository.On("RoleById", mock.Anything, transactionFactory.TxMock, roleId).
			Return(models.Role{Id: roleId, Name: "Editor"}, nil)
		repository.On("DeleteRole", mock.Anything, transactionFactory.TxMock, roleId).Return(nil)

		err := usecase.DeleteRole(context.Background(), roleId)
		assert.NoError(t, err)

		repository.AssertExpectations(t)
	})

	t.Run("unknown role", func(t *testing.T) {
		usecase, repository, transactionFactory := roleUsecaseTestHarness(t)
		transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
		repository.On("RoleById", mock.Anything, transactionFactory.TxMock, roleId).
			Return(models.Role{}, errors.Wrap(models.NotFoundError, "no role"))

		err := usecase.DeleteRole(context.Background(), roleId)
		assert.ErrorIs(t, err, models.NotFoundError)

		repository.AssertNotCalled(t, "DeleteRole", mock.Anything, mock.Anything, mock.Anything)
	})
}
