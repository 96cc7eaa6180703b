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
	"github.com/stretchr/testify/suite"

	"github.com/rosterhub/roster-backend/mocks"
	"github.com/rosterhub/roster-backend/models"
)

type UserUsecaseTestSuite struct {
	suite.Suite
	ctx                context.Context
	executor           *mocks.Executor
	transaction        *mocks.Executor
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	userRepository     *mocks.UserRepository
	auditLogRepository *mocks.AuditLogRepository

	actorId         uuid.UUID
	userId          uuid.UUID
	actor           models.User
	user            models.User
	repositoryError error
}

func (suite *UserUsecaseTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.executor = new(mocks.Executor)
	suite.transaction = new(mocks.Executor)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.userRepository = new(mocks.UserRepository)
	suite.auditLogRepository = new(mocks.AuditLogRepository)
	suite.repositoryError = errors.New("some repository error")

	suite.actorId = uuid.MustParse("25ab6323-1657-4a52-923a-ef6983fe4532")
	suite.userId = uuid.MustParse("c5968ff7-6142-4623-a6b3-1539f345e5fa")
	suite.actor = models.User{
		Id:       suite.actorId,
		Username: "admin",
		Email:    "admin@example.com",
		IsActive: true,
	}
	suite.user = models.User{
		Id:        suite.userId,
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		IsActive:  true,
		CreatedAt: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (suite *UserUsecaseTestSuite) makeUsecase() *UserUseCase {
	return &UserUseCase{
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.userRepository,
		auditLogRepository: suite.auditLogRepository,
	}
}

func (suite *UserUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.executorFactory.AssertExpectations(t)
	suite.transactionFactory.AssertExpectations(t)
	suite.userRepository.AssertExpectations(t)
	suite.auditLogRepository.AssertExpectations(t)
}

func (suite *UserUsecaseTestSuite) expectActorResolved() {
	suite.userRepository.On("UserById", suite.ctx, suite.executor, suite.actorId).
		Return(suite.actor, nil).Once()
}

func (suite *UserUsecaseTestSuite) TestCreateUser() {
	input := models.CreateUser{
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: "hash",
	}

	suite.expectActorResolved()
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.userRepository.On("CreateUser", suite.ctx, suite.transaction, input, mock.Anything).
		Return(nil)
	suite.userRepository.On("UserById", suite.ctx, suite.transaction, mock.Anything).
		Return(suite.user, nil)
	suite.auditLogRepository.On("CreateAuditLog", suite.ctx, suite.executor,
		mock.MatchedBy(func(input models.CreateAuditLog) bool {
			return input.Kind == models.AuditLogUser &&
				input.ActionType == models.ActionCreateUser &&
				input.ActorUserId == suite.actorId &&
				input.TargetUserId != nil && *input.TargetUserId == suite.userId &&
				input.OldValue == nil && input.NewValue != nil
		}), mock.Anything).Return(nil)

	result, err := suite.makeUsecase().CreateUser(suite.ctx, suite.actorId, input)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, suite.user, result)
	suite.AssertExpectations()
}

func (suite *UserUsecaseTestSuite) TestCreateUser_missingUsername() {
	_, err := suite.makeUsecase().CreateUser(suite.ctx, suite.actorId, models.CreateUser{
		Email:        "jdoe@example.com",
		PasswordHash: "hash",
	})

	assert.ErrorIs(suite.T(), err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *UserUsecaseTestSuite) TestCreateUser_actorNotFound() {
	suite.userRepository.On("UserById", suite.ctx, suite.executor, suite.actorId).
		Return(models.User{}, errors.Wrap(models.NotFoundError, "user not found"))

	_, err := suite.makeUsecase().CreateUser(suite.ctx, suite.actorId, models.CreateUser{
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: "hash",
	})

	t := suite.T()
	assert.ErrorIs(t, err, models.ErrActorNotFound)
	suite.auditLogRepository.AssertNotCalled(t, "CreateAuditLog",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *UserUsecaseTestSuite) TestCreateUser_uniqueViolation() {
	suite.expectActorResolved()
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.userRepository.On("CreateUser", suite.ctx, suite.transaction, mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := suite.makeUsecase().CreateUser(suite.ctx, suite.actorId, models.CreateUser{
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: "hash",
	})

	t := suite.T()
	assert.ErrorIs(t, err, models.ConflictError)
	suite.auditLogRepository.AssertNotCalled(t, "CreateAuditLog",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

// The mutation is already committed when the audit write fails, so the
// operation still reports success.
func (suite *UserUsecaseTestSuite) TestCreateUser_auditWriteFailure() {
	input := models.CreateUser{
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: "hash",
	}

	suite.expectActorResolved()
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.userRepository.On("CreateUser", suite.ctx, suite.transaction, input, mock.Anything).
		Return(nil)
	suite.userRepository.On("UserById", suite.ctx, suite.transaction, mock.Anything).
		Return(suite.user, nil)
	suite.auditLogRepository.On("CreateAuditLog", suite.ctx, suite.executor, mock.Anything, mock.Anything).
		Return(suite.repositoryError)

	result, err := suite.makeUsecase().CreateUser(suite.ctx, suite.actorId, input)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, suite.user, result)
	suite.AssertExpectations()
}

func (suite *UserUsecaseTestSuite) TestUpdateUser() {
	newEmail := "john.doe@example.com"
	input := models.UpdateUser{Id: suite.userId, Email: &newEmail}
	updated := suite.user
	updated.Email = newEmail

	suite.expectActorResolved()
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.userRepository.On("UserById", suite.ctx, suite.transaction, suite.userId).
		Return(suite.user, nil).Once()
	suite.userRepository.On("UpdateUser", suite.ctx, suite.transaction, input).Return(nil)
	suite.userRepository.On("UserById", suite.ctx, suite.transaction, suite.userId).
		Return(updated, nil).Once()
	suite.auditLogRepository.On("CreateAuditLog", suite.ctx, suite.executor,
		mock.MatchedBy(func(input models.CreateAuditLog) bool {
			return input.ActionType == models.ActionUpdateUser &&
				input.OldValue != nil && input.NewValue != nil
		}), mock.Anything).Return(nil)

	result, err := suite.makeUsecase().UpdateUser(suite.ctx, suite.actorId, input)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, updated, result)
	suite.AssertExpectations()
}

func (suite *UserUsecaseTestSuite) TestUpdateUser_notFound() {
	suite.expectActorResolved()
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.userRepository.On("UserById", suite.ctx, suite.transaction, suite.userId).
		Return(models.User{}, errors.Wrap(models.NotFoundError, "user not found"))

	_, err := suite.makeUsecase().UpdateUser(suite.ctx, suite.actorId,
		models.UpdateUser{Id: suite.userId})

	t := suite.T()
	assert.ErrorIs(t, err, models.NotFoundError)
	suite.auditLogRepository.AssertNotCalled(t, "CreateAuditLog",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *UserUsecaseTestSuite) TestDeactivateUser() {
	deactivated := suite.user
	deactivated.IsActive = false

	suite.expectActorResolved()
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.userRepository.On("UserById", suite.ctx, suite.transaction, suite.userId).
		Return(suite.user, nil).Once()
	suite.userRepository.On("SetUserActive", suite.ctx, suite.transaction, suite.userId, false).
		Return(nil)
	suite.userRepository.On("UserById", suite.ctx, suite.transaction, suite.userId).
		Return(deactivated, nil).Once()
	suite.auditLogRepository.On("CreateAuditLog", suite.ctx, suite.executor,
		mock.MatchedBy(func(input models.CreateAuditLog) bool {
			return input.ActionType == models.ActionDeactivateUser &&
				string(input.OldValue) == `{"is_active":true}` &&
				string(input.NewValue) == `{"is_active":false}`
		}), mock.Anything).Return(nil)

	result, err := suite.makeUsecase().SetUserActive(suite.ctx, suite.actorId, suite.userId, false)

	t := suite.T()
	assert.NoError(t, err)
	assert.False(t, result.IsActive)
	suite.AssertExpectations()
}

func (suite *UserUsecaseTestSuite) TestDeleteUser() {
	suite.expectActorResolved()
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.userRepository.On("UserById", suite.ctx, suite.transaction, suite.userId).
		Return(suite.user, nil)
	suite.userRepository.On("DeleteUser", suite.ctx, suite.transaction, suite.userId).Return(nil)
	suite.auditLogRepository.On("CreateAuditLog", suite.ctx, suite.executor,
		mock.MatchedBy(func(input models.CreateAuditLog) bool {
			return input.ActionType == models.ActionDeleteUser &&
				input.OldValue != nil && input.NewValue == nil
		}), mock.Anything).Return(nil)

	err := suite.makeUsecase().DeleteUser(suite.ctx, suite.actorId, suite.userId)

	assert.NoError(suite.T(), err)
	suite.AssertExpectations()
}

func TestUserUsecase(t *testing.T) {
	suite.Run(t, new(UserUsecaseTestSuite))
}
