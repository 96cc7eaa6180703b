package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rosterhub/roster-backend/mocks"
	"github.com/rosterhub/roster-backend/models"
)

type GroupUsecaseTestSuite struct {
	suite.Suite
	ctx                context.Context
	executor           *mocks.Executor
	transaction        *mocks.Executor
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	groupRepository    *mocks.GroupRepository
	userRepository     *mocks.UserRepository
	auditLogRepository *mocks.AuditLogRepository

	actorId uuid.UUID
	groupId uuid.UUID
	actor   models.User
	group   models.Group
}

func (suite *GroupUsecaseTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.executor = new(mocks.Executor)
	suite.transaction = new(mocks.Executor)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.groupRepository = new(mocks.GroupRepository)
	suite.userRepository = new(mocks.UserRepository)
	suite.auditLogRepository = new(mocks.AuditLogRepository)

	suite.actorId = uuid.MustParse("25ab6323-1657-4a52-923a-ef6983fe4532")
	suite.groupId = uuid.MustParse("8a26fa31-1b08-4287-a04a-f4f51a4f6b26")
	suite.actor = models.User{Id: suite.actorId, Username: "admin", IsActive: true}
	suite.group = models.Group{Id: suite.groupId, Name: "G1", IsActive: true}
}

func (suite *GroupUsecaseTestSuite) makeUsecase() *GroupUseCase {
	return &GroupUseCase{
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.groupRepository,
		userRepository:     suite.userRepository,
		auditLogRepository: suite.auditLogRepository,
	}
}

func (suite *GroupUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.executorFactory.AssertExpectations(t)
	suite.transactionFactory.AssertExpectations(t)
	suite.groupRepository.AssertExpectations(t)
	suite.userRepository.AssertExpectations(t)
	suite.auditLogRepository.AssertExpectations(t)
}

func (suite *GroupUsecaseTestSuite) TestCreateGroup() {
	input := models.CreateGroup{Name: "G1"}

	suite.userRepository.On("UserById", suite.ctx, suite.executor, suite.actorId).
		Return(suite.actor, nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.groupRepository.On("CreateGroup", suite.ctx, suite.transaction, input, mock.Anything).
		Return(nil)
	suite.groupRepository.On("GroupById", suite.ctx, suite.transaction, mock.Anything).
		Return(suite.group, nil)
	suite.auditLogRepository.On("CreateAuditLog", suite.ctx, suite.executor,
		mock.MatchedBy(func(input models.CreateAuditLog) bool {
			return input.Kind == models.AuditLogGroup &&
				input.ActionType == models.ActionCreateGroup &&
				input.TargetGroupId != nil && *input.TargetGroupId == suite.groupId &&
				input.NewValue != nil
		}), mock.Anything).Return(nil)

	result, err := suite.makeUsecase().CreateGroup(suite.ctx, suite.actorId, input)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, suite.group, result)
	suite.AssertExpectations()
}

func (suite *GroupUsecaseTestSuite) TestCreateGroup_missingName() {
	_, err := suite.makeUsecase().CreateGroup(suite.ctx, suite.actorId, models.CreateGroup{})

	assert.ErrorIs(suite.T(), err, models.BadParameterError)
	suite.AssertExpectations()
}

// Deactivation audits as a group update with minimal active-flag values,
// not full snapshots.
func (suite *GroupUsecaseTestSuite) TestDeactivateGroup() {
	deactivated := suite.group
	deactivated.IsActive = false

	suite.userRepository.On("UserById", suite.ctx, suite.executor, suite.actorId).
		Return(suite.actor, nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.groupRepository.On("GroupById", suite.ctx, suite.transaction, suite.groupId).
		Return(suite.group, nil).Once()
	suite.groupRepository.On("SetGroupActive", suite.ctx, suite.transaction, suite.groupId, false).
		Return(nil)
	suite.groupRepository.On("GroupById", suite.ctx, suite.transaction, suite.groupId).
		Return(deactivated, nil).Once()
	suite.auditLogRepository.On("CreateAuditLog", suite.ctx, suite.executor,
		mock.MatchedBy(func(input models.CreateAuditLog) bool {
			return input.ActionType == models.ActionUpdateGroup &&
				string(input.OldValue) == `{"is_active":true}` &&
				string(input.NewValue) == `{"is_active":false}`
		}), mock.Anything).Return(nil)

	result, err := suite.makeUsecase().DeactivateGroup(suite.ctx, suite.actorId, suite.groupId)

	t := suite.T()
	assert.NoError(t, err)
	assert.False(t, result.IsActive)
	suite.AssertExpectations()
}

func TestGroupUsecase(t *testing.T) {
	suite.Run(t, new(GroupUsecaseTestSuite))
}
