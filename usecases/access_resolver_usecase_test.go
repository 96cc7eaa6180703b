package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/rosterhub/roster-backend/mocks"
	"github.com/rosterhub/roster-backend/models"
)

type AccessResolverTestSuite struct {
	suite.Suite
	ctx                   context.Context
	executor              *mocks.Executor
	executorFactory       *mocks.ExecutorFactory
	userRepository        *mocks.UserRepository
	groupRepository       *mocks.GroupRepository
	groupAccessRepository *mocks.GroupAccessRepository

	userId   uuid.UUID
	groupId  uuid.UUID
	groupOne models.Group
	groupTwo models.Group
}

func (suite *AccessResolverTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.executor = new(mocks.Executor)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.userRepository = new(mocks.UserRepository)
	suite.groupRepository = new(mocks.GroupRepository)
	suite.groupAccessRepository = new(mocks.GroupAccessRepository)

	suite.userId = uuid.MustParse("c5968ff7-6142-4623-a6b3-1539f345e5fa")
	suite.groupId = uuid.MustParse("8a26fa31-1b08-4287-a04a-f4f51a4f6b26")
	suite.groupOne = models.Group{Id: suite.groupId, Name: "G1", IsActive: true}
	suite.groupTwo = models.Group{
		Id:       uuid.MustParse("5bfd3d83-7e04-43d3-8e65-1f5d327e9a77"),
		Name:     "G2",
		IsActive: true,
	}
}

func (suite *AccessResolverTestSuite) makeUsecase() *AccessResolverUseCase {
	return &AccessResolverUseCase{
		executorFactory:       suite.executorFactory,
		userRepository:        suite.userRepository,
		groupRepository:       suite.groupRepository,
		groupAccessRepository: suite.groupAccessRepository,
	}
}

func (suite *AccessResolverTestSuite) AssertExpectations() {
	t := suite.T()
	suite.executorFactory.AssertExpectations(t)
	suite.userRepository.AssertExpectations(t)
	suite.groupRepository.AssertExpectations(t)
	suite.groupAccessRepository.AssertExpectations(t)
}

// An active global admin is granted every active group, whatever assignment
// rows exist for them. Inactive groups never show up.
func (suite *AccessResolverTestSuite) TestEffectiveGroupsForUser_globalAdmin() {
	admin := models.User{Id: suite.userId, IsGlobalAdmin: true, IsActive: true}
	suite.userRepository.On("UserById", suite.ctx, suite.executor, suite.userId).Return(admin, nil)
	suite.groupRepository.On("ListActiveGroups", suite.ctx, suite.executor).
		Return([]models.Group{suite.groupOne, suite.groupTwo}, nil)

	memberships, err := suite.makeUsecase().EffectiveGroupsForUser(suite.ctx, suite.userId)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, []models.GroupMembership{
		{GroupId: suite.groupOne.Id, GroupName: "G1", Role: models.GlobalAdminRole},
		{GroupId: suite.groupTwo.Id, GroupName: "G2", Role: models.GlobalAdminRole},
	}, memberships)
	suite.groupAccessRepository.AssertNotCalled(t, "ListActiveMembershipsOfUser",
		suite.ctx, suite.executor, suite.userId)
	suite.AssertExpectations()
}

// A deactivated global admin loses the bypass and falls back to explicit
// assignments.
func (suite *AccessResolverTestSuite) TestEffectiveGroupsForUser_inactiveAdmin() {
	admin := models.User{Id: suite.userId, IsGlobalAdmin: true, IsActive: false}
	suite.userRepository.On("UserById", suite.ctx, suite.executor, suite.userId).Return(admin, nil)
	suite.groupAccessRepository.On("ListActiveMembershipsOfUser", suite.ctx, suite.executor, suite.userId).
		Return([]models.GroupMembership{}, nil)

	memberships, err := suite.makeUsecase().EffectiveGroupsForUser(suite.ctx, suite.userId)

	t := suite.T()
	assert.NoError(t, err)
	assert.Empty(t, memberships)
	suite.AssertExpectations()
}

func (suite *AccessResolverTestSuite) TestEffectiveGroupsForUser_regularUser() {
	user := models.User{Id: suite.userId, IsActive: true}
	expected := []models.GroupMembership{
		{GroupId: suite.groupId, GroupName: "G1", Role: "Editor"},
	}
	suite.userRepository.On("UserById", suite.ctx, suite.executor, suite.userId).Return(user, nil)
	suite.groupAccessRepository.On("ListActiveMembershipsOfUser", suite.ctx, suite.executor, suite.userId).
		Return(expected, nil)

	memberships, err := suite.makeUsecase().EffectiveGroupsForUser(suite.ctx, suite.userId)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, expected, memberships)
	suite.AssertExpectations()
}

// Duplicate active assignments are surfaced as they are, one entry per row.
func (suite *AccessResolverTestSuite) TestEffectiveGroupsForUser_duplicateAssignments() {
	user := models.User{Id: suite.userId, IsActive: true}
	expected := []models.GroupMembership{
		{GroupId: suite.groupId, GroupName: "G1", Role: "Editor"},
		{GroupId: suite.groupId, GroupName: "G1", Role: "Viewer"},
	}
	suite.userRepository.On("UserById", suite.ctx, suite.executor, suite.userId).Return(user, nil)
	suite.groupAccessRepository.On("ListActiveMembershipsOfUser", suite.ctx, suite.executor, suite.userId).
		Return(expected, nil)

	memberships, err := suite.makeUsecase().EffectiveGroupsForUser(suite.ctx, suite.userId)

	t := suite.T()
	assert.NoError(t, err)
	assert.Len(t, memberships, 2)
	suite.AssertExpectations()
}

func (suite *AccessResolverTestSuite) TestEffectiveGroupsForUser_userNotFound() {
	suite.userRepository.On("UserById", suite.ctx, suite.executor, suite.userId).
		Return(models.User{}, errors.Wrap(models.NotFoundError, "user not found"))

	_, err := suite.makeUsecase().EffectiveGroupsForUser(suite.ctx, suite.userId)

	assert.ErrorIs(suite.T(), err, models.NotFoundError)
	suite.AssertExpectations()
}

// Global admins come first, then explicit members. An admin with an explicit
// assignment in the group appears twice.
func (suite *AccessResolverTestSuite) TestEffectiveMembersOfGroup() {
	adminId := uuid.MustParse("25ab6323-1657-4a52-923a-ef6983fe4532")
	admin := models.User{
		Id:            adminId,
		Username:      "admin",
		Email:         "admin@example.com",
		IsGlobalAdmin: true,
		IsActive:      true,
	}
	assigned := []models.GroupMember{
		{UserId: suite.userId, Username: "jdoe", Email: "jdoe@example.com", Role: "Editor"},
		{UserId: adminId, Username: "admin", Email: "admin@example.com", Role: "Viewer"},
	}

	suite.groupRepository.On("GroupById", suite.ctx, suite.executor, suite.groupId).
		Return(suite.groupOne, nil)
	suite.userRepository.On("ListActiveGlobalAdmins", suite.ctx, suite.executor).
		Return([]models.User{admin}, nil)
	suite.groupAccessRepository.On("ListActiveMembersOfGroup", suite.ctx, suite.executor, suite.groupId).
		Return(assigned, nil)

	members, err := suite.makeUsecase().EffectiveMembersOfGroup(suite.ctx, suite.groupId)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, []models.GroupMember{
		{UserId: adminId, Username: "admin", Email: "admin@example.com", Role: models.GlobalAdminRole},
		assigned[0],
		assigned[1],
	}, members)
	suite.AssertExpectations()
}

func (suite *AccessResolverTestSuite) TestEffectiveMembersOfGroup_groupNotFound() {
	suite.groupRepository.On("GroupById", suite.ctx, suite.executor, suite.groupId).
		Return(models.Group{}, errors.Wrap(models.NotFoundError, "group not found"))

	_, err := suite.makeUsecase().EffectiveMembersOfGroup(suite.ctx, suite.groupId)

	assert.ErrorIs(suite.T(), err, models.NotFoundError)
	suite.AssertExpectations()
}

func TestAccessResolverUsecase(t *testing.T) {
	suite.Run(t, new(AccessResolverTestSuite))
}
