package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories"
)

type GroupAccessRepository struct {
	mock.Mock
}

func (r *GroupAccessRepository) CreateGroupAccess(ctx context.Context, exec repositories.Executor,
	createAccess models.CreateGroupAccess, newAccessId uuid.UUID,
) error {
	args := r.Called(ctx, exec, createAccess, newAccessId)
	return args.Error(0)
}

func (r *GroupAccessRepository) UpdateGroupAccessRole(ctx context.Context, exec repositories.Executor,
	accessId, newRoleId uuid.UUID,
) error {
	args := r.Called(ctx, exec, accessId, newRoleId)
	return args.Error(0)
}

func (r *GroupAccessRepository) DeleteGroupAccess(ctx context.Context, exec repositories.Executor,
	accessId uuid.UUID,
) error {
	args := r.Called(ctx, exec, accessId)
	return args.Error(0)
}

func (r *GroupAccessRepository) GroupAccessById(ctx context.Context, exec repositories.Executor,
	accessId uuid.UUID,
) (models.GroupAccess, error) {
	args := r.Called(ctx, exec, accessId)
	return args.Get(0).(models.GroupAccess), args.Error(1)
}

func (r *GroupAccessRepository) ListGroupAccesses(ctx context.Context, exec repositories.Executor,
	filters models.GroupAccessFilters,
) ([]models.GroupAccess, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.GroupAccess), args.Error(1)
}

func (r *GroupAccessRepository) ListActiveMembershipsOfUser(ctx context.Context, exec repositories.Executor,
	userId uuid.UUID,
) ([]models.GroupMembership, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).([]models.GroupMembership), args.Error(1)
}

func (r *GroupAccessRepository) ListActiveMembersOfGroup(ctx context.Context, exec repositories.Executor,
	groupId uuid.UUID,
) ([]models.GroupMember, error) {
	args := r.Called(ctx, exec, groupId)
	return args.Get(0).([]models.GroupMember), args.Error(1)
}
