package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories"
)

type GroupRepository struct {
	mock.Mock
}

func (r *GroupRepository) CreateGroup(ctx context.Context, exec repositories.Executor,
	createGroup models.CreateGroup, newGroupId uuid.UUID,
) error {
	args := r.Called(ctx, exec, createGroup, newGroupId)
	return args.Error(0)
}

func (r *GroupRepository) UpdateGroup(ctx context.Context, exec repositories.Executor,
	updateGroup models.UpdateGroup,
) error {
	args := r.Called(ctx, exec, updateGroup)
	return args.Error(0)
}

func (r *GroupRepository) SetGroupActive(ctx context.Context, exec repositories.Executor,
	groupId uuid.UUID, active bool,
) error {
	args := r.Called(ctx, exec, groupId, active)
	return args.Error(0)
}

func (r *GroupRepository) GroupById(ctx context.Context, exec repositories.Executor,
	groupId uuid.UUID,
) (models.Group, error) {
	args := r.Called(ctx, exec, groupId)
	return args.Get(0).(models.Group), args.Error(1)
}

func (r *GroupRepository) ListGroups(ctx context.Context, exec repositories.Executor) ([]models.Group, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.Group), args.Error(1)
}

func (r *GroupRepository) ListActiveGroups(ctx context.Context, exec repositories.Executor) ([]models.Group, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.Group), args.Error(1)
}
