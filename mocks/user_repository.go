package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories"
)

type UserRepository struct {
	mock.Mock
}

func (r *UserRepository) CreateUser(ctx context.Context, exec repositories.Executor,
	createUser models.CreateUser, newUserId uuid.UUID,
) error {
	args := r.Called(ctx, exec, createUser, newUserId)
	return args.Error(0)
}

func (r *UserRepository) UpdateUser(ctx context.Context, exec repositories.Executor,
	updateUser models.UpdateUser,
) error {
	args := r.Called(ctx, exec, updateUser)
	return args.Error(0)
}

func (r *UserRepository) SetUserActive(ctx context.Context, exec repositories.Executor,
	userId uuid.UUID, active bool,
) error {
	args := r.Called(ctx, exec, userId, active)
	return args.Error(0)
}

func (r *UserRepository) DeleteUser(ctx context.Context, exec repositories.Executor, userId uuid.UUID) error {
	args := r.Called(ctx, exec, userId)
	return args.Error(0)
}

func (r *UserRepository) UserById(ctx context.Context, exec repositories.Executor,
	userId uuid.UUID,
) (models.User, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *UserRepository) ListUsers(ctx context.Context, exec repositories.Executor) ([]models.User, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.User), args.Error(1)
}

func (r *UserRepository) ListActiveGlobalAdmins(ctx context.Context, exec repositories.Executor) ([]models.User, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.User), args.Error(1)
}
