package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories"
)

type RoleRepository struct {
	mock.Mock
}

func (r *RoleRepository) CreateRole(ctx context.Context, exec repositories.Executor,
	createRole models.CreateRole, newRoleId uuid.UUID,
) error {
	args := r.Called(ctx, exec, createRole, newRoleId)
	return args.Error(0)
}

func (r *RoleRepository) UpdateRole(ctx context.Context, exec repositories.Executor,
	updateRole models.UpdateRole,
) error {
	args := r.Called(ctx, exec, updateRole)
	return args.Error(0)
}

func (r *RoleRepository) DeleteRole(ctx context.Context, exec repositories.Executor, roleId uuid.UUID) error {
	args := r.Called(ctx, exec, roleId)
	return args.Error(0)
}

func (r *RoleRepository) RoleById(ctx context.Context, exec repositories.Executor,
	roleId uuid.UUID,
) (models.Role, error) {
	args := r.Called(ctx, exec, roleId)
	return args.Get(0).(models.Role), args.Error(1)
}

func (r *RoleRepository) ListRoles(ctx context.Context, exec repositories.Executor) ([]models.Role, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.Role), args.Error(1)
}
