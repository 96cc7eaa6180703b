package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories"
)

type AuditLogRepository struct {
	mock.Mock
}

func (r *AuditLogRepository) CreateAuditLog(ctx context.Context, exec repositories.Executor,
	input models.CreateAuditLog, newLogId uuid.UUID,
) error {
	args := r.Called(ctx, exec, input, newLogId)
	return args.Error(0)
}

func (r *AuditLogRepository) AuditLogById(ctx context.Context, exec repositories.Executor,
	kind models.AuditLogKind, logId uuid.UUID,
) (models.AuditLogEntry, error) {
	args := r.Called(ctx, exec, kind, logId)
	return args.Get(0).(models.AuditLogEntry), args.Error(1)
}

func (r *AuditLogRepository) ListAuditLogs(ctx context.Context, exec repositories.Executor,
	kind models.AuditLogKind, filters models.AuditLogFilters,
) ([]models.AuditLogEntry, error) {
	args := r.Called(ctx, exec, kind, filters)
	return args.Get(0).([]models.AuditLogEntry), args.Error(1)
}
