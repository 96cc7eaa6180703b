package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories"
	"github.com/rosterhub/roster-backend/usecases/executor_factory"
)

type AuditLogUseCase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      repositories.AuditLogRepository
}

func (usecase *AuditLogUseCase) GetAuditLog(ctx context.Context, kind models.AuditLogKind,
	logId uuid.UUID,
) (models.AuditLogEntry, error) {
	return usecase.repository.AuditLogById(ctx, usecase.executorFactory.NewExecutor(), kind, logId)
}

func (usecase *AuditLogUseCase) ListAuditLogs(ctx context.Context, kind models.AuditLogKind,
	filters models.AuditLogFilters,
) ([]models.AuditLogEntry, error) {
	return usecase.repository.ListAuditLogs(ctx, usecase.executorFactory.NewExecutor(), kind, filters)
}
