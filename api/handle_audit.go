package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rosterhub/roster-backend/dto"
	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/pure_utils"
	"github.com/rosterhub/roster-backend/usecases"
)

func handleListAuditLogs(uc usecases.Usecases, kind models.AuditLogKind) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var params dto.AuditLogFiltersForm
		if err := c.ShouldBind(&params); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filters, err := dto.AdaptAuditLogFilters(params)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewAuditLogUseCase()
		entries, err := usecase.ListAuditLogs(ctx, kind, filters)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"audit_logs": pure_utils.Map(entries, dto.AdaptAuditLogEntryDto),
		})
	}
}

func handleGetAuditLog(uc usecases.Usecases, kind models.AuditLogKind) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logId, err := uuidParam(c, "log_id")
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewAuditLogUseCase()
		entry, err := usecase.GetAuditLog(ctx, kind, logId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"audit_log": dto.AdaptAuditLogEntryDto(entry),
		})
	}
}
