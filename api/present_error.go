package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/rosterhub/roster-backend/dto"
	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/utils"
)

// presentError renders an error response and reports whether there was an
// error to present. Sentinel errors map to client statuses, everything else
// is a 500 and gets logged.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, dto.APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, dto.APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, dto.APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.ErrActorNotFound):
		c.JSON(http.StatusNotFound, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.UnknownActor,
		})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, dto.APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.ErrDuplicateAssignment):
		c.JSON(http.StatusConflict, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.DuplicateActiveAssignment,
		})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, dto.APIErrorResponse{Message: err.Error()})
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, dto.APIErrorResponse{Message: err.Error()})
	}
	return true
}
