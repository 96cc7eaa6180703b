package api

import (
	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
)

func uuidParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(models.BadParameterError,
			"route parameter %s is not a valid uuid", name)
	}
	return id, nil
}
