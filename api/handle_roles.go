package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rosterhub/roster-backend/dto"
	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/pure_utils"
	"github.com/rosterhub/roster-backend/usecases"
)

func handleListRoles(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewRoleUseCase()
		roles, err := usecase.ListRoles(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"roles": pure_utils.Map(roles, dto.AdaptRoleDto),
		})
	}
}

func handleGetRole(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		roleId, err := uuidParam(c, "role_id")
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewRoleUseCase()
		role, err := usecase.GetRole(ctx, roleId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"role": dto.AdaptRoleDto(role),
		})
	}
}

func handlePostRole(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateRoleBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewRoleUseCase()
		createdRole, err := usecase.CreateRole(ctx, models.CreateRole{
			Name:        data.Name,
			Description: data.Description,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"role": dto.AdaptRoleDto(createdRole),
		})
	}
}

func handlePatchRole(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		roleId, err := uuidParam(c, "role_id")
		if presentError(ctx, c, err) {
			return
		}
		var data dto.UpdateRoleBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewRoleUseCase()
		updatedRole, err := usecase.UpdateRole(ctx, models.UpdateRole{
			Id:          roleId,
			Name:        data.Name,
			Description: data.Description,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"role": dto.AdaptRoleDto(updatedRole),
		})
	}
}

func handleDeleteRole(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		roleId, err := uuidParam(c, "role_id")
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewRoleUseCase()
		if err := usecase.DeleteRole(ctx, roleId); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
