package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rosterhub/roster-backend/dto"
	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/pure_utils"
	"github.com/rosterhub/roster-backend/usecases"
)

func handleListGroupAccesses(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var params dto.GroupAccessFiltersForm
		if err := c.ShouldBind(&params); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewGroupAccessUseCase()
		accesses, err := usecase.ListGroupAccesses(ctx, dto.AdaptGroupAccessFilters(params))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"group_accesses": pure_utils.Map(accesses, dto.AdaptGroupAccessDto),
		})
	}
}

func handleGetGroupAccess(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		accessId, err := uuidParam(c, "access_id")
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewGroupAccessUseCase()
		access, err := usecase.GetGroupAccess(ctx, accessId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"group_access": dto.AdaptGroupAccessDto(access),
		})
	}
}

func handleAssignRole(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.AssignRoleBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewGroupAccessUseCase()
		access, err := usecase.AssignRole(ctx, data.ActorUserId, models.CreateGroupAccess{
			UserId:  data.UserId,
			GroupId: data.GroupId,
			RoleId:  data.RoleId,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"group_access": dto.AdaptGroupAccessDto(access),
		})
	}
}

func handleChangeRole(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		accessId, err := uuidParam(c, "access_id")
		if presentError(ctx, c, err) {
			return
		}
		var data dto.ChangeRoleBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewGroupAccessUseCase()
		access, err := usecase.ChangeRole(ctx, data.ActorUserId, accessId, data.RoleId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"group_access": dto.AdaptGroupAccessDto(access),
		})
	}
}

func handleRemoveRole(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		accessId, err := uuidParam(c, "access_id")
		if presentError(ctx, c, err) {
			return
		}
		var data dto.ActorBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewGroupAccessUseCase()
		if err := usecase.RemoveRole(ctx, data.ActorUserId, accessId); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
