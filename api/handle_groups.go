package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rosterhub/roster-backend/dto"
	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/pure_utils"
	"github.com/rosterhub/roster-backend/usecases"
)

func handleListGroups(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewGroupUseCase()
		groups, err := usecase.ListGroups(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"groups": pure_utils.Map(groups, dto.AdaptGroupDto),
		})
	}
}

func handleGetGroup(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		groupId, err := uuidParam(c, "group_id")
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewGroupUseCase()
		group, err := usecase.GetGroup(ctx, groupId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"group": dto.AdaptGroupDto(group),
		})
	}
}

func handlePostGroup(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateGroupBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewGroupUseCase()
		createdGroup, err := usecase.CreateGroup(ctx, data.ActorUserId, models.CreateGroup{
			Name:        data.Name,
			Description: data.Description,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"group": dto.AdaptGroupDto(createdGroup),
		})
	}
}

func handlePatchGroup(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		groupId, err := uuidParam(c, "group_id")
		if presentError(ctx, c, err) {
			return
		}
		var data dto.UpdateGroupBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewGroupUseCase()
		updatedGroup, err := usecase.UpdateGroup(ctx, data.ActorUserId, models.UpdateGroup{
			Id:          groupId,
			Name:        data.Name,
			Description: data.Description,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"group": dto.AdaptGroupDto(updatedGroup),
		})
	}
}

func handleDeactivateGroup(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		groupId, err := uuidParam(c, "group_id")
		if presentError(ctx, c, err) {
			return
		}
		var data dto.ActorBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewGroupUseCase()
		group, err := usecase.DeactivateGroup(ctx, data.ActorUserId, groupId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"group": dto.AdaptGroupDto(group),
		})
	}
}

func handleGetGroupUsers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		groupId, err := uuidParam(c, "group_id")
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewAccessResolverUseCase()
		members, err := usecase.EffectiveMembersOfGroup(ctx, groupId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"users": pure_utils.Map(members, dto.AdaptGroupMemberDto),
		})
	}
}
