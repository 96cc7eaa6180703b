package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rosterhub/roster-backend/dto"
	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/pure_utils"
	"github.com/rosterhub/roster-backend/usecases"
)

func handleListUsers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewUserUseCase()
		users, err := usecase.ListUsers(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"users": pure_utils.Map(users, dto.AdaptUserDto),
		})
	}
}

func handleGetUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userId, err := uuidParam(c, "user_id")
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewUserUseCase()
		user, err := usecase.GetUser(ctx, userId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user": dto.AdaptUserDto(user),
		})
	}
}

func handlePostUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateUserBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewUserUseCase()
		createdUser, err := usecase.CreateUser(ctx, data.ActorUserId, models.CreateUser{
			Username:      data.Username,
			Email:         data.Email,
			PasswordHash:  data.PasswordHash,
			IsGlobalAdmin: data.IsGlobalAdmin,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"user": dto.AdaptUserDto(createdUser),
		})
	}
}

func handlePatchUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userId, err := uuidParam(c, "user_id")
		if presentError(ctx, c, err) {
			return
		}
		var data dto.UpdateUserBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewUserUseCase()
		updatedUser, err := usecase.UpdateUser(ctx, data.ActorUserId, models.UpdateUser{
			Id:            userId,
			Username:      data.Username,
			Email:         data.Email,
			IsGlobalAdmin: data.IsGlobalAdmin,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user": dto.AdaptUserDto(updatedUser),
		})
	}
}

func handleSetUserActive(uc usecases.Usecases, active bool) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userId, err := uuidParam(c, "user_id")
		if presentError(ctx, c, err) {
			return
		}
		var data dto.ActorBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewUserUseCase()
		user, err := usecase.SetUserActive(ctx, data.ActorUserId, userId, active)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user": dto.AdaptUserDto(user),
		})
	}
}

func handleDeleteUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userId, err := uuidParam(c, "user_id")
		if presentError(ctx, c, err) {
			return
		}
		var data dto.ActorBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewUserUseCase()
		if err := usecase.DeleteUser(ctx, data.ActorUserId, userId); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleGetUserGroups(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userId, err := uuidParam(c, "user_id")
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewAccessResolverUseCase()
		memberships, err := usecase.EffectiveGroupsForUser(ctx, userId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"groups": pure_utils.Map(memberships, dto.AdaptGroupMembershipDto),
		})
	}
}
