package api

import (
	"github.com/gin-gonic/gin"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/usecases"
)

func addRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))

	r.GET("/users", handleListUsers(uc))
	r.POST("/users", handlePostUser(uc))
	r.GET("/users/:user_id", handleGetUser(uc))
	r.PATCH("/users/:user_id", handlePatchUser(uc))
	r.DELETE("/users/:user_id", handleDeleteUser(uc))
	r.POST("/users/:user_id/activate", handleSetUserActive(uc, true))
	r.POST("/users/:user_id/deactivate", handleSetUserActive(uc, false))
	r.GET("/users/:user_id/groups", handleGetUserGroups(uc))

	r.GET("/groups", handleListGroups(uc))
	r.POST("/groups", handlePostGroup(uc))
	r.GET("/groups/:group_id", handleGetGroup(uc))
	r.PATCH("/groups/:group_id", handlePatchGroup(uc))
	r.POST("/groups/:group_id/deactivate", handleDeactivateGroup(uc))
	r.GET("/groups/:group_id/users", handleGetGroupUsers(uc))

	r.GET("/roles", handleListRoles(uc))
	r.POST("/roles", handlePostRole(uc))
	r.GET("/roles/:role_id", handleGetRole(uc))
	r.PATCH("/roles/:role_id", handlePatchRole(uc))
	r.DELETE("/roles/:role_id", handleDeleteRole(uc))

	r.GET("/group-access", handleListGroupAccesses(uc))
	r.POST("/group-access/assign", handleAssignRole(uc))
	r.GET("/group-access/:access_id", handleGetGroupAccess(uc))
	r.PATCH("/group-access/:access_id/role", handleChangeRole(uc))
	r.DELETE("/group-access/:access_id", handleRemoveRole(uc))

	r.GET("/audit-logs/users", handleListAuditLogs(uc, models.AuditLogUser))
	r.GET("/audit-logs/users/:log_id", handleGetAuditLog(uc, models.AuditLogUser))
	r.GET("/audit-logs/groups", handleListAuditLogs(uc, models.AuditLogGroup))
	r.GET("/audit-logs/groups/:log_id", handleGetAuditLog(uc, models.AuditLogGroup))
	r.GET("/audit-logs/access", handleListAuditLogs(uc, models.AuditLogGroupAccess))
	r.GET("/audit-logs/access/:log_id", handleGetAuditLog(uc, models.AuditLogGroupAccess))
}
