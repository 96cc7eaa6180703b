package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/utils"
)

// The three audit tables share a shape; each gets its own row struct because
// the target columns differ. Action types are stored verbatim; historical
// rows may carry free-form strings, so adapters keep the raw value instead of
// failing on unknown actions.

type DbUserAuditLog struct {
	Id           uuid.UUID       `db:"id"`
	ActorUserId  uuid.UUID       `db:"actor_user_id"`
	TargetUserId uuid.UUID       `db:"target_user_id"`
	ActionType   string          `db:"action_type"`
	OldValue     json.RawMessage `db:"old_value"`
	NewValue     json.RawMessage `db:"new_value"`
	CreatedAt    time.Time       `db:"created_at"`
}

type DbGroupAuditLog struct {
	Id          uuid.UUID       `db:"id"`
	ActorUserId uuid.UUID       `db:"actor_user_id"`
	GroupId     uuid.UUID       `db:"group_id"`
	ActionType  string          `db:"action_type"`
	OldValue    json.RawMessage `db:"old_value"`
	NewValue    json.RawMessage `db:"new_value"`
	CreatedAt   time.Time       `db:"created_at"`
}

type DbGroupAccessAuditLog struct {
	Id           uuid.UUID   `db:"id"`
	ActorUserId  uuid.UUID   `db:"actor_user_id"`
	TargetUserId uuid.UUID   `db:"target_user_id"`
	GroupId      uuid.UUID   `db:"group_id"`
	ActionType   string      `db:"action_type"`
	OldRole      null.String `db:"old_role"`
	NewRole      null.String `db:"new_role"`
	CreatedAt    time.Time   `db:"created_at"`
}

type DbUserAuditLogWithRelations struct {
	DbUserAuditLog
	ActorUsername  null.String `db:"actor_username"`
	TargetUsername null.String `db:"target_username"`
}

type DbGroupAuditLogWithRelations struct {
	DbGroupAuditLog
	ActorUsername null.String `db:"actor_username"`
	GroupName     null.String `db:"group_name"`
}

type DbGroupAccessAuditLogWithRelations struct {
	DbGroupAccessAuditLog
	ActorUsername  null.String `db:"actor_username"`
	TargetUsername null.String `db:"target_username"`
	GroupName      null.String `db:"group_name"`
}

const (
	TABLE_USER_AUDIT_LOGS         = "user_audit_logs"
	TABLE_GROUP_AUDIT_LOGS        = "group_audit_logs"
	TABLE_GROUP_ACCESS_AUDIT_LOGS = "user_group_access_audit_logs"
)

var (
	SelectUserAuditLogColumns        = utils.ColumnList[DbUserAuditLog]()
	SelectGroupAuditLogColumns       = utils.ColumnList[DbGroupAuditLog]()
	SelectGroupAccessAuditLogColumns = utils.ColumnList[DbGroupAccessAuditLog]()
)

func AdaptUserAuditLog(db DbUserAuditLog) (models.AuditLogEntry, error) {
	targetUserId := db.TargetUserId
	return models.AuditLogEntry{
		Id:           db.Id,
		Kind:         models.AuditLogUser,
		ActorUserId:  db.ActorUserId,
		TargetUserId: &targetUserId,
		ActionType:   models.ActionType(db.ActionType),
		OldValue:     db.OldValue,
		NewValue:     db.NewValue,
		CreatedAt:    db.CreatedAt,
	}, nil
}

func AdaptUserAuditLogWithRelations(db DbUserAuditLogWithRelations) (models.AuditLogEntry, error) {
	entry, _ := AdaptUserAuditLog(db.DbUserAuditLog)
	entry.ActorUsername = db.ActorUsername.Ptr()
	entry.TargetUsername = db.TargetUsername.Ptr()
	return entry, nil
}

func AdaptGroupAuditLog(db DbGroupAuditLog) (models.AuditLogEntry, error) {
	groupId := db.GroupId
	return models.AuditLogEntry{
		Id:            db.Id,
		Kind:          models.AuditLogGroup,
		ActorUserId:   db.ActorUserId,
		TargetGroupId: &groupId,
		ActionType:    models.ActionType(db.ActionType),
		OldValue:      db.OldValue,
		NewValue:      db.NewValue,
		CreatedAt:     db.CreatedAt,
	}, nil
}

func AdaptGroupAuditLogWithRelations(db DbGroupAuditLogWithRelations) (models.AuditLogEntry, error) {
	entry, _ := AdaptGroupAuditLog(db.DbGroupAuditLog)
	entry.ActorUsername = db.ActorUsername.Ptr()
	entry.GroupName = db.GroupName.Ptr()
	return entry, nil
}

func AdaptGroupAccessAuditLog(db DbGroupAccessAuditLog) (models.AuditLogEntry, error) {
	targetUserId := db.TargetUserId
	groupId := db.GroupId
	return models.AuditLogEntry{
		Id:            db.Id,
		Kind:          models.AuditLogGroupAccess,
		ActorUserId:   db.ActorUserId,
		TargetUserId:  &targetUserId,
		TargetGroupId: &groupId,
		ActionType:    models.ActionType(db.ActionType),
		OldRole:       db.OldRole.Ptr(),
		NewRole:       db.NewRole.Ptr(),
		CreatedAt:     db.CreatedAt,
	}, nil
}

func AdaptGroupAccessAuditLogWithRelations(db DbGroupAccessAuditLogWithRelations) (models.AuditLogEntry, error) {
	entry, _ := AdaptGroupAccessAuditLog(db.DbGroupAccessAuditLog)
	entry.ActorUsername = db.ActorUsername.Ptr()
	entry.TargetUsername = db.TargetUsername.Ptr()
	entry.GroupName = db.GroupName.Ptr()
	return entry, nil
}
