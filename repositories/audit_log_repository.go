package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories/dbmodels"
)

// AuditLogRepository is append-only over the three audit tables: no update or
// delete operation exists, by design.
type AuditLogRepository interface {
	CreateAuditLog(ctx context.Context, exec Executor, input models.CreateAuditLog, newLogId uuid.UUID) error
	AuditLogById(ctx context.Context, exec Executor, kind models.AuditLogKind, logId uuid.UUID) (models.AuditLogEntry, error)
	ListAuditLogs(ctx context.Context, exec Executor, kind models.AuditLogKind, filters models.AuditLogFilters) ([]models.AuditLogEntry, error)
}

func (repo *RosterDbRepository) CreateAuditLog(ctx context.Context, exec Executor,
	input models.CreateAuditLog, newLogId uuid.UUID,
) error {
	var query squirrel.InsertBuilder

	switch input.Kind {
	case models.AuditLogUser:
		if input.TargetUserId == nil {
			return errors.Wrap(models.BadParameterError, "user audit log requires a target user id")
		}
		query = NewQueryBuilder().Insert(dbmodels.TABLE_USER_AUDIT_LOGS).
			Columns("id", "actor_user_id", "target_user_id", "action_type", "old_value", "new_value").
			Values(newLogId, input.ActorUserId, *input.TargetUserId, input.ActionType,
				input.OldValue, input.NewValue)

	case models.AuditLogGroup:
		if input.TargetGroupId == nil {
			return errors.Wrap(models.BadParameterError, "group audit log requires a target group id")
		}
		query = NewQueryBuilder().Insert(dbmodels.TABLE_GROUP_AUDIT_LOGS).
			Columns("id", "actor_user_id", "group_id", "action_type", "old_value", "new_value").
			Values(newLogId, input.ActorUserId, *input.TargetGroupId, input.ActionType,
				input.OldValue, input.NewValue)

	case models.AuditLogGroupAccess:
		if input.TargetUserId == nil || input.TargetGroupId == nil {
			return errors.Wrap(models.BadParameterError,
				"group access audit log requires a target user id and a target group id")
		}
		query = NewQueryBuilder().Insert(dbmodels.TABLE_GROUP_ACCESS_AUDIT_LOGS).
			Columns("id", "actor_user_id", "target_user_id", "group_id", "action_type", "old_role", "new_role").
			Values(newLogId, input.ActorUserId, *input.TargetUserId, *input.TargetGroupId,
				input.ActionType, input.OldRole, input.NewRole)

	default:
		return errors.Wrapf(models.BadParameterError, "unknown audit log kind %q", input.Kind)
	}

	_, err := ExecBuilder(ctx, exec, query)
	return err
}

func (repo *RosterDbRepository) AuditLogById(ctx context.Context, exec Executor,
	kind models.AuditLogKind, logId uuid.UUID,
) (models.AuditLogEntry, error) {
	switch kind {
	case models.AuditLogUser:
		return SqlToModel(ctx, exec,
			NewQueryBuilder().
				Select(dbmodels.SelectUserAuditLogColumns...).
				From(dbmodels.TABLE_USER_AUDIT_LOGS).
				Where(squirrel.Eq{"id": logId}),
			dbmodels.AdaptUserAuditLog,
		)
	case models.AuditLogGroup:
		return SqlToModel(ctx, exec,
			NewQueryBuilder().
				Select(dbmodels.SelectGroupAuditLogColumns...).
				From(dbmodels.TABLE_GROUP_AUDIT_LOGS).
				Where(squirrel.Eq{"id": logId}),
			dbmodels.AdaptGroupAuditLog,
		)
	case models.AuditLogGroupAccess:
		return SqlToModel(ctx, exec,
			NewQueryBuilder().
				Select(dbmodels.SelectGroupAccessAuditLogColumns...).
				From(dbmodels.TABLE_GROUP_ACCESS_AUDIT_LOGS).
				Where(squirrel.Eq{"id": logId}),
			dbmodels.AdaptGroupAccessAuditLog,
		)
	default:
		return models.AuditLogEntry{}, errors.Wrapf(models.BadParameterError,
			"unknown audit log kind %q", kind)
	}
}

// ListAuditLogs returns entries ordered by created_at descending. Actor and
// target names are joined only when the filters ask for them.
func (repo *RosterDbRepository) ListAuditLogs(ctx context.Context, exec Executor,
	kind models.AuditLogKind, filters models.AuditLogFilters,
) ([]models.AuditLogEntry, error) {
	switch kind {
	case models.AuditLogUser:
		return repo.listUserAuditLogs(ctx, exec, filters)
	case models.AuditLogGroup:
		return repo.listGroupAuditLogs(ctx, exec, filters)
	case models.AuditLogGroupAccess:
		return repo.listGroupAccessAuditLogs(ctx, exec, filters)
	default:
		return nil, errors.Wrapf(models.BadParameterError, "unknown audit log kind %q", kind)
	}
}

func applyAuditLogFilters(query squirrel.SelectBuilder, prefix string,
	filters models.AuditLogFilters, targetColumn string,
) squirrel.SelectBuilder {
	if filters.ActionType != nil {
		query = query.Where(squirrel.Eq{prefix + ".action_type": *filters.ActionType})
	}
	if filters.ActorUserId != nil {
		query = query.Where(squirrel.Eq{prefix + ".actor_user_id": *filters.ActorUserId})
	}
	if filters.TargetUserId != nil && targetColumn != "" {
		query = query.Where(squirrel.Eq{prefix + "." + targetColumn: *filters.TargetUserId})
	}
	if filters.TargetGroupId != nil {
		query = query.Where(squirrel.Eq{prefix + ".group_id": *filters.TargetGroupId})
	}
	return query
}

func (repo *RosterDbRepository) listUserAuditLogs(ctx context.Context, exec Executor,
	filters models.AuditLogFilters,
) ([]models.AuditLogEntry, error) {
	query := NewQueryBuilder().
		Select(columnsNames("al", dbmodels.SelectUserAuditLogColumns)...).
		From(dbmodels.TABLE_USER_AUDIT_LOGS + " AS al").
		OrderBy("al.created_at DESC, al.id DESC")
	query = applyAuditLogFilters(query, "al", filters, "target_user_id")
	if filters.TargetGroupId != nil {
		return nil, errors.Wrap(models.BadParameterError,
			"user audit logs cannot be filtered by group")
	}

	if !filters.WithActor && !filters.WithTarget {
		return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptUserAuditLog)
	}

	query = query.Columns(
		"actor.username AS actor_username",
		"target.username AS target_username",
	).
		LeftJoin(dbmodels.TABLE_USERS + " AS actor ON actor.id = al.actor_user_id").
		LeftJoin(dbmodels.TABLE_USERS + " AS target ON target.id = al.target_user_id")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptUserAuditLogWithRelations)
}

func (repo *RosterDbRepository) listGroupAuditLogs(ctx context.Context, exec Executor,
	filters models.AuditLogFilters,
) ([]models.AuditLogEntry, error) {
	query := NewQueryBuilder().
		Select(columnsNames("al", dbmodels.SelectGroupAuditLogColumns)...).
		From(dbmodels.TABLE_GROUP_AUDIT_LOGS + " AS al").
		OrderBy("al.created_at DESC, al.id DESC")
	query = applyAuditLogFilters(query, "al", filters, "")

	if !filters.WithActor && !filters.WithTarget {
		return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptGroupAuditLog)
	}

	query = query.Columns(
		"actor.username AS actor_username",
		"g.name AS group_name",
	).
		LeftJoin(dbmodels.TABLE_USERS + " AS actor ON actor.id = al.actor_user_id").
		LeftJoin(dbmodels.TABLE_GROUPS + " AS g ON g.id = al.group_id")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptGroupAuditLogWithRelations)
}

func (repo *RosterDbRepository) listGroupAccessAuditLogs(ctx context.Context, exec Executor,
	filters models.AuditLogFilters,
) ([]models.AuditLogEntry, error) {
	query := NewQueryBuilder().
		Select(columnsNames("al", dbmodels.SelectGroupAccessAuditLogColumns)...).
		From(dbmodels.TABLE_GROUP_ACCESS_AUDIT_LOGS + " AS al").
		OrderBy("al.created_at DESC, al.id DESC")
	query = applyAuditLogFilters(query, "al", filters, "target_user_id")

	if !filters.WithActor && !filters.WithTarget {
		return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptGroupAccessAuditLog)
	}

	query = query.Columns(
		"actor.username AS actor_username",
		"target.username AS target_username",
		"g.name AS group_name",
	).
		LeftJoin(dbmodels.TABLE_USERS + " AS actor ON actor.id = al.actor_user_id").
		LeftJoin(dbmodels.TABLE_USERS + " AS target ON target.id = al.target_user_id").
		LeftJoin(dbmodels.TABLE_GROUPS + " AS g ON g.id = al.group_id")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptGroupAccessAuditLogWithRelations)
}
