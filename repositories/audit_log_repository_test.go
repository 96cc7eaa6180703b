package repositories

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories/dbmodels"
)

func TestCreateAuditLog(t *testing.T) {
	logId := uuid.MustParse("7f8d8a76-6d4e-4b7f-9c3e-30b9f56da847")
	actorId := uuid.MustParse("25ab6323-1657-4a52-923a-ef6983fe49a0")
	targetId := uuid.MustParse("c5968ff7-2d64-4662-8e1e-01db6e1e5f6b")
	groupId := uuid.MustParse("a2f9ed6e-7a20-4a3c-8b2f-6c9f8f2b1e11")

	t.Run("user entry", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		assert.NoError(t, err)
		defer mock.Close()

		newValue := json.RawMessage(`{"username":"ada"}`)
		mock.ExpectExec("INSERT INTO user_audit_logs").
			WithArgs(logId, actorId, targetId, models.ActionCreateUser, json.RawMessage(nil), newValue).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := &RosterDbRepository{}
		err = repo.CreateAuditLog(context.Background(), mock, models.CreateAuditLog{
			Kind:         models.AuditLogUser,
			ActorUserId:  actorId,
			TargetUserId: &targetId,
			ActionType:   models.ActionCreateUser,
			NewValue:     newValue,
		}, logId)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("group access entry", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		assert.NoError(t, err)
		defer mock.Close()

		newRole := "d16b5a60-47c3-4b1a-9a53-0b5be5b1a0f2"
		mock.ExpectExec("INSERT INTO user_group_access_audit_logs").
			WithArgs(logId, actorId, targetId, groupId, models.ActionAssignRole, (*string)(nil), &newRole).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := &RosterDbRepository{}
		err = repo.CreateAuditLog(context.Background(), mock, models.CreateAuditLog{
			Kind:          models.AuditLogGroupAccess,
			ActorUserId:   actorId,
			TargetUserId:  &targetId,
			TargetGroupId: &groupId,
			ActionType:    models.ActionAssignRole,
			NewRole:       &newRole,
		}, logId)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("user entry without target", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		assert.NoError(t, err)
		defer mock.Close()

		repo := &RosterDbRepository{}
		err = repo.CreateAuditLog(context.Background(), mock, models.CreateAuditLog{
			Kind:        models.AuditLogUser,
			ActorUserId: actorId,
			ActionType:  models.ActionCreateUser,
		}, logId)
		assert.ErrorIs(t, err, models.BadParameterError)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListAuditLogs(t *testing.T) {
	actorId := uuid.MustParse("25ab6323-1657-4a52-923a-ef6983fe49a0")
	targetId := uuid.MustParse("c5968ff7-2d64-4662-8e1e-01db6e1e5f6b")
	groupId := uuid.MustParse("a2f9ed6e-7a20-4a3c-8b2f-6c9f8f2b1e11")

	t.Run("user entries filtered by action", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		assert.NoError(t, err)
		defer mock.Close()

		logId := uuid.MustParse("7f8d8a76-6d4e-4b7f-9c3e-30b9f56da847")
		actionType := models.ActionDeleteUser
		mock.ExpectQuery("SELECT .* FROM user_audit_logs AS al WHERE al.action_type =").
			WithArgs(actionType).
			WillReturnRows(
				pgxmock.NewRows(dbmodels.SelectUserAuditLogColumns).
					AddRow(logId, actorId, targetId, string(actionType),
						json.RawMessage(`{"username":"ada"}`), nil, time.Now()),
			)

		repo := &RosterDbRepository{}
		entries, err := repo.ListAuditLogs(context.Background(), mock, models.AuditLogUser,
			models.AuditLogFilters{ActionType: &actionType})
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, models.AuditLogUser, entries[0].Kind)
		assert.Equal(t, actionType, entries[0].ActionType)
		assert.Equal(t, &targetId, entries[0].TargetUserId)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("user entries reject group filter", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		assert.NoError(t, err)
		defer mock.Close()

		repo := &RosterDbRepository{}
		_, err = repo.ListAuditLogs(context.Background(), mock, models.AuditLogUser,
			models.AuditLogFilters{TargetGroupId: &groupId})
		assert.ErrorIs(t, err, models.BadParameterError)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown kind", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		assert.NoError(t, err)
		defer mock.Close()

		repo := &RosterDbRepository{}
		_, err = repo.ListAuditLogs(context.Background(), mock, models.AuditLogKind("decisions"),
			models.AuditLogFilters{})
		assert.ErrorIs(t, err, models.BadParameterError)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
