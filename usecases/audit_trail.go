package usecases

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/repositories"
	"github.com/rosterhub/roster-backend/utils"
)

// writeAuditLog appends an audit entry for a mutation that has already been
// committed. The append runs outside the mutation's transaction, so a
// failure here does not undo the mutation: the entry is lost and the gap is
// logged for reconciliation.
func writeAuditLog(ctx context.Context, repository repositories.AuditLogRepository,
	exec repositories.Executor, input models.CreateAuditLog,
) {
	if err := repository.CreateAuditLog(ctx, exec, input, uuid.New()); err != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx,
			"audit log write failed after the mutation was committed, the entry is lost",
			"kind", string(input.Kind),
			"action_type", string(input.ActionType),
			"actor_user_id", input.ActorUserId.String(),
			"error", err.Error())
	}
}

// marshalSnapshot serializes an audit snapshot. Snapshot types only hold
// plain values so a failure is not expected; if one happens anyway it is
// treated like any other audit write failure.
func marshalSnapshot(ctx context.Context, v any) json.RawMessage {
	serialized, err := json.Marshal(v)
	if err != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx,
			"could not serialize audit snapshot",
			"error", err.Error())
		return nil
	}
	return serialized
}

// resolveActor checks that the acting user exists before a mutation is
// attempted. Every coordinator entry point runs this check, whatever the
// entity being mutated.
func resolveActor(ctx context.Context, repository repositories.UserRepository,
	exec repositories.Executor, actorUserId uuid.UUID,
) (models.User, error) {
	actor, err := repository.UserById(ctx, exec, actorUserId)
	if err != nil {
		if errors.Is(err, models.NotFoundError) {
			return models.User{}, errors.WithDetailf(models.ErrActorNotFound,
				"actor user %s", actorUserId)
		}
		return models.User{}, err
	}
	return actor, nil
}
