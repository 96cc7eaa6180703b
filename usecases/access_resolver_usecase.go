package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/rosterhub/roster-backend/models"
	"github.com/rosterhub/roster-backend/pure_utils"
	"github.com/rosterhub/roster-backend/repositories"
	"github.com/rosterhub/roster-backend/usecases/executor_factory"
)

// AccessResolverUseCase computes effective memberships. It only reads:
// the global-admin bypass is resolved here, never materialized as rows.
type AccessResolverUseCase struct {
	executorFactory       executor_factory.ExecutorFactory
	userRepository        repositories.UserRepository
	groupRepository       repositories.GroupRepository
	groupAccessRepository repositories.GroupAccessRepository
}

// EffectiveGroupsForUser returns the groups a user belongs to with the role
// held in each. An active global admin is granted every active group with
// the synthetic GlobalAdmin role, whatever assignment rows exist; everybody
// else gets one entry per active assignment, duplicates included.
func (usecase *AccessResolverUseCase) EffectiveGroupsForUser(ctx context.Context,
	userId uuid.UUID,
) ([]models.GroupMembership, error) {
	exec := usecase.executorFactory.NewExecutor()

	user, err := usecase.userRepository.UserById(ctx, exec, userId)
	if err != nil {
		return nil, err
	}

	if user.IsGlobalAdmin && user.IsActive {
		groups, err := usecase.groupRepository.ListActiveGroups(ctx, exec)
		if err != nil {
			return nil, err
		}
		return pure_utils.Map(groups, func(group models.Group) models.GroupMembership {
			return models.GroupMembership{
				GroupId:   group.Id,
				GroupName: group.Name,
				Role:      models.GlobalAdminRole,
			}
		}), nil
	}

	return usecase.groupAccessRepository.ListActiveMembershipsOfUser(ctx, exec, userId)
}

// EffectiveMembersOfGroup returns active global admins first, then users
// with an active assignment in the group. A global admin who also holds an
// explicit assignment appears twice, once per grant.
func (usecase *AccessResolverUseCase) EffectiveMembersOfGroup(ctx context.Context,
	groupId uuid.UUID,
) ([]models.GroupMember, error) {
	exec := usecase.executorFactory.NewExecutor()

	if _, err := usecase.groupRepository.GroupById(ctx, exec, groupId); err != nil {
		return nil, err
	}

	admins, err := usecase.userRepository.ListActiveGlobalAdmins(ctx, exec)
	if err != nil {
		return nil, err
	}
	members := pure_utils.Map(admins, func(admin models.User) models.GroupMember {
		return models.GroupMember{
			UserId:   admin.Id,
			Username: admin.Username,
			Email:    admin.Email,
			Role:     models.GlobalAdminRole,
		}
	})

	assigned, err := usecase.groupAccessRepository.ListActiveMembersOfGroup(ctx, exec, groupId)
	if err != nil {
		return nil, err
	}

	return append(members, assigned...), nil
}
