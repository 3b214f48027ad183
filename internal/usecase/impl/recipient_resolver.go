package impl

import (
	"context"
	"log/slog"

	deliverycontext "flock/internal/delivery/context"
	"flock/internal/domain/entity"
	domainerrors "flock/internal/domain/errors"
	"flock/internal/domain/repository"
	"flock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type recipientResolver struct {
	userRepo  repository.UserRepository
	groupRepo repository.GroupRepository
	logger    *slog.Logger
}

// RecipientResolverParams holds dependencies for RecipientResolver, injected by Fx.
type RecipientResolverParams struct {
	fx.In

	UserRepo  repository.UserRepository
	GroupRepo repository.GroupRepository
	Logger    *slog.Logger
}

// NewRecipientResolver creates a resolver backed by the user and group stores.
func NewRecipientResolver(params RecipientResolverParams) usecase.RecipientResolver {
	return &recipientResolver{
		userRepo:  params.UserRepo,
		groupRepo: params.GroupRepo,
		logger:    params.Logger,
	}
}

func (r *recipientResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Resolve expands target into a deduplicated list of user IDs, preserving first-seen order.
func (r *recipientResolver) Resolve(ctx context.Context, target entity.RecipientTarget) ([]uuid.UUID, error) {
	switch target.Scope {
	case entity.RecipientScopeAll:
		ids, err := r.userRepo.FindAllIDs(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load all users")
		}

		return dedupeIDs(ids), nil

	case entity.RecipientScopeUsers:
		return dedupeIDs(target.UserIDs), nil

	case entity.RecipientScopeGroups:
		if len(target.GroupIDs) == 0 {
			return []uuid.UUID{}, nil
		}

		groups, err := r.groupRepo.FindByIDs(ctx, target.GroupIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load groups")
		}

		if len(groups) < len(dedupeIDs(target.GroupIDs)) {
			r.log(ctx).Info("some groups were not found and contribute no recipients",
				slog.Int("requested", len(target.GroupIDs)),
				slog.Int("found", len(groups)),
			)
		}

		var members []uuid.UUID
		for _, group := range groups {
			members = append(members, group.MemberIDs...)
		}

		return dedupeIDs(members), nil

	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown recipient scope: " + string(target.Scope))
	}
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
