package postgres

import (
	"context"

	"flock/internal/domain/entity"
	"flock/internal/domain/repository"
	"flock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// groupRepository implements the repository.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

// FindByIDs loads the requested groups with their membership rows. Members
// of soft-deleted users are dropped. IDs that match no group are skipped.
func (repo *groupRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Group, error) {
	if len(ids) == 0 {
		return []*entity.Group{}, nil
	}

	var groupModels []*model.GroupModel

	if err := repo.db.WithContext(ctx).
		Preload("Members", "user_id IN (?)",
			repo.db.Model(&model.UserModel{}).Select("id").Where("deleted_at IS NULL")).
		Where("id IN ?", ids).
		Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find groups")
	}

	groups := make([]*entity.Group, 0, len(groupModels))
	for _, g := range groupModels {
		groups = append(groups, toGroupDomain(g))
	}

	return groups, nil
}

// --- Mapper Functions ---

// toGroupDomain collapses membership rows to plain user IDs whether or not
// the member's user row was preloaded.
func toGroupDomain(data *model.GroupModel) *entity.Group {
	if data == nil {
		return nil
	}

	memberIDs := make([]uuid.UUID, 0, len(data.Members))
	for i := range data.Members {
		memberIDs = append(memberIDs, toGroupMember(&data.Members[i]).Resolve())
	}

	return &entity.Group{
		ID:        data.ID,
		Name:      data.Name,
		MemberIDs: memberIDs,
	}
}

func toGroupMember(data *model.GroupMemberModel) entity.GroupMember {
	member := entity.GroupMember{UserID: data.UserID}
	if data.User != nil {
		member.User = toUserDomain(data.User)
	}

	return member
}

