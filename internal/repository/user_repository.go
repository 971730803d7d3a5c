package repository

import (
	"context"

	"admin-api/internal/model"
	"admin-api/internal/utils/searchterm"

	"gorm.io/gorm"
)

type UserRepository struct {
	Repository[model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		Repository: Repository[model.User]{db},
	}
}

// ListActive returns a page of active users with their country joined.
// Ordered by uuid so pages are stable across calls.
func (r *UserRepository) ListActive(ctx context.Context, limit, offset int) ([]*model.User, error) {
	var users []*model.User
	err := r.getDb(ctx).
		Joins("Country").
		Where("users.is_active = ?", true).
		Order("users.uuid").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}

// FindActiveByTerm looks up a single active user on the column the strategy
// selects, with the country joined.
func (r *UserRepository) FindActiveByTerm(ctx context.Context, user *model.User, strategy searchterm.Strategy, term string) error {
	return r.getDb(ctx).
		Joins("Country").
		Where("users.is_active = ?", true).
		Where(termColumn(strategy)+" = ?", term).
		Take(user).Error
}

// FindExpandedByTerm is FindActiveByTerm with the authorization context
// populated: the role is an inner join, so a user without one is not found,
// and the role's permissions are loaded alongside.
func (r *UserRepository) FindExpandedByTerm(ctx context.Context, user *model.User, strategy searchterm.Strategy, term string) error {
	return r.getDb(ctx).
		InnerJoins("Role").
		Preload("Role.Permissions").
		Joins("Country").
		Where("users.is_active = ?", true).
		Where(termColumn(strategy)+" = ?", term).
		Take(user).Error
}

// FindAuthContextByUUID loads a user by uuid with role and role permissions,
// for resolving a freshly authenticated caller. No active filter: callers
// check IsActive themselves so an inactive user is distinguishable.
func (r *UserRepository) FindAuthContextByUUID(ctx context.Context, user *model.User, uuid string) error {
	return r.getDb(ctx).
		InnerJoins("Role").
		Preload("Role.Permissions").
		Where("users.uuid = ?", uuid).
		Take(user).Error
}

func termColumn(strategy searchterm.Strategy) string {
	switch strategy {
	case searchterm.StrategyID:
		return "users.uuid"
	case searchterm.StrategyEmail:
		return "users.email"
	default:
		return "users.name"
	}
}
