package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repository[T any] struct {
	DB *gorm.DB
}

func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	return r.getDb(ctx).Create(entity).Error
}

func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	return r.getDb(ctx).Save(entity).Error
}

func (r *Repository[T]) FindByUUID(ctx context.Context, entity *T, uuid string) error {
	return r.getDb(ctx).Where("uuid = ?", uuid).Take(entity).Error
}

func (r *Repository[T]) getDb(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx)
}
