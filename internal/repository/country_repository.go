package repository

import (
	"context"

	"admin-api/internal/model"

	"gorm.io/gorm"
)

type CountryRepository struct {
	Repository[model.Country]
}

func NewCountryRepository(db *gorm.DB) *CountryRepository {
	return &CountryRepository{
		Repository: Repository[model.Country]{db},
	}
}

// FindByName finds a country by its unique name.
func (r *CountryRepository) FindByName(ctx context.Context, country *model.Country, name string) error {
	return r.getDb(ctx).Where("name = ?", name).Take(country).Error
}
