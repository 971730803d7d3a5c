// Package seeder resets and repopulates the reference data the directory
// depends on: countries, the permission catalog, roles and one bootstrap
// user per role.
package seeder

import (
	"context"

	"admin-api/internal/constant"
	"admin-api/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var countryNames = []string{
	"Argentina", "Australia", "Brazil", "Canada", "Chile", "China",
	"Colombia", "Ecuador", "France", "Germany", "India", "Indonesia",
	"Italy", "Japan", "Mexico", "Netherlands", "Peru", "Spain",
	"United Kingdom", "United States", "Uruguay", "Venezuela",
}

var permissionDescriptions = map[constant.Permission]string{
	constant.PermissionRead:          "List and look up users",
	constant.PermissionWrite:         "Update users and run seeds",
	constant.PermissionDelete:        "Deactivate users",
	constant.PermissionAdministrator: "Inspect users with roles and permissions",
}

// Run wipes the seeded tables in dependency order and rebuilds them.
func Run(ctx context.Context, db *gorm.DB, log *logrus.Logger) error {
	for _, table := range []string{"role_permissions", "users", "roles", "permissions", "countries"} {
		if err := db.WithContext(ctx).Exec("DELETE FROM " + table).Error; err != nil {
			log.WithError(err).WithField("table", table).Error("Failed to clear table")
			return err
		}
	}

	countries := make([]model.Country, len(countryNames))
	for i, name := range countryNames {
		countries[i] = model.Country{UUID: uuid.NewString(), Name: name}
	}
	if err := db.WithContext(ctx).Create(&countries).Error; err != nil {
		log.WithError(err).Error("Failed to seed countries")
		return err
	}

	permissions := make(map[constant.Permission]model.Permission, len(permissionDescriptions))
	for _, token := range constant.Permissions() {
		permission := model.Permission{
			UUID:        uuid.NewString(),
			Name:        token.String(),
			Description: permissionDescriptions[token],
		}
		if err := db.WithContext(ctx).Create(&permission).Error; err != nil {
			log.WithError(err).WithField("permission", permission.Name).Error("Failed to seed permission")
			return err
		}
		permissions[token] = permission
	}

	roles := []model.Role{
		{
			UUID: uuid.NewString(),
			Name: "user",
			Permissions: []model.Permission{
				permissions[constant.PermissionRead],
			},
		},
		{
			UUID: uuid.NewString(),
			Name: "admin",
			Permissions: []model.Permission{
				permissions[constant.PermissionRead],
				permissions[constant.PermissionWrite],
				permissions[constant.PermissionDelete],
			},
		},
		{
			UUID: uuid.NewString(),
			Name: "super-admin",
			Permissions: []model.Permission{
				permissions[constant.PermissionRead],
				permissions[constant.PermissionWrite],
				permissions[constant.PermissionDelete],
				permissions[constant.PermissionAdministrator],
			},
		},
	}
	for i := range roles {
		if err := db.WithContext(ctx).Create(&roles[i]).Error; err != nil {
			log.WithError(err).WithField("role", roles[i].Name).Error("Failed to seed role")
			return err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []model.User{
		{
			UUID:        uuid.NewString(),
			Name:        "Regular User",
			Email:       "user@admin-api.local",
			Password:    string(hashed),
			IsActive:    true,
			RoleUUID:    roles[0].UUID,
			CountryUUID: &countries[0].UUID,
		},
		{
			UUID:        uuid.NewString(),
			Name:        "Admin User",
			Email:       "admin@admin-api.local",
			Password:    string(hashed),
			IsActive:    true,
			RoleUUID:    roles[1].UUID,
			CountryUUID: &countries[1].UUID,
		},
		{
			UUID:     uuid.NewString(),
			Name:     "Super Admin",
			Email:    "super-admin@admin-api.local",
			Password: string(hashed),
			IsActive: true,
			RoleUUID: roles[2].UUID,
		},
	}
	for i := range users {
		if err := db.WithContext(ctx).Create(&users[i]).Error; err != nil {
			log.WithError(err).WithField("email", users[i].Email).Error("Failed to seed user")
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"countries":   len(countries),
		"permissions": len(permissions),
		"roles":       len(roles),
		"users":       len(users),
	}).Info("Seed completed")
	return nil
}
