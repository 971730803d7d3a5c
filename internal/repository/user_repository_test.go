package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"admin-api/internal/model"
	"admin-api/internal/utils/searchterm"
)

func setupRepository(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB, PreferSimpleProtocol: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	return db, mock, func() { _ = sqlDB.Close() }
}

func emptyUserRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"uuid", "email", "password", "name", "is_active", "role_uuid", "country_uuid", "created_at", "updated_at"})
}

func TestUserRepository_ListActive_QueryShape(t *testing.T) {
	db, mock, cleanup := setupRepository(t)
	defer cleanup()
	repo := NewUserRepository(db)

	// Active filter and stable uuid ordering are part of the contract.
	mock.ExpectQuery(`SELECT .* FROM "users" LEFT JOIN "countries" .*users\.is_active = .* ORDER BY users\.uuid`).
		WillReturnRows(emptyUserRows())

	users, err := repo.ListActive(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Empty(t, users)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindActiveByTerm_ColumnSelection(t *testing.T) {
	cases := []struct {
		name     string
		strategy searchterm.Strategy
		term     string
		column   string
	}{
		{name: "ByID", strategy: searchterm.StrategyID, term: "3f2c9a10-5d4e-4b6a-8c7d-1e2f3a4b5c6d", column: `users\.uuid`},
		{name: "ByEmail", strategy: searchterm.StrategyEmail, term: "a@example.com", column: `users\.email`},
		{name: "ByName", strategy: searchterm.StrategyName, term: "Alice", column: `users\.name`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, cleanup := setupRepository(t)
			defer cleanup()
			repo := NewUserRepository(db)

			mock.ExpectQuery(`SELECT .* FROM "users" .*users\.is_active = .* ` + tc.column + ` = `).
				WillReturnRows(emptyUserRows().AddRow(tc.term, "a@example.com", "hash", "Alice", true, "role-1", nil, time.Now(), time.Now()))

			user := new(model.User)
			err := repo.FindActiveByTerm(context.Background(), user, tc.strategy, tc.term)
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindActiveByTerm_NoMatch(t *testing.T) {
	db, mock, cleanup := setupRepository(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "users"`).WillReturnRows(emptyUserRows())

	err := repo.FindActiveByTerm(context.Background(), new(model.User), searchterm.StrategyEmail, "ghost@example.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindExpandedByTerm_RoleIsInnerJoin(t *testing.T) {
	db, mock, cleanup := setupRepository(t)
	defer cleanup()
	repo := NewUserRepository(db)

	columns := []string{"uuid", "email", "password", "name", "is_active", "role_uuid", "country_uuid", "created_at", "updated_at", "Role__uuid", "Role__name"}
	mock.ExpectQuery(`SELECT .* FROM "users" INNER JOIN "roles"`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("u1", "a@example.com", "hash", "Alice", true, "role-1", nil, time.Now(), time.Now(), "role-1", "admin"))
	mock.ExpectQuery(`SELECT .* FROM "role_permissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"role_uuid", "permission_uuid"}).AddRow("role-1", "perm-1"))
	mock.ExpectQuery(`SELECT .* FROM "permissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "name", "description"}).AddRow("perm-1", "read", "Read access"))

	user := new(model.User)
	err := repo.FindExpandedByTerm(context.Background(), user, searchterm.StrategyEmail, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, user.Role)
	require.Len(t, user.Role.Permissions, 1)
	require.Equal(t, "read", user.Role.Permissions[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindAuthContextByUUID_NoActiveFilter(t *testing.T) {
	db, mock, cleanup := setupRepository(t)
	defer cleanup()
	repo := NewUserRepository(db)

	// An inactive user must still load so the caller can report it as such.
	columns := []string{"uuid", "email", "password", "name", "is_active", "role_uuid", "country_uuid", "created_at", "updated_at", "Role__uuid", "Role__name"}
	mock.ExpectQuery(`SELECT .* FROM "users" INNER JOIN "roles"`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("u1", "a@example.com", "hash", "Alice", false, "role-1", nil, time.Now(), time.Now(), "role-1", "user"))
	mock.ExpectQuery(`SELECT .* FROM "role_permissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"role_uuid", "permission_uuid"}))

	user := new(model.User)
	err := repo.FindAuthContextByUUID(context.Background(), user, "u1")
	require.NoError(t, err)
	require.False(t, user.IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountryRepository_FindByName(t *testing.T) {
	db, mock, cleanup := setupRepository(t)
	defer cleanup()
	repo := NewCountryRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "countries"`).
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "name"}).AddRow("c1", "Japan"))

	country := new(model.Country)
	err := repo.FindByName(context.Background(), country, "Japan")
	require.NoError(t, err)
	require.Equal(t, "c1", country.UUID)
	require.NoError(t, mock.ExpectationsWereMet())
}
