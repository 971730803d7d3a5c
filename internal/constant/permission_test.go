package constant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermission_Valid(t *testing.T) {
	for _, p := range Permissions() {
		require.True(t, p.Valid(), "catalog token %q must be valid", p)
	}

	for _, p := range []Permission{"", "admin", "READ", "superuser", "read "} {
		require.False(t, p.Valid(), "token %q must not be valid", p)
	}
}

func TestPermissions_Closed(t *testing.T) {
	require.ElementsMatch(t, []Permission{
		PermissionRead,
		PermissionWrite,
		PermissionDelete,
		PermissionAdministrator,
	}, Permissions())
}

func TestMustBeValid(t *testing.T) {
	require.NotPanics(t, func() { MustBeValid(PermissionRead, PermissionAdministrator) })
	require.NotPanics(t, func() { MustBeValid() })
	require.Panics(t, func() { MustBeValid(Permission("wite")) })
}
