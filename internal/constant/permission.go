package constant

import "fmt"

// Permission is one of the capability tokens a role can grant.
type Permission string

const (
	PermissionRead          Permission = "read"
	PermissionWrite         Permission = "write"
	PermissionDelete        Permission = "delete"
	PermissionAdministrator Permission = "administrator"
)

var catalog = map[Permission]struct{}{
	PermissionRead:          {},
	PermissionWrite:         {},
	PermissionDelete:        {},
	PermissionAdministrator: {},
}

// Valid reports whether p is a recognized capability token.
func (p Permission) Valid() bool {
	_, ok := catalog[p]
	return ok
}

func (p Permission) String() string {
	return string(p)
}

// Permissions returns every recognized capability token.
func Permissions() []Permission {
	return []Permission{
		PermissionRead,
		PermissionWrite,
		PermissionDelete,
		PermissionAdministrator,
	}
}

// MustBeValid panics on an unrecognized token. Route wiring calls this so a
// typo in a declared requirement fails at startup instead of request time.
func MustBeValid(permissions ...Permission) {
	for _, p := range permissions {
		if !p.Valid() {
			panic(fmt.Sprintf("unknown permission %q", p))
		}
	}
}
