package model

import "time"

type User struct {
	UUID        string   `gorm:"primaryKey;unique;not null" json:"uuid"`
	Email       string   `gorm:"unique;not null" json:"email"`
	Password    string   `gorm:"not null" json:"-"`
	Name        string   `json:"name"`
	IsActive    bool     `gorm:"default:true" json:"is_active"`
	RoleUUID    string   `gorm:"not null" json:"-"`
	Role        *Role    `gorm:"foreignKey:RoleUUID;references:UUID" json:"role,omitempty"`
	CountryUUID *string  `json:"-"`
	Country     *Country `gorm:"foreignKey:CountryUUID;references:UUID" json:"country,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasAnyPermission reports whether the user's role grants at least one of
// the given capability names.
func (u *User) HasAnyPermission(names ...string) bool {
	if u.Role == nil {
		return false
	}
	for _, name := range names {
		for _, p := range u.Role.Permissions {
			if p.Name == name {
				return true
			}
		}
	}
	return false
}
