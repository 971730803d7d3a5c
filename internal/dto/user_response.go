package dto

type UserResponse struct {
	UUID      string        `json:"uuid,omitempty"`
	Name      string        `json:"name,omitempty"`
	Email     string        `json:"email,omitempty"`
	IsActive  bool          `json:"is_active"`
	Country   string        `json:"country,omitempty"`
	Role      *RoleResponse `json:"role,omitempty"`
	CreatedAt int64         `json:"created_at,omitempty"`
	UpdatedAt int64         `json:"updated_at,omitempty"`
}

type RoleResponse struct {
	Name        string   `json:"name,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// MessageResponse acknowledges a lifecycle operation (deactivation, seed run).
type MessageResponse struct {
	Message string `json:"message"`
}
