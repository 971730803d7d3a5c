package converter

import (
	"admin-api/internal/dto"
	"admin-api/internal/model"
)

func UserToResponse(user *model.User) *dto.UserResponse {
	response := &dto.UserResponse{
		UUID:      user.UUID,
		Name:      user.Name,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Unix(),
		UpdatedAt: user.UpdatedAt.Unix(),
	}

	if user.Country != nil {
		response.Country = user.Country.Name
	}

	if user.Role != nil {
		permissions := make([]string, len(user.Role.Permissions))
		for i, perm := range user.Role.Permissions {
			permissions[i] = perm.Name
		}
		response.Role = &dto.RoleResponse{
			Name:        user.Role.Name,
			Permissions: permissions,
		}
	}

	return response
}

func UsersToResponse(users []*model.User) []*dto.UserResponse {
	responses := make([]*dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = UserToResponse(user)
	}
	return responses
}
