package dto

import (
	"time"

	"github.com/dribbl-id/dribbl-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID             string      `json:"id"`
	Username       string      `json:"username"`
	Role           models.Role `json:"role"`
	Bio            string      `json:"bio,omitempty"`
	ProfilePicture string      `json:"profile_picture,omitempty"`
	LastLogin      *time.Time  `json:"last_login,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:             user.ID,
		Username:       user.Username,
		Role:           user.Role,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		LastLogin:      user.LastLogin,
		CreatedAt:      user.CreatedAt,
	}
}
