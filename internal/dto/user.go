package dto

import (
	"time"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// UserResponse is the public summary of a user account.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// UserInfo is the authenticated user's own view, including upload count.
type UserInfo struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	UploadedImages int64  `json:"uploaded_images"`
	Avatar         string `json:"avatar"`
	Role           string `json:"role"`
}

// UserProfile is the public profile view of another user.
type UserProfile struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	UploadedImages int64  `json:"uploaded_images"`
	Avatar         string `json:"avatar"`
}

// ChangeUsernameRequest carries a requested new username.
type ChangeUsernameRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
}

// AvatarResponse returns the freshly stored avatar URL.
type AvatarResponse struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}
