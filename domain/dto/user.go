package dto

import (
	"time"
)

// UpdateUserRequest updates a user's profile and/or password. Password is the
// current plaintext password and is always verified before anything changes.
// ID, when nonzero, must match the path id.
type UpdateUserRequest struct {
	ID          uint   `json:"id"`
	Username    string `json:"username" validate:"omitempty,max=255"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
	Password    string `json:"password" validate:"required"`
	NewPassword string `json:"newPassword" validate:"omitempty,max=255"`
}

// UserResponse is the outbound user shape. It is an explicit allowlist: the
// password hash is never part of any response.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Version   uint      `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserWithTasksResponse is the user-list shape: every user carries its owned
// tasks, empty slice included.
type UserWithTasksResponse struct {
	UserResponse
	Tasks []TaskResponse `json:"tasks"`
}
