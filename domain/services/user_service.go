package services

import (
	"context"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error)
	GetUser(ctx context.Context, userID uint) (*models.User, error)
	// ListUsers returns every user with its owned tasks attached.
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, userID uint, req *dto.UpdateUserRequest) error
	DeleteUser(ctx context.Context, userID uint) error
}
