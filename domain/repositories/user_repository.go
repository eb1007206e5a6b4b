package repositories

import (
	"context"

	"taskmanager/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Replace(ctx context.Context, id uint, user *models.User) error
	Delete(ctx context.Context, id uint) error
}
