package repositories

import (
	"context"

	"taskmanager/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
	ListByUserID(ctx context.Context, userID uint) ([]*models.Task, error)
	Replace(ctx context.Context, id uint, task *models.Task) error
	Delete(ctx context.Context, id uint) error
}
