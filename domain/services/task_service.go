package services

import (
	"context"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, taskID uint) (*models.Task, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
	ReplaceTask(ctx context.Context, taskID uint, req *dto.ReplaceTaskRequest) error
	DeleteTask(ctx context.Context, taskID uint) error
}
