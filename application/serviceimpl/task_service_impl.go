package serviceimpl

import (
	"context"
	"time"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
	}
}

// CreateTask builds a new task from the request and persists it. The owning
// user is deliberately not checked for existence.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		UserID:      req.UserID,
		Version:     1,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", task.UserID)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID uint) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, taskID)
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) ReplaceTask(ctx context.Context, taskID uint, req *dto.ReplaceTaskRequest) error {
	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		UserID:      req.UserID,
		Version:     req.Version,
	}

	if err := s.taskRepo.Replace(ctx, taskID, task); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Task replaced", "task_id", taskID)
	return nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID uint) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)
	return nil
}
