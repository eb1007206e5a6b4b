package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Order("id").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListByUserID(ctx context.Context, userID uint) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&tasks).Error
	return tasks, err
}

// Replace overwrites every mutable column of the task in one statement. A
// nonzero task.Version makes the write conditional on that version still being
// current; zero affected rows then means the record either vanished or moved
// on, and an existence re-check decides which error to report.
func (r *TaskRepositoryImpl) Replace(ctx context.Context, id uint, task *models.Task) error {
	values := map[string]any{
		"title":       task.Title,
		"description": task.Description,
		"due_date":    task.DueDate,
		"completed":   task.Completed,
		"user_id":     task.UserID,
		"updated_at":  time.Now(),
	}

	query := r.db.WithContext(ctx).Model(&models.Task{})
	if task.Version > 0 {
		values["version"] = task.Version + 1
		query = query.Where("id = ? AND version = ?", id, task.Version)
	} else {
		values["version"] = gorm.Expr("version + 1")
		query = query.Where("id = ?", id)
	}

	result := query.Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.classifyMiss(ctx, id)
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) classifyMiss(ctx context.Context, id uint) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return repositories.ErrNotFound
	}
	return repositories.ErrConflict
}
