package dto

import (
	"taskmanager/domain/models"
)

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Completed:   task.Completed,
		UserID:      task.UserID,
		Version:     task.Version,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToTaskResponse(task)
	}
	return responses
}

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Version:   user.Version,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserToUserWithTasksResponse maps a user together with its attached task
// projection. Tasks is always non-nil so it serializes as an array.
func UserToUserWithTasksResponse(user *models.User) *UserWithTasksResponse {
	if user == nil {
		return nil
	}
	tasks := make([]TaskResponse, len(user.Tasks))
	for i := range user.Tasks {
		tasks[i] = *TaskToTaskResponse(&user.Tasks[i])
	}
	return &UserWithTasksResponse{
		UserResponse: *UserToUserResponse(user),
		Tasks:        tasks,
	}
}
