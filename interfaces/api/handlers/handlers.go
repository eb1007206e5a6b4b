package handlers

import (
	"taskmanager/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	TaskService services.TaskService
	UserService services.UserService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	TaskHandler *TaskHandler
	UserHandler *UserHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		TaskHandler: NewTaskHandler(services.TaskService),
		UserHandler: NewUserHandler(services.UserService),
	}
}
