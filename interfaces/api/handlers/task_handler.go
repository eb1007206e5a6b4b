package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/dto"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	tasks, err := h.taskService.ListTasks(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to retrieve all tasks", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseID(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Task not found", "task_id", taskID)
			return utils.NotFoundResponse(c, "Task not found")
		}
		logger.ErrorContext(ctx, "Failed to retrieve task", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	location := fmt.Sprintf("/api/tasks/%d", task.ID)
	return utils.CreatedResponse(c, location, dto.TaskToTaskResponse(task))
}

// ReplaceTask is a full-record replace. The body's id must match the path id;
// mismatch is a bad request regardless of whether the record exists.
func (h *TaskHandler) ReplaceTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseID(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.ReplaceTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if req.ID != taskID {
		logger.WarnContext(ctx, "Task ID mismatch", "path_id", taskID, "body_id", req.ID)
		return utils.BadRequestResponse(c, "Invalid ID provided")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	if err := h.taskService.ReplaceTask(ctx, taskID, &req); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			logger.WarnContext(ctx, "Task not found for replace", "task_id", taskID)
			return utils.NotFoundResponse(c, "Task not found")
		case errors.Is(err, repositories.ErrConflict):
			logger.WarnContext(ctx, "Task replace conflict", "task_id", taskID)
			return utils.ConflictResponse(c, "Task was modified by another request")
		default:
			logger.ErrorContext(ctx, "Failed to replace task", "task_id", taskID, "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseID(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Task not found for delete", "task_id", taskID)
			return utils.NotFoundResponse(c, "Task not found")
		}
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
