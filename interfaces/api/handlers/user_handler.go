package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/dto"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns every user with its owned tasks attached.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to retrieve all users", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.UserWithTasksResponse, len(users))
	for i, user := range users {
		responses[i] = *dto.UserToUserWithTasksResponse(user)
	}

	return utils.SuccessResponse(c, responses)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := parseID(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid user ID", "id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "User not found", "user_id", userID)
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.ErrorContext(ctx, "Failed to retrieve user", "user_id", userID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

// UpdateUser verifies the current password before applying a profile or
// password change. Wrong password maps to 400, not 401, matching the update
// endpoint's contract.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := parseID(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid user ID", "id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if req.ID != 0 && req.ID != userID {
		logger.WarnContext(ctx, "User ID mismatch", "path_id", userID, "body_id", req.ID)
		return utils.BadRequestResponse(c, "Invalid ID provided")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	if err := h.userService.UpdateUser(ctx, userID, &req); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			logger.WarnContext(ctx, "User not found for update", "user_id", userID)
			return utils.NotFoundResponse(c, "User not found")
		case errors.Is(err, services.ErrWrongPassword):
			return utils.BadRequestResponse(c, "Invalid password provided")
		case errors.Is(err, repositories.ErrConflict):
			logger.WarnContext(ctx, "User update conflict", "user_id", userID)
			return utils.ConflictResponse(c, "User was modified by another request")
		default:
			logger.ErrorContext(ctx, "Failed to update user", "user_id", userID, "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	return utils.NoContentResponse(c)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := parseID(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid user ID", "id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.userService.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "User not found for delete", "user_id", userID)
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.ErrorContext(ctx, "Failed to delete user", "user_id", userID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to register user", "username", req.Username, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	location := fmt.Sprintf("/api/users/%d", user.ID)
	return utils.CreatedResponse(c, location, dto.UserToUserResponse(user))
}

// Login returns the user record on success. Every failure is the same generic
// 401 so the response never reveals whether the username exists.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	user, err := h.userService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid username or password")
		}
		logger.ErrorContext(ctx, "Failed to log in user", "username", req.Username, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}
