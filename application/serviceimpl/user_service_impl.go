package serviceimpl

import (
	"context"
	"time"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/password"
)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	taskRepo repositories.TaskRepository
}

func NewUserService(userRepo repositories.UserRepository, taskRepo repositories.TaskRepository) services.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}

// Register hashes the plaintext password and persists a new user. Username and
// email uniqueness is left to the schema's unique indexes.
func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hash, err := password.Hash(req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Version:      1,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "username", req.Username, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "username", user.Username)

	return user, nil
}

// Login resolves the user by username and verifies the password. Both failure
// modes collapse into ErrInvalidCredentials so callers cannot probe which
// factor was wrong.
func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == repositories.ErrNotFound {
			logger.WarnContext(ctx, "Login failed", "username", req.Username)
			return nil, services.ErrInvalidCredentials
		}
		logger.ErrorContext(ctx, "Failed to look up user for login", "username", req.Username, "error", err)
		return nil, err
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		logger.WarnContext(ctx, "Login failed", "username", req.Username)
		return nil, services.ErrInvalidCredentials
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "username", user.Username)

	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ListUsers returns every user with its owned tasks attached. The per-user
// task query keeps the projection shape identical to a join without hiding it
// behind ORM state.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return nil, err
	}

	for _, user := range users {
		tasks, err := s.taskRepo.ListByUserID(ctx, user.ID)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to list tasks for user", "user_id", user.ID, "error", err)
			return nil, err
		}
		owned := make([]models.Task, len(tasks))
		for i, task := range tasks {
			owned[i] = *task
		}
		user.Tasks = owned
	}

	return users, nil
}

// UpdateUser verifies the caller's current password, then applies the
// requested profile and password changes as a full replace. The record is
// loaded first so a missing id reports not-found before any verification.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, userID uint, req *dto.UpdateUserRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == repositories.ErrNotFound {
			logger.WarnContext(ctx, "User not found for update", "user_id", userID)
		} else {
			logger.ErrorContext(ctx, "Failed to load user for update", "user_id", userID, "error", err)
		}
		return err
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		logger.WarnContext(ctx, "Invalid password for user update", "user_id", userID)
		return services.ErrWrongPassword
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.NewPassword != "" {
		hash, err := password.Hash(req.NewPassword)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to hash new password", "user_id", userID, "error", err)
			return err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Replace(ctx, userID, user); err != nil {
		return err
	}

	logger.InfoContext(ctx, "User updated", "user_id", userID)
	return nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uint) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	logger.InfoContext(ctx, "User deleted", "user_id", userID)
	return nil
}
