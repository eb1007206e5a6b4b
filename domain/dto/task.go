package dto

import (
	"time"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description" validate:"omitempty"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
	Completed   bool       `json:"completed"`
	UserID      uint       `json:"userId"`
}

// ReplaceTaskRequest is a full-record replacement. ID must match the path id.
// Version, when nonzero, is the version the caller last read; the replace is
// rejected with a conflict if the stored record has moved past it.
type ReplaceTaskRequest struct {
	ID          uint       `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description" validate:"omitempty"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
	Completed   bool       `json:"completed"`
	UserID      uint       `json:"userId"`
	Version     uint       `json:"version"`
}

type TaskResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   bool       `json:"completed"`
	UserID      uint       `json:"userId"`
	Version     uint       `json:"version"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
