package models

import (
	"time"
)

type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Description string
	DueDate     *time.Time
	Completed   bool `gorm:"default:false"`
	// No foreign key constraint: a task may reference a user that no longer exists.
	UserID    uint `gorm:"index"`
	Version   uint `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Task) TableName() string {
	return "tasks"
}
