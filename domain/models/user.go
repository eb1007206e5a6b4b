package models

import (
	"time"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:255;uniqueIndex;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:64;not null"`
	Version      uint   `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Tasks is a read-time projection of the tasks owned by this user.
	// It is never persisted; only the user-list flow populates it.
	Tasks []Task `gorm:"-"`
}

func (User) TableName() string {
	return "users"
}
