package models

import (
	"time"

	"ticketboard/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID        uint   `gorm:"primarykey"`
	Email     string `gorm:"uniqueIndex;not null;size:255"`
	Name      string `gorm:"not null;size:100"`
	Role      string `gorm:"not null;default:USER;size:20"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
