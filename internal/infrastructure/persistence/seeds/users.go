package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"ticketboard/internal/infrastructure/persistence/models"
	"ticketboard/internal/shared/authorization"
)

// SeedDemoUsers inserts a small user directory when the users table is empty.
// It returns the number of rows inserted.
func SeedDemoUsers(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	users := []models.UserModel{
		{Name: "Admin", Email: "admin@ticketboard.local", Role: authorization.RoleAdmin.String()},
		{Name: "Alice", Email: "alice@ticketboard.local", Role: authorization.RoleUser.String()},
		{Name: "Bob", Email: "bob@ticketboard.local", Role: authorization.RoleUser.String()},
	}
	if err := db.Create(&users).Error; err != nil {
		return 0, fmt.Errorf("failed to seed users: %w", err)
	}
	return len(users), nil
}
