package migration

import (
	"fmt"

	"gorm.io/gorm"

	"ticketboard/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the persistence models.
// Used in development and tests; it does not create the ON DELETE SET NULL
// foreign keys the SQL scripts declare.
type GormAutoMigrateStrategy struct{}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
