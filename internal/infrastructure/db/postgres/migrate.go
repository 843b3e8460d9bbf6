package postgres

import (
	"gorm.io/gorm"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// AutoMigrate creates or updates the tables for every marketplace entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.ServiceProviderProfile{},
		&domain.ServiceCategory{},
		&domain.Service{},
		&domain.Booking{},
		&domain.Message{},
		&domain.Notification{},
	)
}
