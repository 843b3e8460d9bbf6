package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrCategoryNotFound = errors.New("service category not found")
var ErrServiceNotFound = errors.New("service not found")
var ErrInvalidPrice = errors.New("price must be greater than zero")

// ServiceCategory classifies services. Categories have an independent
// lifecycle; deleting one removes the services filed under it.
type ServiceCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

// Service is an offering listed by exactly one provider profile under
// exactly one category.
type Service struct {
	ID                uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProviderProfileID uuid.UUID       `gorm:"type:uuid;not null;index" json:"provider_profile_id"`
	CategoryID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Title             string          `gorm:"type:varchar(100);not null" json:"title"`
	Description       string          `gorm:"type:text;not null" json:"description"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Location          string          `gorm:"type:varchar(100)" json:"location"`
	IsActive          bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt         time.Time       `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}
