package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("provider profile not found")
var ErrNegativeExperience = errors.New("experience must not be negative")

// ServiceProviderProfile extends a User of type service_provider with
// marketplace-facing data. Exactly one profile exists per provider; the
// unique index on UserID enforces the one-to-one shape, while the
// user-type check is performed by the profile service at creation time.
type ServiceProviderProfile struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Profession         string    `gorm:"type:varchar(100);not null" json:"profession"`
	Location           string    `gorm:"type:varchar(100)" json:"location"`
	ServiceDescription string    `gorm:"type:text" json:"service_description"`
	Experience         int       `gorm:"not null;default:0" json:"experience"`
	// Rating is system-computed elsewhere; this layer only stores it.
	Rating    float64   `gorm:"not null;default:0" json:"rating"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}
