package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// UserType distinguishes the two account kinds in the marketplace.
type UserType string

const (
	UserTypeClient   UserType = "client"
	UserTypeProvider UserType = "service_provider"
)

// Valid reports whether t is one of the known account kinds.
func (t UserType) Valid() bool {
	return t == UserTypeClient || t == UserTypeProvider
}

var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrInvalidPhoneFormat = errors.New("invalid phone number format")
var ErrInvalidUserType = errors.New("invalid user type")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// phonePattern accepts 8 to 15 digits with an optional leading plus sign.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// ValidPhone reports whether s is an acceptable phone number.
// The empty string does not match; callers treat phone as optional themselves.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// User is the identity record shared by clients and service providers.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(254);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(128);not null" json:"-"`
	PhoneNumber  string    `gorm:"type:varchar(17)" json:"phone_number,omitempty"`
	UserType     UserType  `gorm:"type:varchar(20);not null;default:'client';index" json:"user_type"`
	FirstName    string    `gorm:"type:varchar(30)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(30)" json:"last_name"`
	Address      string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
}
