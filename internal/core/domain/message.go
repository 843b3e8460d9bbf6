package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a directed note from one user to another. Messages are
// immutable after creation; there is deliberately no update operation.
type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"not null;default:now();index" json:"created_at"`
}
