package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// MessageRepository defines persistence operations for messages.
// Messages are append-only; there is no update method on purpose.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	// ListByReceiver returns the user's inbox ordered by creation time ascending.
	ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*domain.Message, error)
}

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error)
}
