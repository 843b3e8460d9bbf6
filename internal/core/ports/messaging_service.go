package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// MessagingService defines message and notification use cases. All reads are
// scoped to the authenticated caller; the caller id comes from auth claims,
// never from the request body.
type MessagingService interface {
	Send(ctx context.Context, senderID, receiverID uuid.UUID, content string) (*domain.Message, error)
	Inbox(ctx context.Context, callerID uuid.UUID) ([]*domain.Message, error)

	Notify(ctx context.Context, userID uuid.UUID, message string) (*domain.Notification, error)
	// MarkRead is idempotent: marking an already-read notification again is a
	// no-op. Only the addressee may mark their own notification.
	MarkRead(ctx context.Context, callerID, notificationID uuid.UUID) error
	Notifications(ctx context.Context, callerID uuid.UUID) ([]*domain.Notification, error)
}
