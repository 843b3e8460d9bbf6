package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
)

// MessagingService implements the message and notification log.
type MessagingService struct {
	messages      ports.MessageRepository
	notifications ports.NotificationRepository
	users         ports.UserRepository
	logger        zerolog.Logger
}

func NewMessagingService(
	messages ports.MessageRepository,
	notifications ports.NotificationRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *MessagingService {
	return &MessagingService{messages: messages, notifications: notifications, users: users, logger: logger}
}

// Send records a message between two existing users. Messages are immutable
// once written.
func (s *MessagingService) Send(ctx context.Context, senderID, receiverID uuid.UUID, content string) (*domain.Message, error) {
	if _, err := s.users.FindByID(ctx, senderID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, receiverID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("sender_id", senderID.String()).Str("receiver_id", receiverID.String()).Msg("message sent")
	return msg, nil
}

// Inbox returns messages addressed to the caller, oldest first.
func (s *MessagingService) Inbox(ctx context.Context, callerID uuid.UUID) ([]*domain.Message, error) {
	return s.messages.ListByReceiver(ctx, callerID)
}

func (s *MessagingService) Notify(ctx context.Context, userID uuid.UUID, message string) (*domain.Notification, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	n := &domain.Notification{
		UserID:  userID,
		Message: message,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// MarkRead flips the read flag. Re-marking an already-read notification
// succeeds without touching the store.
func (s *MessagingService) MarkRead(ctx context.Context, callerID, notificationID uuid.UUID) error {
	n, err := s.notifications.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.UserID != callerID {
		return domain.ErrForbidden
	}
	if n.Read {
		return nil
	}
	return s.notifications.MarkRead(ctx, notificationID)
}

func (s *MessagingService) Notifications(ctx context.Context, callerID uuid.UUID) ([]*domain.Notification, error) {
	return s.notifications.ListByUser(ctx, callerID)
}
