package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/alexanderramin/filingdesk/internal/repository"
)

type notificationService struct {
	users         repository.UserRepo
	notifications repository.NotificationRepo
}

func NewNotificationService(users repository.UserRepo, notifications repository.NotificationRepo) NotificationService {
	return &notificationService{users: users, notifications: notifications}
}

func (s *notificationService) ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]*domain.Notification, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return s.notifications.ListByRecipient(ctx, userID, unreadOnly)
}
