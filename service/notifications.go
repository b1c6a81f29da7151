package service

import (
	"context"

	"trackshop/models"
)

func (s Service) ListNotifications(
	ctx context.Context,
	userID int,
) ([]models.Notification, error) {
	return s.repo.ListNotifications(ctx, userID)
}

func (s Service) MarkNotificationSeen(
	ctx context.Context,
	notificationID, userID int,
) error {
	return s.repo.MarkNotificationSeen(ctx, notificationID, userID)
}
