package repository

import (
	"context"

	"trackshop/models"
)

func (r PostgresRepository) AddNotification(
	ctx context.Context,
	userID int,
	message string,
) error {
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO notifications (user_id, message) VALUES ($1, $2)",
		userID, message,
	)
	return err
}

func (r PostgresRepository) ListNotifications(
	ctx context.Context,
	userID int,
) ([]models.Notification, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, message, seen, created_at
		 FROM notifications WHERE user_id=$1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Seen, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r PostgresRepository) MarkNotificationSeen(
	ctx context.Context,
	id, userID int,
) error {
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE notifications SET seen = TRUE WHERE id=$1 AND user_id=$2",
		id, userID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r PostgresRepository) CountUnseenNotifications(
	ctx context.Context,
	userID int,
) (int, error) {
	var count int
	err := r.db.QueryRowContext(
		ctx,
		"SELECT count(*) FROM notifications WHERE user_id=$1 AND NOT seen",
		userID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
